package domain

// MatchTargetScore is the accumulated-points threshold that ends a match
// (spec §4.7). It is a var, not a const, so config.go can override it for
// non-standard table rules without the domain package depending on config.
var MatchTargetScore = 1000

// GrandTichuEnabled gates whether a freshly dealt round opens a Grand Tichu
// window at all. Some house rules deal straight into Exchange; when
// disabled, NewRound auto-reveals every seat's hidden six immediately.
var GrandTichuEnabled = true

// Match accumulates team scores across rounds until termination.
type Match struct {
	TeamScores [2]int
	Finished   bool
	WinnerTeam int // -1 until Finished
}

// NewMatch returns a fresh, unfinished match.
func NewMatch() *Match {
	return &Match{WinnerTeam: -1}
}

// AccumulateRound folds one round's team deltas into the match total and
// checks for termination. Per DESIGN.md's Open Question 5 resolution, a
// tie at or above MatchTargetScore does not end the match — rounds
// continue until one team strictly leads at a round boundary.
func (m *Match) AccumulateRound(delta [2]int) {
	if m.Finished {
		return
	}
	m.TeamScores[0] += delta[0]
	m.TeamScores[1] += delta[1]

	if m.TeamScores[0] < MatchTargetScore && m.TeamScores[1] < MatchTargetScore {
		return
	}
	if m.TeamScores[0] == m.TeamScores[1] {
		return
	}
	m.Finished = true
	if m.TeamScores[0] > m.TeamScores[1] {
		m.WinnerTeam = 0
	} else {
		m.WinnerTeam = 1
	}
}
