package domain

// RoundEndKind distinguishes the two round-end triggers from spec §4.7.
type RoundEndKind int

const (
	RoundEndTailender RoundEndKind = iota
	RoundEndDoubleVictory
)

// RoundResult is the outcome folded into Match state at a round boundary.
type RoundResult struct {
	Kind           RoundEndKind
	FinishOrder    []Seat
	TeamCardPoints [2]int
	TeamDelta      [2]int
}

// checkRoundEnd inspects Out after a seat has just been appended and
// resolves the round if either trigger from spec §4.7 fires. It returns
// nil if neither trigger fires yet.
func (r *Round) checkRoundEnd() *RoundResult {
	if len(r.Out) == 2 && r.Out[0].Team() == r.Out[1].Team() {
		res := r.doubleVictoryResolve()
		r.Phase = PhaseRoundEnded
		return &res
	}
	if len(r.Out) == 3 {
		res := r.tailenderResolve(remainingSeat(r.Out))
		r.Phase = PhaseRoundEnded
		return &res
	}
	return nil
}

// remainingSeat returns the one seat not present in out (length 3).
func remainingSeat(out []Seat) Seat {
	var present [SeatCount]bool
	for _, s := range out {
		present[s] = true
	}
	for s := Seat(0); s < SeatCount; s++ {
		if !present[s] {
			return s
		}
	}
	return 0
}

// tailenderResolve implements spec §4.7's tailender case, per DESIGN.md's
// Open Question 2 resolution: the tailender's card-point total transfers to
// the first finisher and is zeroed; the tailender's physical remaining
// hand cards go to the opposing team's stack rather than staying with the
// tailender, and their card points are not added to any stack total.
func (r *Round) tailenderResolve(tailender Seat) RoundResult {
	r.Out = append(r.Out, tailender)
	firstFinisher := r.Out[0]

	opponent := tailender.Next() // adjacent seat is always the opposing team
	r.Stacks[opponent].Cards = append(r.Stacks[opponent].Cards, r.Hands[tailender]...)
	r.Hands[tailender] = nil

	transferred := r.Stacks[tailender].CardPoints
	r.Stacks[firstFinisher].CardPoints += transferred
	r.Stacks[tailender].CardPoints = 0

	var teamPoints [2]int
	for s := Seat(0); s < SeatCount; s++ {
		teamPoints[s.Team()] += r.Stacks[s].CardPoints
	}

	delta := r.applyDeclarations(teamPoints, firstFinisher)
	return RoundResult{
		Kind:           RoundEndTailender,
		FinishOrder:    append([]Seat{}, r.Out...),
		TeamCardPoints: teamPoints,
		TeamDelta:      delta,
	}
}

// doubleVictoryResolve implements spec §4.7's double-victory case: the
// winning team scores a flat 200, the losing team 0, and card points are
// not tallied.
func (r *Round) doubleVictoryResolve() RoundResult {
	firstFinisher := r.Out[0]
	winningTeam := firstFinisher.Team()
	losingTeam := 1 - winningTeam

	var teamPoints [2]int
	teamPoints[winningTeam] = 200
	teamPoints[losingTeam] = 0

	delta := r.applyDeclarations(teamPoints, firstFinisher)
	return RoundResult{
		Kind:        RoundEndDoubleVictory,
		FinishOrder: append([]Seat{}, r.Out...),
		TeamDelta:   delta,
	}
}

// applyDeclarations folds Grand Tichu / Tichu bonuses and penalties into
// teamPoints, per spec §4.7: a declaration succeeds only for the seat that
// finished first (Out[0]).
func (r *Round) applyDeclarations(teamPoints [2]int, firstFinisher Seat) [2]int {
	for s := Seat(0); s < SeatCount; s++ {
		if r.GrandTichu[s] {
			if s == firstFinisher {
				teamPoints[s.Team()] += 200
			} else {
				teamPoints[s.Team()] -= 200
			}
		}
		if r.Tichu[s] {
			if s == firstFinisher {
				teamPoints[s.Team()] += 100
			} else {
				teamPoints[s.Team()] -= 100
			}
		}
	}
	return teamPoints
}
