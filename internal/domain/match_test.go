package domain

import "testing"

func TestAccumulateRoundBelowTargetDoesNotFinish(t *testing.T) {
	orig := MatchTargetScore
	MatchTargetScore = 1000
	defer func() { MatchTargetScore = orig }()

	m := NewMatch()
	m.AccumulateRound([2]int{200, 50})
	if m.Finished {
		t.Fatalf("expected match to continue below target")
	}
	if m.TeamScores != [2]int{200, 50} {
		t.Errorf("TeamScores = %v, want [200 50]", m.TeamScores)
	}
	if m.WinnerTeam != -1 {
		t.Errorf("WinnerTeam = %d, want -1 while unfinished", m.WinnerTeam)
	}
}

func TestAccumulateRoundTieAtTargetContinues(t *testing.T) {
	orig := MatchTargetScore
	MatchTargetScore = 1000
	defer func() { MatchTargetScore = orig }()

	m := NewMatch()
	m.AccumulateRound([2]int{1000, 1000})
	if m.Finished {
		t.Fatalf("expected a tie at target to keep the match going")
	}
}

func TestAccumulateRoundStrictLeadEndsMatch(t *testing.T) {
	orig := MatchTargetScore
	MatchTargetScore = 1000
	defer func() { MatchTargetScore = orig }()

	m := NewMatch()
	m.AccumulateRound([2]int{1000, 950})
	if !m.Finished {
		t.Fatalf("expected match to finish once one team strictly leads at or above target")
	}
	if m.WinnerTeam != 0 {
		t.Errorf("WinnerTeam = %d, want 0", m.WinnerTeam)
	}
}

func TestAccumulateRoundIgnoredOnceFinished(t *testing.T) {
	orig := MatchTargetScore
	MatchTargetScore = 1000
	defer func() { MatchTargetScore = orig }()

	m := NewMatch()
	m.AccumulateRound([2]int{1000, 0})
	if !m.Finished {
		t.Fatalf("setup: expected match finished")
	}
	m.AccumulateRound([2]int{500, 500})
	if m.TeamScores != [2]int{1000, 0} {
		t.Errorf("TeamScores = %v, want unchanged [1000 0] once finished", m.TeamScores)
	}
}
