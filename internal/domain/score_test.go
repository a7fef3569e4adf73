package domain

import "testing"

func TestDoubleVictoryAwardsFlat200(t *testing.T) {
	r := &Round{Phase: PhasePlay}
	r.Out = []Seat{Seat0, Seat2} // same team finishes first and second
	res := r.checkRoundEnd()
	if res == nil {
		t.Fatalf("expected double victory to trigger")
	}
	if res.Kind != RoundEndDoubleVictory {
		t.Errorf("Kind = %v, want RoundEndDoubleVictory", res.Kind)
	}
	if res.TeamDelta[0] != 200 || res.TeamDelta[1] != 0 {
		t.Errorf("TeamDelta = %v, want [200 0]", res.TeamDelta)
	}
	if r.Phase != PhaseRoundEnded {
		t.Errorf("Phase = %v, want PhaseRoundEnded", r.Phase)
	}
}

func TestDoubleVictoryDoesNotTriggerAcrossTeams(t *testing.T) {
	r := &Round{Phase: PhasePlay}
	r.Out = []Seat{Seat0, Seat1} // opposing teams; not a double victory
	if res := r.checkRoundEnd(); res != nil {
		t.Fatalf("did not expect round end with only two seats out across teams, got %+v", res)
	}
}

func TestTailenderTransfersCardPointsAndCards(t *testing.T) {
	r := &Round{Phase: PhasePlay}
	r.Out = []Seat{Seat0, Seat1, Seat2} // Seat3 is the tailender
	r.Hands[Seat3] = []Card{Std(Clubs, Rank9), Std(Hearts, Rank2)}
	r.Stacks[Seat3].CardPoints = 15
	r.Stacks[Seat0].CardPoints = 20

	res := r.checkRoundEnd()
	if res == nil {
		t.Fatalf("expected tailender round end to trigger")
	}
	if res.Kind != RoundEndTailender {
		t.Errorf("Kind = %v, want RoundEndTailender", res.Kind)
	}
	if r.Stacks[Seat3].CardPoints != 0 {
		t.Errorf("tailender CardPoints = %d, want 0 after transfer", r.Stacks[Seat3].CardPoints)
	}
	if r.Stacks[Seat0].CardPoints != 35 {
		t.Errorf("first finisher CardPoints = %d, want 35 (20+15 transferred)", r.Stacks[Seat0].CardPoints)
	}
	if len(r.Hands[Seat3]) != 0 {
		t.Errorf("expected tailender's hand to be emptied")
	}
	if !ContainsAll(r.Stacks[Seat0].Cards, []Card{Std(Clubs, Rank9), Std(Hearts, Rank2)}) {
		t.Errorf("expected tailender's remaining cards to land in the opposing stack (Seat3.Next()==Seat0)")
	}
}

func TestApplyDeclarationsRewardsOnlyFirstFinisher(t *testing.T) {
	r := &Round{Phase: PhasePlay}
	r.GrandTichu[Seat0] = true // first finisher: succeeds
	r.Tichu[Seat1] = true      // not first finisher: fails

	delta := r.applyDeclarations([2]int{0, 0}, Seat0)
	if delta[0] != 200 {
		t.Errorf("team0 delta = %d, want +200 for successful grand tichu", delta[0])
	}
	if delta[1] != -100 {
		t.Errorf("team1 delta = %d, want -100 for failed tichu", delta[1])
	}
}

func TestScenarioFiveTailenderTransferWithNegative(t *testing.T) {
	// Finish order [0,1,2], seat 3 tailender. Stacks: 0=15, 1=5, 2=20,
	// 3=-25 (held the Phoenix). Seat 0's card points become 15+(-25)=-10;
	// team A = -10+20=10; team B = 5+0=5, before declarations.
	r := &Round{Phase: PhasePlay}
	r.Out = []Seat{Seat0, Seat1, Seat2}
	r.Stacks[Seat0].CardPoints = 15
	r.Stacks[Seat1].CardPoints = 5
	r.Stacks[Seat2].CardPoints = 20
	r.Stacks[Seat3].CardPoints = -25

	res := r.checkRoundEnd()
	if res == nil {
		t.Fatalf("expected round to end")
	}
	if r.Stacks[Seat0].CardPoints != -10 {
		t.Errorf("Stacks[Seat0].CardPoints = %d, want -10", r.Stacks[Seat0].CardPoints)
	}
	if res.TeamCardPoints[0] != 10 {
		t.Errorf("team A card points = %d, want 10", res.TeamCardPoints[0])
	}
	if res.TeamCardPoints[1] != 5 {
		t.Errorf("team B card points = %d, want 5", res.TeamCardPoints[1])
	}
}

func TestScenarioSixDoubleVictoryWithFailedTichu(t *testing.T) {
	r := &Round{Phase: PhasePlay}
	r.Out = []Seat{Seat0, Seat2}
	r.Tichu[Seat1] = true

	res := r.checkRoundEnd()
	if res == nil {
		t.Fatalf("expected round to end")
	}
	if res.TeamDelta[0] != 200 {
		t.Errorf("team A delta = %d, want 200", res.TeamDelta[0])
	}
	if res.TeamDelta[1] != -100 {
		t.Errorf("team B delta = %d, want -100 (failed tichu)", res.TeamDelta[1])
	}
}
