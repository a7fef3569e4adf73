package domain

import "testing"

func TestPhoenixSingleValue(t *testing.T) {
	tests := []struct {
		name     string
		top      float64
		leading  bool
		want     float64
	}{
		{"leading is always 1.5", 12, true, PhoenixLeadSingleValue},
		{"following adds half a step", 10, false, 10.5},
		{"capped just below dragon", float64(DragonValue) - 0.25, false, float64(DragonValue) - 0.5},
		{"landing on ace stays below the cap", float64(RankA), false, float64(RankA) + 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhoenixSingleValue(tt.top, tt.leading); got != tt.want {
				t.Errorf("PhoenixSingleValue(%v, %v) = %v, want %v", tt.top, tt.leading, got, tt.want)
			}
		})
	}
}

func TestApplyDogLeadTransfersToPartner(t *testing.T) {
	r := &Round{Phase: PhasePlay}
	r.Hands[Seat0] = []Card{Std(Clubs, Rank5)}
	r.Hands[Seat1] = []Card{Std(Clubs, Rank6)}
	r.Hands[Seat2] = []Card{Std(Clubs, Rank7)}
	r.Hands[Seat3] = []Card{Std(Clubs, Rank8)}
	r.CurrentTrick = []Play{{Seat: Seat0, Cards: []Card{Dog}}}

	if err := r.applyDogLead(Seat0); err != nil {
		t.Fatalf("applyDogLead returned error: %v", err)
	}
	if r.LeadSeat != Seat2 {
		t.Errorf("LeadSeat = %v, want Seat2 (partner)", r.LeadSeat)
	}
	if r.CurrentSeat != Seat2 {
		t.Errorf("CurrentSeat = %v, want Seat2", r.CurrentSeat)
	}
	if r.DogPriority == nil || *r.DogPriority != Seat2 {
		t.Errorf("DogPriority = %v, want Seat2", r.DogPriority)
	}
	if len(r.CurrentTrick) != 0 {
		t.Errorf("expected trick to be cleared")
	}
}

func TestApplyDogLeadSkipsFinishedPartner(t *testing.T) {
	r := &Round{Phase: PhasePlay}
	r.Hands[Seat1] = []Card{Std(Clubs, Rank6)}
	r.Hands[Seat3] = []Card{Std(Clubs, Rank8)}
	r.Out = []Seat{Seat2} // partner of seat0 already finished

	if err := r.applyDogLead(Seat0); err != nil {
		t.Fatalf("applyDogLead returned error: %v", err)
	}
	if r.LeadSeat != Seat1 {
		t.Errorf("LeadSeat = %v, want Seat1 (next active after finished partner)", r.LeadSeat)
	}
}

func TestDragonWinAndResolve(t *testing.T) {
	r := &Round{Phase: PhasePlay}
	won := []Card{Dragon, Std(Clubs, RankK)}
	r.applyDragonWin(Seat0, won, 35)
	if r.DragonPending == nil {
		t.Fatalf("expected DragonPending to be set")
	}

	r.resolveDragonGift(Seat1)
	if r.DragonPending != nil {
		t.Errorf("expected DragonPending to be cleared")
	}
	if r.Stacks[Seat1].CardPoints != 35 {
		t.Errorf("Stacks[Seat1].CardPoints = %d, want 35", r.Stacks[Seat1].CardPoints)
	}
	if !ContainsAll(r.Stacks[Seat1].Cards, won) {
		t.Errorf("expected recipient stack to contain the gifted cards")
	}
}

func TestWishSatisfiedByStricterReading(t *testing.T) {
	wish := Wish{Rank: Rank8, Active: true}

	tests := []struct {
		name  string
		cards []Card
		want  bool
	}{
		{"single of wished rank", []Card{Std(Clubs, Rank8)}, true},
		{"wished rank inside a larger combo", []Card{Std(Clubs, Rank8), Std(Hearts, Rank8), Std(Spades, Rank8)}, true},
		{"unrelated single", []Card{Std(Clubs, Rank9)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wishSatisfiedBy(wish, tt.cards); got != tt.want {
				t.Errorf("wishSatisfiedBy() = %v, want %v", got, tt.want)
			}
		})
	}

	if wishSatisfiedBy(Wish{}, []Card{Std(Clubs, Rank8)}) {
		t.Errorf("an inactive wish should never be satisfied")
	}
}
