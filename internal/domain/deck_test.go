package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeckSizeAndComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("len(deck) = %d, want %d", len(deck), DeckSize)
	}
	counts := Multiset(deck)
	for _, special := range []Card{MahJong, Dog, Phoenix, Dragon} {
		if counts[special] != 1 {
			t.Errorf("expected exactly one %v, got %d", special, counts[special])
		}
	}
	standard := 0
	for c, n := range counts {
		if c.Kind == KindStandard {
			standard += n
		}
	}
	if standard != 52 {
		t.Errorf("expected 52 standard cards, got %d", standard)
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	deck := NewDeck()
	shuffled := Shuffle(deck, rand.New(rand.NewSource(7)))
	if len(shuffled) != len(deck) {
		t.Fatalf("shuffle changed deck length")
	}
	before, after := Multiset(deck), Multiset(shuffled)
	for c, n := range before {
		if after[c] != n {
			t.Errorf("card %v: before %d after %d", c, n, after[c])
		}
	}
}

func TestDealSplitsVisibleAndHidden(t *testing.T) {
	deck := Shuffle(NewDeck(), rand.New(rand.NewSource(1)))
	visible, hidden := Deal(deck)

	total := Multiset(deck)
	dealt := map[Card]int{}
	for s := Seat(0); s < SeatCount; s++ {
		if len(visible[s]) != VisibleCount {
			t.Errorf("seat %v visible count = %d, want %d", s, len(visible[s]), VisibleCount)
		}
		if len(hidden[s]) != HiddenCount {
			t.Errorf("seat %v hidden count = %d, want %d", s, len(hidden[s]), HiddenCount)
		}
		for c, n := range Multiset(visible[s]) {
			dealt[c] += n
		}
		for c, n := range Multiset(hidden[s]) {
			dealt[c] += n
		}
	}
	for c, n := range total {
		if dealt[c] != n {
			t.Errorf("card %v dealt %d times, deck had %d", c, dealt[c], n)
		}
	}
}
