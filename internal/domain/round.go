package domain

// Phase is the round-local phase per spec §4.8. The session layer (app
// package) composes these into the full match lifecycle, adding
// MatchEnded on top.
type Phase int

const (
	PhaseDealt Phase = iota
	PhaseGrandTichuWindow
	PhaseExchange
	PhasePlay
	PhaseRoundEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseDealt:
		return "dealt"
	case PhaseGrandTichuWindow:
		return "grand_tichu_window"
	case PhaseExchange:
		return "exchange"
	case PhasePlay:
		return "play"
	case PhaseRoundEnded:
		return "round_ended"
	default:
		return "unknown"
	}
}

// Wish is the persistent constraint set by playing Mah Jong as a single.
type Wish struct {
	Rank   Rank
	Active bool
}

// DragonGift blocks further play until the Dragon player names a recipient.
type DragonGift struct {
	Giver  Seat
	Cards  []Card
	Points int
}

// Play is one seat's contribution to the current trick.
type Play struct {
	Seat  Seat
	Cards []Card
	Combo Combination
}

// Stack accumulates a seat's won tricks for round-end scoring.
type Stack struct {
	Cards      []Card
	CardPoints int
}

// ExchangeSlot holds one seat's three outgoing exchange cards, one field per
// recipient: ToNext=next seat, ToAcross=partner, ToPrev=previous seat.
type ExchangeSlot struct {
	Submitted bool
	ToNext    Card
	ToAcross  Card
	ToPrev    Card
}

// Round is the complete mutable state of one deal, per spec §3. All
// per-seat data is a fixed [4]T array indexed by Seat, never a map, per
// the design note against cyclic/shared references.
type Round struct {
	Phase Phase

	Hands   [SeatCount][]Card
	Hidden6 [SeatCount][]Card

	Revealed        [SeatCount]bool
	GrandTichu      [SeatCount]bool
	Tichu           [SeatCount]bool
	FirstCardPlayed [SeatCount]bool

	LeadSeat    Seat
	CurrentSeat Seat
	Passed      [SeatCount]bool
	Out         []Seat

	CurrentTrick []Play

	Wish          Wish
	DragonPending *DragonGift
	DogPriority   *Seat

	Stacks [SeatCount]Stack

	Exchange [SeatCount]ExchangeSlot

	// MahJongHolder tracks the current holder of Mah Jong so the
	// first-trick obligation and post-exchange relocation (spec §4.5) can
	// be checked without scanning hands.
	MahJongHolder Seat

	// mahJongPlayed becomes true once Mah Jong obligation for the first
	// trick has been satisfied; guards must only enforce it before this.
	mahJongPlayed bool
}

// NewRound deals a freshly shuffled 56-card deck and returns a Round already
// in PhaseGrandTichuWindow: per spec, that window is open per seat "from the
// moment the round is dealt", so dealing and opening the window coincide.
// PhaseDealt exists only as the phase ordinal preceding it; no Round is ever
// constructed sitting in it. The caller supplies an already-shuffled deck
// (see Shuffle).
func NewRound(shuffled []Card) *Round {
	visible, hidden := Deal(shuffled)
	r := &Round{
		Phase:   PhaseGrandTichuWindow,
		Hands:   visible,
		Hidden6: hidden,
	}
	for s := Seat(0); s < SeatCount; s++ {
		if ContainsAll(r.Hands[s], []Card{MahJong}) {
			r.MahJongHolder = s
		}
	}
	if !GrandTichuEnabled {
		for s := Seat(0); s < SeatCount; s++ {
			r.revealHidden6(s)
		}
	}
	return r
}

// HasCards reports whether seat still holds any cards in its hand. The
// hidden six are not counted; they are merged into the hand on reveal,
// before play begins.
func (r *Round) HasCards(s Seat) bool {
	return len(r.Hands[s]) > 0
}

// IsOut reports whether seat has already finished the round.
func (r *Round) IsOut(s Seat) bool {
	for _, o := range r.Out {
		if o == s {
			return true
		}
	}
	return false
}

// nextActive scans seats in clockwise order starting at from (inclusive)
// and returns the first seat that is not out, still has cards, and (if
// skipPassed) has not passed this trick.
func (r *Round) nextActive(from Seat, skipPassed bool) (Seat, bool) {
	s := from
	for i := 0; i < SeatCount; i++ {
		if !r.IsOut(s) && r.HasCards(s) && (!skipPassed || !r.Passed[s]) {
			return s, true
		}
		s = s.Next()
	}
	return 0, false
}

// remainingActiveCount counts seats neither out nor empty-handed.
func (r *Round) remainingActiveCount() int {
	n := 0
	for s := Seat(0); s < SeatCount; s++ {
		if !r.IsOut(s) && r.HasCards(s) {
			n++
		}
	}
	return n
}

// currentHighest returns the strongest non-superseded play in the current
// trick, i.e. the last play (every accepted play already beat whichever
// preceded it, or was the opening lead).
func (r *Round) currentHighest() (Play, bool) {
	if len(r.CurrentTrick) == 0 {
		return Play{}, false
	}
	return r.CurrentTrick[len(r.CurrentTrick)-1], true
}
