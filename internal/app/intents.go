package app

import "tichu/internal/domain"

// Intent is a client-issued command against a Session. Concrete types are
// one-to-one with the operations named in spec §4 (Play, Pass,
// BombInterrupt, SelectDragonRecipient, SubmitExchange, DeclareGrandTichu,
// RevealHidden6, DeclareTichu) plus the session-level StartRound that has no
// domain-layer equivalent because dealing belongs to the session, not a
// round already in progress.
type Intent interface {
	isIntent()
}

// StartRound deals a fresh Round into the session. It is only valid when no
// round is in progress and the match (if any) has not finished.
type StartRound struct{}

// DeclareGrandTichu declares Grand Tichu for Seat during the reveal window.
type DeclareGrandTichu struct {
	Seat domain.Seat
}

// RevealHidden6 reveals Seat's hidden six without declaring Grand Tichu.
type RevealHidden6 struct {
	Seat domain.Seat
}

// DeclareTichu declares a plain Tichu for Seat before its first card.
type DeclareTichu struct {
	Seat domain.Seat
}

// SubmitExchange submits Seat's three outgoing exchange cards.
type SubmitExchange struct {
	Seat     domain.Seat
	ToNext   domain.Card
	ToAcross domain.Card
	ToPrev   domain.Card
}

// Play submits a combination from Seat. WishRank is only consulted when
// Cards is a Mah Jong single played as the opening lead.
type Play struct {
	Seat     domain.Seat
	Cards    []domain.Card
	WishRank *domain.Rank
}

// Pass passes Seat's turn.
type Pass struct {
	Seat domain.Seat
}

// BombInterrupt submits an out-of-turn bomb from Seat.
type BombInterrupt struct {
	Seat  domain.Seat
	Cards []domain.Card
}

// SelectDragonRecipient names the opponent who receives a pending Dragon
// gift.
type SelectDragonRecipient struct {
	Seat      domain.Seat
	Recipient domain.Seat
}

func (StartRound) isIntent()            {}
func (DeclareGrandTichu) isIntent()     {}
func (RevealHidden6) isIntent()         {}
func (DeclareTichu) isIntent()          {}
func (SubmitExchange) isIntent()        {}
func (Play) isIntent()                  {}
func (Pass) isIntent()                  {}
func (BombInterrupt) isIntent()         {}
func (SelectDragonRecipient) isIntent() {}
