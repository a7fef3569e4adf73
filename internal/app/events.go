package app

import "tichu/internal/domain"

// EventKind identifies an emitted event for adapter dispatch (Nakama
// broadcast, CLI printout), mirroring the teacher's EventKind/Event split in
// internal/app/events.go.
type EventKind string

const (
	EventRoundDealt       EventKind = "round_dealt"
	EventGrandTichu       EventKind = "grand_tichu_declared"
	EventHandRevealed     EventKind = "hand_revealed"
	EventTichuDeclared    EventKind = "tichu_declared"
	EventExchangeSubmitted EventKind = "exchange_submitted"
	EventExchangeCompleted EventKind = "exchange_completed"
	EventCardsPlayed      EventKind = "cards_played"
	EventDogPlayed        EventKind = "dog_played"
	EventTurnPassed       EventKind = "turn_passed"
	EventTrickWon         EventKind = "trick_won"
	EventDragonGiftPending EventKind = "dragon_gift_pending"
	EventDragonGiftResolved EventKind = "dragon_gift_resolved"
	EventWishSet          EventKind = "wish_set"
	EventWishCleared      EventKind = "wish_cleared"
	EventSeatFinished     EventKind = "seat_finished"
	EventRoundEnded       EventKind = "round_ended"
	EventMatchEnded       EventKind = "match_ended"
)

// Event is a session-level event with optional targeted recipients; an
// empty Recipients means broadcast to all four seats, matching the
// teacher's Event.Recipients convention.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Seat
}

type RoundDealtPayload struct {
	MahJongHolder domain.Seat
}

type SeatPayload struct {
	Seat domain.Seat
}

type CardsPlayedPayload struct {
	Seat  domain.Seat
	Cards []domain.Card
}

type TrickWonPayload struct {
	Winner domain.Seat
}

type DragonGiftPendingPayload struct {
	Giver domain.Seat
}

type DragonGiftResolvedPayload struct {
	Recipient domain.Seat
}

type WishSetPayload struct {
	Rank domain.Rank
}

type RoundEndedPayload struct {
	Result domain.RoundResult
}

type MatchEndedPayload struct {
	WinnerTeam int
	TeamScores [2]int
}
