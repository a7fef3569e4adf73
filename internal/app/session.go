package app

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"tichu/internal/config"
	"tichu/internal/domain"
	"tichu/internal/obslog"
)

// Session is the C8 state machine composing domain.Round and domain.Match
// across a whole match's lifetime, generalizing the teacher's
// internal/app/service.go Service from Tien Len's single-phase flow to
// Tichu's Dealt -> GrandTichuWindow -> Exchange -> Play -> RoundEnded cycle
// repeated until the match ends. It holds no goroutines, channels, or
// mutexes: every call is driven serially by whatever transport embeds it.
type Session struct {
	ID          uuid.UUID
	SeatUserIDs [domain.SeatCount]string

	cfg    config.GameConfig
	rng    *rand.Rand
	logger obslog.Logger

	match *domain.Match
	round *domain.Round
}

// Result is returned by every Session.Apply call.
type Result struct {
	View   [domain.SeatCount]SeatView
	Events []Event
}

// NewSession constructs a Session for four seats, applying cfg's engine
// tunables to the domain package before anything is dealt.
func NewSession(seatUserIDs [domain.SeatCount]string, cfg config.GameConfig, rng *rand.Rand, logger obslog.Logger) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = obslog.Nop
	}
	config.ApplyToDomain(cfg)
	id := uuid.New()
	return &Session{
		ID:          id,
		SeatUserIDs: seatUserIDs,
		cfg:         cfg,
		rng:         rng,
		logger:      logger.With("match_id", id.String()),
		match:       domain.NewMatch(),
	}
}

// Apply dispatches one intent against the session's current round, folding
// any round-end result into the match and returning the post-intent
// per-seat views plus whatever events the intent produced. Rejections
// leave session state untouched, matching the domain layer's guarantee.
func (s *Session) Apply(intent Intent) (Result, error) {
	events, err := s.dispatch(intent)
	if err != nil {
		s.logger.Warn("intent rejected", "reason", err.Reason, "detail", err.Detail)
		if err.Reason == domain.ReasonEngineInvariant {
			s.logger.Error("engine invariant violated, session should stop", "detail", err.Detail)
		}
		return Result{}, err
	}
	return Result{View: s.buildAllViews(), Events: events}, nil
}

func (s *Session) dispatch(intent Intent) ([]Event, *domain.EngineError) {
	switch it := intent.(type) {
	case StartRound:
		return s.startRound()
	case DeclareGrandTichu:
		return s.withRound(func(r *domain.Round) (*domain.ActionOutcome, *domain.EngineError) {
			return r.DeclareGrandTichu(it.Seat)
		}, Event{Kind: EventGrandTichu, Payload: SeatPayload{Seat: it.Seat}})
	case RevealHidden6:
		return s.withRound(func(r *domain.Round) (*domain.ActionOutcome, *domain.EngineError) {
			return r.RevealHidden6(it.Seat)
		}, Event{Kind: EventHandRevealed, Payload: SeatPayload{Seat: it.Seat}})
	case DeclareTichu:
		return s.withRound(func(r *domain.Round) (*domain.ActionOutcome, *domain.EngineError) {
			return r.DeclareTichu(it.Seat)
		}, Event{Kind: EventTichuDeclared, Payload: SeatPayload{Seat: it.Seat}})
	case SubmitExchange:
		return s.withRound(func(r *domain.Round) (*domain.ActionOutcome, *domain.EngineError) {
			return r.SubmitExchange(it.Seat, it.ToNext, it.ToAcross, it.ToPrev)
		}, Event{Kind: EventExchangeSubmitted, Payload: SeatPayload{Seat: it.Seat}})
	case Play:
		return s.withRound(func(r *domain.Round) (*domain.ActionOutcome, *domain.EngineError) {
			return r.Play(it.Seat, it.Cards, it.WishRank)
		}, Event{Kind: EventCardsPlayed, Payload: CardsPlayedPayload{Seat: it.Seat, Cards: it.Cards}})
	case Pass:
		return s.withRound(func(r *domain.Round) (*domain.ActionOutcome, *domain.EngineError) {
			return r.Pass(it.Seat)
		}, Event{Kind: EventTurnPassed, Payload: SeatPayload{Seat: it.Seat}})
	case BombInterrupt:
		return s.withRound(func(r *domain.Round) (*domain.ActionOutcome, *domain.EngineError) {
			return r.BombInterrupt(it.Seat, it.Cards)
		}, Event{Kind: EventCardsPlayed, Payload: CardsPlayedPayload{Seat: it.Seat, Cards: it.Cards}})
	case SelectDragonRecipient:
		return s.withRound(func(r *domain.Round) (*domain.ActionOutcome, *domain.EngineError) {
			return r.SelectDragonRecipient(it.Seat, it.Recipient)
		}, Event{Kind: EventDragonGiftResolved, Payload: DragonGiftResolvedPayload{Recipient: it.Recipient}})
	default:
		return nil, domain.Rejection(domain.ReasonWrongPhase)
	}
}

// startRound deals a fresh Round, refusing to do so while one is already in
// progress or the match has already ended.
func (s *Session) startRound() ([]Event, *domain.EngineError) {
	if s.match.Finished {
		return nil, domain.Rejection(domain.ReasonWrongPhase)
	}
	if s.round != nil && s.round.Phase != domain.PhaseRoundEnded {
		return nil, domain.Rejection(domain.ReasonWrongPhase)
	}
	deck := domain.Shuffle(domain.NewDeck(), s.rng)
	s.round = domain.NewRound(deck)
	return []Event{{Kind: EventRoundDealt, Payload: RoundDealtPayload{MahJongHolder: s.round.MahJongHolder}}}, nil
}

// withRound runs action against the current round (rejecting if none is in
// progress), translates the resulting ActionOutcome into events alongside
// the intent-specific lead event, and folds a round-end result into the
// match when one occurs.
func (s *Session) withRound(action func(*domain.Round) (*domain.ActionOutcome, *domain.EngineError), lead Event) ([]Event, *domain.EngineError) {
	if s.round == nil {
		return nil, domain.Rejection(domain.ReasonWrongPhase)
	}
	outcome, err := action(s.round)
	if err != nil {
		return nil, err
	}
	events := []Event{lead}
	events = append(events, s.translateOutcome(outcome)...)
	return events, nil
}

// translateOutcome renders the domain-neutral facts in outcome into
// concrete session events, folding a round-end result into the match total
// and appending a MatchEnded event if the match terminates.
func (s *Session) translateOutcome(outcome *domain.ActionOutcome) []Event {
	if outcome == nil {
		return nil
	}
	var events []Event

	if outcome.WishSet != nil {
		events = append(events, Event{Kind: EventWishSet, Payload: WishSetPayload{Rank: *outcome.WishSet}})
	}
	if outcome.WishCleared {
		events = append(events, Event{Kind: EventWishCleared})
	}
	if outcome.TrickWon != nil {
		events = append(events, Event{Kind: EventTrickWon, Payload: TrickWonPayload{Winner: *outcome.TrickWon}})
	}
	if outcome.DragonGiftPending {
		giver := domain.Seat(0)
		if s.round.DragonPending != nil {
			giver = s.round.DragonPending.Giver
		}
		events = append(events, Event{Kind: EventDragonGiftPending, Payload: DragonGiftPendingPayload{Giver: giver}})
	}
	if outcome.SeatFinished != nil {
		events = append(events, Event{Kind: EventSeatFinished, Payload: SeatPayload{Seat: *outcome.SeatFinished}})
	}
	if outcome.ExchangeCompleted {
		events = append(events, Event{Kind: EventExchangeCompleted})
	}
	if outcome.RoundEnded != nil {
		s.match.AccumulateRound(outcome.RoundEnded.TeamDelta)
		events = append(events, Event{Kind: EventRoundEnded, Payload: RoundEndedPayload{Result: *outcome.RoundEnded}})
		if s.match.Finished {
			events = append(events, Event{Kind: EventMatchEnded, Payload: MatchEndedPayload{
				WinnerTeam: s.match.WinnerTeam,
				TeamScores: s.match.TeamScores,
			}})
		}
	}
	return events
}
