package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"tichu/internal/app"
	"tichu/internal/config"
	"tichu/internal/domain"
	"tichu/internal/obslog"
)

// matchHandler implements runtime.Match for a four-seat Tichu table. It
// owns no rule logic: every message is decoded into an app.Intent, handed
// to the embedded app.Session, and the resulting app.Result/app.Event
// values are re-encoded as JSON and dispatched, following the teacher's
// root-level match.go prototype (plain JSON over int64 opcodes) rather than
// the protobuf-based internal/ports/nakama/match_handler.go, since this
// repository has no generated proto package to decode against.
type matchHandler struct{}

func newMatchHandler() *matchHandler { return &matchHandler{} }

// matchState is the authoritative Nakama match state. Session is nil until
// four seats are filled and the owner starts the match.
type matchState struct {
	Seats       [domain.SeatCount]string
	Presences   map[string]runtime.Presence
	OwnerUserID string

	Session *app.Session
	cfg     config.GameConfig
	logger  obslog.Logger
}

type label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Seats int    `json:"seats"`
}

func (m *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	state := &matchState{
		Presences: map[string]runtime.Presence{},
		cfg:       config.DefaultGameConfig(),
		logger:    obslog.New("nakama", "info"),
	}
	labelBytes, _ := json.Marshal(label{Open: true, Game: "tichu", Seats: 0})
	return state, 10, string(labelBytes)
}

func (m *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {

	s := state.(*matchState)
	if _, ok := s.Presences[presence.GetUserId()]; ok {
		return state, true, ""
	}
	if s.Session != nil {
		return state, false, "match_in_progress"
	}
	if lowestOpenSeat(&s.Seats) < 0 {
		return state, false, "match_full"
	}
	return state, true, ""
}

func (m *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*matchState)
	for _, p := range presences {
		uid := p.GetUserId()
		s.Presences[uid] = p
		if seat := lowestOpenSeat(&s.Seats); seat >= 0 {
			s.Seats[seat] = uid
		}
		if s.OwnerUserID == "" {
			s.OwnerUserID = uid
		}
	}
	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

func (m *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*matchState)
	for _, p := range presences {
		uid := p.GetUserId()
		delete(s.Presences, uid)
		for i, seated := range s.Seats {
			if seated == uid {
				s.Seats[i] = ""
			}
		}
		if s.OwnerUserID == uid {
			s.OwnerUserID = ""
			for other := range s.Presences {
				s.OwnerUserID = other
				break
			}
		}
	}
	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

func (m *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {

	s := state.(*matchState)
	for _, msg := range messages {
		seat, ok := seatOf(&s.Seats, msg.GetUserId())
		if !ok {
			continue
		}

		if s.Session == nil {
			if msg.GetOpCode() == OpStartRound && msg.GetUserId() == s.OwnerUserID && lowestOpenSeat(&s.Seats) < 0 {
				s.Session = app.NewSession(s.Seats, s.cfg, rand.New(rand.NewSource(time.Now().UnixNano())), s.logger)
			} else {
				continue
			}
		}

		intent, err := decodeIntent(msg.GetOpCode(), seat, msg.GetData())
		if err != nil {
			sendError(dispatcher, s, msg.GetUserId(), err.Error())
			continue
		}

		result, aerr := s.Session.Apply(intent)
		if aerr != nil {
			sendError(dispatcher, s, msg.GetUserId(), aerr.Error())
			continue
		}
		broadcastResult(dispatcher, s, result)
	}
	return state
}

func (m *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	return state
}

func (m *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

func lowestOpenSeat(seats *[domain.SeatCount]string) int {
	for i, uid := range seats {
		if uid == "" {
			return i
		}
	}
	return -1
}

func seatOf(seats *[domain.SeatCount]string, userID string) (domain.Seat, bool) {
	for i, uid := range seats {
		if uid == userID {
			return domain.Seat(i), true
		}
	}
	return 0, false
}

func buildLabel(s *matchState) string {
	n := 0
	for _, uid := range s.Seats {
		if uid != "" {
			n++
		}
	}
	b, _ := json.Marshal(label{Open: s.Session == nil && n < domain.SeatCount, Game: "tichu", Seats: n})
	return string(b)
}

func broadcastResult(dispatcher runtime.MatchDispatcher, s *matchState, result app.Result) {
	for _, evt := range result.Events {
		payload, _ := json.Marshal(evt)
		_ = dispatcher.BroadcastMessage(OpEvent, payload, nil, nil, true)
	}
	for seat := domain.Seat(0); seat < domain.SeatCount; seat++ {
		uid := s.Seats[seat]
		presence, ok := s.Presences[uid]
		if !ok {
			continue
		}
		viewBytes, _ := json.Marshal(result.View[seat])
		_ = dispatcher.BroadcastMessage(OpView, viewBytes, []runtime.Presence{presence}, nil, true)
	}
}

func sendError(dispatcher runtime.MatchDispatcher, s *matchState, userID string, message string) {
	presence, ok := s.Presences[userID]
	if !ok {
		return
	}
	payload, _ := json.Marshal(map[string]string{"error": message})
	_ = dispatcher.BroadcastMessage(OpError, payload, []runtime.Presence{presence}, nil, true)
}

// decodeIntent unmarshals one opcode's JSON payload into the matching
// app.Intent, stamping it with the seat derived from the sender's presence
// (clients never supply their own seat number).
func decodeIntent(op int64, seat domain.Seat, data []byte) (app.Intent, error) {
	switch op {
	case OpStartRound:
		return app.StartRound{}, nil
	case OpDeclareGrandTichu:
		return app.DeclareGrandTichu{Seat: seat}, nil
	case OpRevealHidden6:
		return app.RevealHidden6{Seat: seat}, nil
	case OpDeclareTichu:
		return app.DeclareTichu{Seat: seat}, nil
	case OpSubmitExchange:
		var p struct {
			ToNext   domain.Card `json:"to_next"`
			ToAcross domain.Card `json:"to_across"`
			ToPrev   domain.Card `json:"to_prev"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return app.SubmitExchange{Seat: seat, ToNext: p.ToNext, ToAcross: p.ToAcross, ToPrev: p.ToPrev}, nil
	case OpPlay:
		var p struct {
			Cards    []domain.Card `json:"cards"`
			WishRank *domain.Rank  `json:"wish_rank,omitempty"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return app.Play{Seat: seat, Cards: p.Cards, WishRank: p.WishRank}, nil
	case OpPass:
		return app.Pass{Seat: seat}, nil
	case OpBombInterrupt:
		var p struct {
			Cards []domain.Card `json:"cards"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return app.BombInterrupt{Seat: seat, Cards: p.Cards}, nil
	case OpSelectDragonRecipient:
		var p struct {
			Recipient domain.Seat `json:"recipient"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return app.SelectDragonRecipient{Seat: seat, Recipient: p.Recipient}, nil
	default:
		return nil, errUnknownOpcode
	}
}

var errUnknownOpcode = jsonError("unknown opcode")

type jsonError string

func (e jsonError) Error() string { return string(e) }
