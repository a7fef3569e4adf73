package nakama

// MatchName is the authoritative match handler name registered with Nakama.
const MatchName = "tichu_match"

// Op codes for client -> server messages, and the server -> client
// envelopes wrapping app.Result and app.Event. The adapter never carries
// rule logic: every opcode below maps onto exactly one app.Intent type and
// back, matching the teacher's minimal int64-opcode convention in
// internal/ports/nakama/constants.go, generalized to JSON payloads.
const (
	OpStartRound             int64 = 1
	OpDeclareGrandTichu      int64 = 2
	OpRevealHidden6          int64 = 3
	OpDeclareTichu           int64 = 4
	OpSubmitExchange         int64 = 5
	OpPlay                   int64 = 6
	OpPass                   int64 = 7
	OpBombInterrupt          int64 = 8
	OpSelectDragonRecipient  int64 = 9

	// Server -> client
	OpView  int64 = 101 // sent privately, one per seat, after every accepted intent
	OpEvent int64 = 102 // broadcast, one per app.Event emitted
	OpError int64 = 103 // sent privately to the seat whose intent was rejected
)
