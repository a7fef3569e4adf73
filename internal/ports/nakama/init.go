package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule registers the Tichu match handler with the Nakama runtime.
// There are no RPCs to register: the whole surface is the match itself,
// since this module has no lobby/matchmaking/economy concerns (see
// DESIGN.md for the teacher subsystems dropped alongside those RPCs).
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := initializer.RegisterMatch(MatchName, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(), nil
	}); err != nil {
		return err
	}

	logger.Info("Tichu Go module loaded.")
	return nil
}
