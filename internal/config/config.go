package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"tichu/internal/domain"
)

// GameConfig holds the engine-level tunables a table can override: the
// match-ending score threshold and whether the Grand Tichu window is
// offered at all (some house rules skip it).
type GameConfig struct {
	MatchTargetScore    int  `json:"match_target_score"`
	GrandTichuEnabled   bool `json:"grand_tichu_enabled"`
	TurnDurationSeconds int  `json:"turn_duration_seconds"`
}

// DefaultGameConfig matches canonical Tichu table rules.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		MatchTargetScore:    1000,
		GrandTichuEnabled:   true,
		TurnDurationSeconds: 30,
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. It is
// safe to call from multiple goroutines; only the first call's path wins.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c := DefaultGameConfig()
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the default if
// LoadGameConfig was never called.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return DefaultGameConfig()
	}
	return *cfg
}

// ApplyToDomain pushes the config's engine-level tunables into the domain
// package's package-level knobs: the match target score (only when
// positive) and the Grand Tichu switch. domain.MatchTargetScore and
// domain.GrandTichuEnabled are vars precisely so this can override them.
func ApplyToDomain(c GameConfig) {
	if c.MatchTargetScore > 0 {
		domain.MatchTargetScore = c.MatchTargetScore
	}
	domain.GrandTichuEnabled = c.GrandTichuEnabled
}
