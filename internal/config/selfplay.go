package config

import (
	"runtime"

	"github.com/lgbarn/greedy-chess-go/internal/errors"
)

// SelfPlayConfig holds settings for computer-versus-computer batches.
type SelfPlayConfig struct {
	Games    int // 0 disables self-play
	Workers  int
	MaxPlies int // a game still going after this many plies is unfinished

	// Difficulty of each side.
	WhiteDifficulty Difficulty
	BlackDifficulty Difficulty
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Workers:         runtime.NumCPU(),
		MaxPlies:        400,
		WhiteDifficulty: Hard,
		BlackDifficulty: Easy,
	}
}

// Validate checks the self-play settings.
func (c *SelfPlayConfig) Validate() error {
	if c.Games < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "games = %d", c.Games)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers = %d", c.Workers)
	}
	if c.MaxPlies < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max plies = %d", c.MaxPlies)
	}
	return nil
}
