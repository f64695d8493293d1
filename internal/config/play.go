package config

import (
	"strings"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/errors"
)

// Difficulty selects how the computer chooses its moves.
type Difficulty int

const (
	Easy   Difficulty = iota // uniformly random candidate move
	Medium                   // greedy one-ply search
	Hard                     // greedy one-ply search
)

var difficultyNames = []string{"easy", "medium", "hard"}

// String returns the lower-case name of the difficulty.
func (d Difficulty) String() string {
	if d >= 0 && int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return "unknown"
}

// Greedy reports whether the difficulty uses the greedy selector.
func (d Difficulty) Greedy() bool {
	return d != Easy
}

// ParseDifficulty accepts "easy", "med"/"medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "med", "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, errors.Wrapf(errors.ErrInvalidConfig, "unknown difficulty %q", s)
}

// ParseSide accepts "white"/"w" or "black"/"b" in any case.
func ParseSide(s string) (chess.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, errors.Wrapf(errors.ErrInvalidConfig, "unknown side %q", s)
}

// PlayConfig holds settings for a human-versus-computer game.
type PlayConfig struct {
	HumanSide  chess.Side
	Difficulty Difficulty

	// PlayerNames[0] is the human, PlayerNames[1] the computer.
	PlayerNames [2]string
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		HumanSide:   chess.White,
		Difficulty:  Hard,
		PlayerNames: [2]string{"Player 1", "Player 2"},
	}
}

// AISide returns the side the computer plays.
func (c *PlayConfig) AISide() chess.Side {
	return c.HumanSide.Opposite()
}

// Validate checks the play settings.
func (c *PlayConfig) Validate() error {
	if c.HumanSide != chess.White && c.HumanSide != chess.Black {
		return errors.Wrapf(errors.ErrInvalidConfig, "human side %d", int(c.HumanSide))
	}
	if c.Difficulty < Easy || c.Difficulty > Hard {
		return errors.Wrapf(errors.ErrInvalidConfig, "difficulty %d", int(c.Difficulty))
	}
	if strings.TrimSpace(c.PlayerNames[0]) == strings.TrimSpace(c.PlayerNames[1]) {
		return errors.Wrapf(errors.ErrInvalidConfig, "both players are named %q", c.PlayerNames[0])
	}
	return nil
}
