// Package config provides configuration for greedy-chess.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/greedy-chess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=every move

	// Draw the board after every move.
	ShowBoard bool

	// Seed for the random selector. 0 means "derive from the clock".
	Seed int64

	// Self-play output
	JSONFormat    bool
	MaxLineLength int

	Play     *PlayConfig
	SelfPlay *SelfPlayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:     1,
		ShowBoard:     true,
		MaxLineLength: 80,
		Play:          NewPlayConfig(),
		SelfPlay:      NewSelfPlayConfig(),
		OutputFile:    os.Stdout,
		LogFile:       os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0-2", c.Verbosity)
	}
	if c.MaxLineLength < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "line length %d", c.MaxLineLength)
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	return c.SelfPlay.Validate()
}
