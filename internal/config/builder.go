package config

import (
	"io"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithHumanSide sets the side the human plays.
func (b *ConfigBuilder) WithHumanSide(side chess.Side) *ConfigBuilder {
	b.cfg.Play.HumanSide = side
	return b
}

// WithDifficulty sets the computer's difficulty in play mode.
func (b *ConfigBuilder) WithDifficulty(d Difficulty) *ConfigBuilder {
	b.cfg.Play.Difficulty = d
	return b
}

// WithPlayerNames sets the human and computer player names.
func (b *ConfigBuilder) WithPlayerNames(human, computer string) *ConfigBuilder {
	b.cfg.Play.PlayerNames = [2]string{human, computer}
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Seed = seed
	return b
}

// WithSelfPlay enables self-play of n games on the given number of workers.
func (b *ConfigBuilder) WithSelfPlay(n, workers int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = n
	b.cfg.SelfPlay.Workers = workers
	return b
}

// WithSelfPlayDifficulty sets both sides' difficulty for self-play.
func (b *ConfigBuilder) WithSelfPlayDifficulty(white, black Difficulty) *ConfigBuilder {
	b.cfg.SelfPlay.WhiteDifficulty = white
	b.cfg.SelfPlay.BlackDifficulty = black
	return b
}

// WithMaxPlies caps the length of self-play games.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.SelfPlay.MaxPlies = n
	return b
}

// WithShowBoard controls board drawing after each move.
func (b *ConfigBuilder) WithShowBoard(show bool) *ConfigBuilder {
	b.cfg.ShowBoard = show
	return b
}

// WithJSON writes self-play results as JSON.
func (b *ConfigBuilder) WithJSON(on bool) *ConfigBuilder {
	b.cfg.JSONFormat = on
	return b
}

// WithLineLength sets the wrap width for move lists.
func (b *ConfigBuilder) WithLineLength(n int) *ConfigBuilder {
	b.cfg.MaxLineLength = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
