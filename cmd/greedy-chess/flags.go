// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/greedy-chess-go/internal/config"
)

var (
	// Game options
	sideFlag       = flag.String("side", "white", "Side you play: white or black")
	difficultyFlag = flag.String("difficulty", "hard", "Computer difficulty: easy, medium or hard")
	playerName     = flag.String("name", "Player 1", "Your name")
	computerName   = flag.String("ai-name", "Player 2", "The computer's name")
	seed           = flag.Int64("seed", 0, "Random seed for the easy computer (0 = from the clock)")
	noBoard        = flag.Bool("noboard", false, "Don't draw the board after each move")

	// Self-play options
	selfPlay   = flag.Int("selfplay", 0, "Play N computer-versus-computer games and exit")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	maxPlies   = flag.Int("maxplies", 400, "Stop a self-play game after N plies")
	whiteLevel = flag.String("white", "hard", "Self-play difficulty for White")
	blackLevel = flag.String("black", "easy", "Self-play difficulty for Black")
	jsonOutput = flag.Bool("J", false, "Write self-play games in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("verbosity", 1, "Log detail: 0 = none, 1 = game events, 2 = every move")
	quiet      = flag.Bool("s", false, "Silent mode (same as -verbosity 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayFlags(cfg); err != nil {
		return err
	}
	if err := applySelfPlayFlags(cfg); err != nil {
		return err
	}

	cfg.Seed = *seed
	cfg.ShowBoard = !*noBoard
	cfg.JSONFormat = *jsonOutput
	cfg.MaxLineLength = *lineLength
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyPlayFlags configures the human-versus-computer game.
func applyPlayFlags(cfg *config.Config) error {
	side, err := config.ParseSide(*sideFlag)
	if err != nil {
		return err
	}
	level, err := config.ParseDifficulty(*difficultyFlag)
	if err != nil {
		return err
	}
	cfg.Play.HumanSide = side
	cfg.Play.Difficulty = level
	cfg.Play.PlayerNames = [2]string{*playerName, *computerName}
	return nil
}

// applySelfPlayFlags configures self-play batches.
func applySelfPlayFlags(cfg *config.Config) error {
	white, err := config.ParseDifficulty(*whiteLevel)
	if err != nil {
		return err
	}
	black, err := config.ParseDifficulty(*blackLevel)
	if err != nil {
		return err
	}
	cfg.SelfPlay.Games = *selfPlay
	cfg.SelfPlay.MaxPlies = *maxPlies
	cfg.SelfPlay.WhiteDifficulty = white
	cfg.SelfPlay.BlackDifficulty = black
	if *workers > 0 {
		cfg.SelfPlay.Workers = *workers
	}
	return nil
}
