// greedy-chess plays chess against a one-ply greedy computer opponent on
// the terminal, or runs batches of computer-versus-computer games.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/greedy-chess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("greedy-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	var err error
	if cfg.SelfPlay.Games > 0 {
		err = runSelfPlay(cfg)
	} else {
		err = runInteractive(cfg, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, `greedy-chess - play chess against a greedy computer

Usage: greedy-chess [options]

Without -selfplay the game is played on the terminal: type moves such as
"e2e4", or a square to select a piece and then its target. Type "help"
during the game for the rules and all commands.

Options:
`)
	flag.PrintDefaults()
}
