// selfplay.go - Parallel computer-versus-computer games
package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/config"
	"github.com/lgbarn/greedy-chess-go/internal/game"
	"github.com/lgbarn/greedy-chess-go/internal/hashing"
	"github.com/lgbarn/greedy-chess-go/internal/output"
	"github.com/lgbarn/greedy-chess-go/internal/worker"
)

// selfPlayStats summarises a batch.
type selfPlayStats struct {
	games      int
	undecided  int
	duplicates int
	scores     *game.Scoreboard
}

// runSelfPlay plays cfg.SelfPlay.Games games on the worker pool and writes
// them in game order. An interrupt stops games that have not started yet.
func runSelfPlay(cfg *config.Config) error {
	sp := cfg.SelfPlay
	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	dup := hashing.NewThreadSafeDuplicateDetector(false)
	pool := worker.NewPool(worker.MatchProcessor(sp, dup),
		worker.WithWorkers(sp.Workers),
		worker.WithBufferSize(sp.Workers*2))

	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-sigs:
			pool.Stop()
		case <-done:
		}
	}()

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Playing %d games on %d workers (%v vs %v, seed %d)\n",
			sp.Games, pool.NumWorkers(), sp.WhiteDifficulty, sp.BlackDifficulty, baseSeed)
	}
	results := pool.Run(worker.Items(sp.Games, baseSeed))
	close(done)

	stats, err := writeSelfPlay(cfg, results)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 0 {
		reportSelfPlay(cfg, stats)
	}
	return nil
}

// writeSelfPlay writes every result and tallies the batch.
func writeSelfPlay(cfg *config.Config, results []worker.ProcessResult) (*selfPlayStats, error) {
	var writer output.MatchWriter
	if cfg.JSONFormat {
		writer = output.NewJSONWriter(cfg.OutputFile)
	} else {
		writer = output.NewTextWriter(cfg.OutputFile, cfg.MaxLineLength, cfg.ShowBoard)
	}

	stats := &selfPlayStats{scores: game.NewScoreboard()}
	for _, r := range results {
		if r.Error != nil {
			return nil, fmt.Errorf("game %d: %w", r.Index+1, r.Error)
		}
		rec := output.MatchRecord{
			Index:     r.Index,
			White:     cfg.SelfPlay.WhiteDifficulty.String(),
			Black:     cfg.SelfPlay.BlackDifficulty.String(),
			Duplicate: r.Duplicate,
			Result:    r.Result,
		}
		if err := writer.WriteMatch(rec); err != nil {
			return nil, err
		}

		stats.games++
		if r.Duplicate {
			stats.duplicates++
		}
		if r.Result.Decided() {
			stats.scores.RecordWin(r.Result.Winner.String())
		} else {
			stats.undecided++
		}
	}
	return stats, writer.Close()
}

// reportSelfPlay writes the batch summary to the log.
func reportSelfPlay(cfg *config.Config, stats *selfPlayStats) {
	fmt.Fprintf(cfg.LogFile, "%d games: White %d, Black %d, undecided %d, %d duplicate final positions\n",
		stats.games,
		stats.scores.Wins(chess.White.String()),
		stats.scores.Wins(chess.Black.String()),
		stats.undecided,
		stats.duplicates)
}
