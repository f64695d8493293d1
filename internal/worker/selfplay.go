package worker

import (
	"github.com/lgbarn/greedy-chess-go/internal/config"
	"github.com/lgbarn/greedy-chess-go/internal/game"
	"github.com/lgbarn/greedy-chess-go/internal/hashing"
)

// Items returns n work items with seeds derived from seed.
func Items(n int, seed int64) []WorkItem {
	items := make([]WorkItem, n)
	for i := range items {
		items[i] = WorkItem{Index: i, Seed: seed + int64(i)*2}
	}
	return items
}

// MatchProcessor returns a ProcessFunc that plays one self-play game per
// item. Each call builds its own selectors and board. When dup is non-nil
// the final position is checked against every earlier game.
func MatchProcessor(cfg *config.SelfPlayConfig, dup *hashing.ThreadSafeDuplicateDetector) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		m := &game.Match{
			White:    game.SelectorFor(cfg.WhiteDifficulty, item.Seed),
			Black:    game.SelectorFor(cfg.BlackDifficulty, item.Seed+1),
			MaxPlies: cfg.MaxPlies,
		}
		res := m.Play()
		out := ProcessResult{Index: item.Index, Result: res}
		if dup != nil {
			out.Duplicate = dup.CheckAndAdd(res.Board, res.ToMove, res.Plies)
		}
		return out
	}
}
