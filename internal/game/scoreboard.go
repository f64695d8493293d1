package game

import (
	"sort"
	"sync"
)

// Score is one player's win count.
type Score struct {
	Name string
	Wins int
}

// Scoreboard counts wins per player name across games.
type Scoreboard struct {
	mu   sync.RWMutex
	wins map[string]int
}

// NewScoreboard creates an empty scoreboard.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{wins: make(map[string]int)}
}

// RecordWin adds one win for name.
func (s *Scoreboard) RecordWin(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wins[name]++
}

// Wins returns name's win count.
func (s *Scoreboard) Wins(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wins[name]
}

// HighScores returns up to n players with the most wins, ties broken by
// name. n <= 0 returns everyone.
func (s *Scoreboard) HighScores(n int) []Score {
	s.mu.RLock()
	scores := make([]Score, 0, len(s.wins))
	for name, wins := range s.wins {
		scores = append(scores, Score{Name: name, Wins: wins})
	}
	s.mu.RUnlock()

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Wins != scores[j].Wins {
			return scores[i].Wins > scores[j].Wins
		}
		return scores[i].Name < scores[j].Name
	})
	if n > 0 && len(scores) > n {
		scores = scores[:n]
	}
	return scores
}
