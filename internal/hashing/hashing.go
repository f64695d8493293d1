// Package hashing detects repeated positions within a game and duplicate
// final positions across games.
package hashing

import (
	"github.com/lgbarn/greedy-chess-go/internal/chess"
)

// RepetitionTracker counts how often each position occurs in one game.
type RepetitionTracker struct {
	counts map[uint64]int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64]int)}
}

// Record notes the current position and returns how many times it has now
// been seen, including this time.
func (r *RepetitionTracker) Record(board *chess.Board, toMove chess.Side) int {
	hash := GenerateZobristHash(board, toMove)
	r.counts[hash]++
	return r.counts[hash]
}

// Reset forgets all recorded positions.
func (r *RepetitionTracker) Reset() {
	r.counts = make(map[uint64]int)
}

// PositionSignature identifies a final position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a second checksum for confirmation
	WeakHash uint32
	// Plies is the length of the game that reached it
	Plies int
}

// DuplicateDetector tracks final positions seen across games.
type DuplicateDetector struct {
	hashTable map[uint64][]PositionSignature
	// useExactMatch also requires equal game length
	useExactMatch  bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records the final position of a game of the given length.
// Returns true if an equal position was already recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Side, plies int) bool {
	if board == nil {
		return false
	}

	sig := PositionSignature{
		Hash:     GenerateZobristHash(board, toMove),
		WeakHash: WeakHash(board),
		Plies:    plies,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
}
