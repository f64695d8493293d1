package engine

import (
	"math/rand"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
)

// Selector chooses a move for side without changing board.
type Selector interface {
	Select(board *chess.Board, side chess.Side) (chess.Move, bool)
}

// SelectMove runs the one-ply greedy search: every candidate move for side
// is scored with Evaluate and the highest score wins. A later move must
// score strictly higher to replace the current best, so ties go to the
// first move found in CandidateMoves order. ok is false when side has no
// move at all.
func SelectMove(board *chess.Board, side chess.Side) (best chess.Move, score int, ok bool) {
	opponent := side.Opposite()
	for _, m := range CandidateMoves(board, side) {
		s := Evaluate(board, side, opponent, m)
		if !ok || s > score {
			best, score, ok = m, s, true
		}
	}
	return best, score, ok
}

// SelectAndApplyMove plays the greedy move for side on board. When side has
// no move the board is left untouched; that is not an error.
func SelectAndApplyMove(board *chess.Board, side chess.Side) {
	if m, _, ok := SelectMove(board, side); ok {
		board.Move(m.From, m.To)
	}
}

// RandomMove picks one of side's candidate moves uniformly at random.
func RandomMove(board *chess.Board, side chess.Side, rng *rand.Rand) (chess.Move, bool) {
	moves := CandidateMoves(board, side)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}

// Greedy is the Selector backed by SelectMove.
type Greedy struct{}

// Select implements Selector.
func (Greedy) Select(board *chess.Board, side chess.Side) (chess.Move, bool) {
	m, _, ok := SelectMove(board, side)
	return m, ok
}

// Random is the Selector backed by RandomMove.
type Random struct {
	Rand *rand.Rand
}

// NewRandom returns a Random selector seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{Rand: rand.New(rand.NewSource(seed))}
}

// Select implements Selector.
func (r *Random) Select(board *chess.Board, side chess.Side) (chess.Move, bool) {
	return RandomMove(board, side, r.Rand)
}
