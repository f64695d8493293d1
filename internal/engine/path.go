package engine

import "github.com/lgbarn/greedy-chess-go/internal/chess"

// direction is a single-step (row, column) delta.
type direction struct {
	dr, dc int
}

// Ray sets in generation order. The order decides tie-breaks in move
// selection and must not change.
var (
	straightRays = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalRays = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// slide appends to moves every square reachable from `from` along each ray
// in turn. A ray stops at the board edge or at the first occupied square;
// that square is included only when it holds a piece of the other side.
func slide(board *chess.Board, side chess.Side, from chess.Square, rays []direction, moves []chess.Square) []chess.Square {
	for _, d := range rays {
		for sq := from.Offset(d.dr, d.dc); sq.InBounds(); sq = sq.Offset(d.dr, d.dc) {
			target := board.Get(sq)
			if target.IsEmpty() {
				moves = append(moves, sq)
				continue
			}
			if target.Side != side {
				moves = append(moves, sq)
			}
			break
		}
	}
	return moves
}

// leap appends each in-bounds offset square that is empty or holds an
// opposing piece.
func leap(board *chess.Board, side chess.Side, from chess.Square, offsets []direction, moves []chess.Square) []chess.Square {
	for _, d := range offsets {
		sq := from.Offset(d.dr, d.dc)
		if !sq.InBounds() || board.Get(sq).Belongs(side) {
			continue
		}
		moves = append(moves, sq)
	}
	return moves
}
