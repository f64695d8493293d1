package engine

import "github.com/lgbarn/greedy-chess-go/internal/chess"

// pawnMoves appends the pawn's pushes, then its diagonal captures (left
// column first). There is no en passant and no promotion: a pawn on the far
// row simply has no forward square.
func pawnMoves(board *chess.Board, side chess.Side, from chess.Square, moves []chess.Square) []chess.Square {
	dir := chess.PawnDirection(side)

	one := from.Offset(dir, 0)
	if one.InBounds() && board.IsEmpty(one) {
		moves = append(moves, one)

		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnStartRow(side) && two.InBounds() && board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		sq := from.Offset(dir, dc)
		if !sq.InBounds() {
			continue
		}
		target := board.Get(sq)
		if !target.IsEmpty() && target.Side != side {
			moves = append(moves, sq)
		}
	}
	return moves
}
