package engine

import "github.com/lgbarn/greedy-chess-go/internal/chess"

var (
	knightOffsets = []direction{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets = []direction{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
)

// GenerateMoves returns the pseudo-legal destinations of piece standing on
// at. Only the board edge, blocking pieces and "no landing on your own
// piece" are considered; check is ignored entirely.
//
// The result order is fixed: rays are walked one at a time (Rook rays before
// Bishop rays for a Queen) and leapers follow their offset tables. The
// greedy selector breaks ties by this order.
func GenerateMoves(board *chess.Board, piece chess.Piece, at chess.Square) []chess.Square {
	side := piece.Side

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, side, at, nil)
	case chess.Knight:
		return leap(board, side, at, knightOffsets, nil)
	case chess.Bishop:
		return slide(board, side, at, diagonalRays, nil)
	case chess.Rook:
		return slide(board, side, at, straightRays, nil)
	case chess.Queen:
		moves := slide(board, side, at, straightRays, nil)
		return slide(board, side, at, diagonalRays, moves)
	case chess.King:
		return leap(board, side, at, kingOffsets, nil)
	}

	return nil
}

// CandidateMoves lists every pseudo-legal move for side: pieces in
// row-major order, each piece's destinations in generation order.
func CandidateMoves(board *chess.Board, side chess.Side) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Pieces(side) {
		for _, to := range GenerateMoves(board, board.Get(from), from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}
