package engine

import "github.com/lgbarn/greedy-chess-go/internal/chess"

// CheckmateBonus is added to a move's score when it leaves the opponent
// without a King. It dominates any material total.
const CheckmateBonus = 10000

// pieceValues is indexed by chess.Kind.
var pieceValues = [...]int{
	chess.NoKind: 0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   1000,
}

// PieceValue returns the material value of a piece kind, 0 for no piece.
func PieceValue(k chess.Kind) int {
	if k < 0 || int(k) >= len(pieceValues) {
		return 0
	}
	return pieceValues[k]
}

// Evaluate scores move m for side: the value of whatever stands on the
// destination, plus CheckmateBonus if opponent has no King once the move is
// played. The move is played on board itself and always taken back before
// Evaluate returns, so the caller must own board for the duration of the
// call.
func Evaluate(board *chess.Board, side, opponent chess.Side, m chess.Move) int {
	score := PieceValue(board.Get(m.To).Kind)

	state := board.SaveState()
	defer board.RestoreState(state)

	board.Move(m.From, m.To)
	if IsMated(board, opponent) {
		score += CheckmateBonus
	}
	return score
}
