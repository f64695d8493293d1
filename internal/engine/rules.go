// Package engine generates and selects moves on a chess.Board.
//
// The rules are deliberately loose: moves are pseudo-legal, nothing stops a
// King from walking into check, and a side counts as mated only once its
// King has actually been captured.
package engine

import "github.com/lgbarn/greedy-chess-go/internal/chess"

// NewGame returns a board in the standard starting position.
func NewGame() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// IsMated reports whether side has no King left on the board. This is the
// only game-ending condition: there is no check or stalemate detection.
// Any number of Kings, including none at the start, is accepted.
func IsMated(board *chess.Board, side chess.Side) bool {
	return board.Count(chess.Piece{Kind: chess.King, Side: side}) == 0
}
