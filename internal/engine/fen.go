package engine

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/errors"
)

// InitialFEN is the placement field of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var kindToNotation = map[chess.Kind]nchess.PieceType{
	chess.Pawn:   nchess.Pawn,
	chess.Knight: nchess.Knight,
	chess.Bishop: nchess.Bishop,
	chess.Rook:   nchess.Rook,
	chess.Queen:  nchess.Queen,
	chess.King:   nchess.King,
}

var notationToKind = map[nchess.PieceType]chess.Kind{
	nchess.Pawn:   chess.Pawn,
	nchess.Knight: chess.Knight,
	nchess.Bishop: chess.Bishop,
	nchess.Rook:   chess.Rook,
	nchess.Queen:  chess.Queen,
	nchess.King:   chess.King,
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement
// field is read; a bare placement ("8/8/8/4k3/8/8/8/4K3") is accepted too.
// Side to move, castling and en passant fields are ignored because the
// board does not track them.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, &errors.InputError{Err: errors.ErrInvalidFEN, Input: fen}
	}
	placement := fields[0]
	if col, err := checkPlacement(placement); err != nil {
		return nil, &errors.InputError{Err: err, Input: placement, Column: col}
	}

	var nb nchess.Board
	if err := nb.UnmarshalText([]byte(placement)); err != nil {
		return nil, &errors.InputError{
			Err:   fmt.Errorf("%w: %v", errors.ErrInvalidFEN, err),
			Input: placement,
		}
	}

	board := chess.NewBoard()
	for sq, p := range nb.SquareMap() {
		kind, ok := notationToKind[p.Type()]
		if !ok {
			continue
		}
		side := chess.White
		if p.Color() == nchess.Black {
			side = chess.Black
		}
		board.Set(fromNotationSquare(sq), chess.Piece{Kind: kind, Side: side})
	}
	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error. It is meant
// for fixed positions in tests and examples.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// BoardToFEN returns the FEN placement field for board.
func BoardToFEN(board *chess.Board) string {
	return NotationBoard(board).String()
}

// NotationBoard converts board into a github.com/notnil/chess board, for
// FEN output and drawing.
func NotationBoard(board *chess.Board) *nchess.Board {
	m := make(map[nchess.Square]nchess.Piece)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			colour := nchess.White
			if p.Side == chess.Black {
				colour = nchess.Black
			}
			m[toNotationSquare(chess.Sq(row, col))] = nchess.NewPiece(kindToNotation[p.Kind], colour)
		}
	}
	return nchess.NewBoard(m)
}

// checkPlacement verifies the shape of a placement field: eight ranks of
// eight squares each, using only piece letters and digits 1-8. It returns
// the 1-based column of the first problem.
func checkPlacement(placement string) (int, error) {
	rank, width := 0, 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if width != chess.BoardSize {
				return i + 1, errors.ErrInvalidFEN
			}
			rank++
			width = 0
		case c >= '1' && c <= '8':
			width += int(c - '0')
		case strings.IndexByte("pnbrqkPNBRQK", c) >= 0:
			width++
		default:
			return i + 1, errors.ErrInvalidFEN
		}
		if width > chess.BoardSize {
			return i + 1, errors.ErrInvalidFEN
		}
	}
	if rank != chess.BoardSize-1 || width != chess.BoardSize {
		return len(placement), errors.ErrInvalidFEN
	}
	return 0, nil
}

// Row 0 is rank 8.
func toNotationSquare(sq chess.Square) nchess.Square {
	return nchess.NewSquare(nchess.File(sq.Col), nchess.Rank(chess.BoardSize-1-sq.Row))
}

func fromNotationSquare(sq nchess.Square) chess.Square {
	return chess.Sq(chess.BoardSize-1-int(sq.Rank()), int(sq.File()))
}
