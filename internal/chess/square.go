package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/greedy-chess-go/internal/errors"
)

// Square is a (row, column) coordinate. Row 0 is the top of the board
// (Black's back rank, rank 8) and rows grow downward; column 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether s lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic name of the square ("e4"), or "(r,c)" for
// squares off the board.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare converts an algebraic square name such as "e4" into a Square.
func ParseSquare(text string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if len(t) != 2 || t[0] < 'a' || t[0] > 'h' || t[1] < '1' || t[1] > '8' {
		return Square{}, &errors.InputError{Err: errors.ErrInvalidSquare, Input: text}
	}
	return Square{Row: int('8' - t[1]), Col: int(t[0] - 'a')}, nil
}
