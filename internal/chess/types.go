// Package chess provides the core board and piece types.
package chess

// Side represents one of the two players.
type Side int

const (
	Black Side = iota
	White
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // No piece (empty square)
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every real piece kind in ascending order.
var Kinds = []Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a kind owned by a side. The zero value is the empty square.
type Piece struct {
	Kind Kind
	Side Side
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(k Kind) Piece {
	return Piece{Kind: k, Side: White}
}

// B creates a black piece.
func B(k Kind) Piece {
	return Piece{Kind: k, Side: Black}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Belongs reports whether p is a real piece owned by side.
func (p Piece) Belongs(side Side) bool {
	return !p.IsEmpty() && p.Side == side
}

// String returns e.g. "White Queen", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black,
// and '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Side == Black {
		l += 'a' - 'A'
	}
	return l
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Starting ranks for pawns, expressed as rows.
const (
	BlackPawnRow = 1
	WhitePawnRow = 6
)

// PawnDirection returns the row delta of a forward pawn step:
// +1 for Black (down the board), -1 for White.
func PawnDirection(side Side) int {
	if side == Black {
		return 1
	}
	return -1
}

// PawnStartRow returns the row on which side's pawns start.
func PawnStartRow(side Side) int {
	if side == Black {
		return BlackPawnRow
	}
	return WhitePawnRow
}
