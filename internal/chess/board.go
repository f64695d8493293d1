package chess

// Board is a bare 8x8 grid of pieces. It carries no side to move, castling
// rights or history, and no invariant is enforced after a move: a side may
// lose its King and keep playing.
type Board struct {
	// Squares[row][col]; the zero Piece marks an empty square.
	Squares [BoardSize][BoardSize]Piece
}

// BackRank is the order of pieces on both back ranks, from column 0 to 7.
var BackRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard starting position: Black on
// rows 0-1, White on rows 6-7.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(BackRank[col])
		b.Squares[BlackPawnRow][col] = B(Pawn)
		b.Squares[WhitePawnRow][col] = W(Pawn)
		b.Squares[7][col] = W(BackRank[col])
	}
}

// Get returns the piece at sq, or NoPiece when sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.InBounds() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq. Squares off the board are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.InBounds() {
		b.Squares[sq.Row][sq.Col] = p
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Move copies the piece on from to to, clears from and returns whatever
// stood on to before (NoPiece if it was empty). No legality check is made:
// this is the path the host uses for human moves, which are trusted as
// given. A move from a square onto itself leaves the board unchanged.
func (b *Board) Move(from, to Square) Piece {
	if from == to || !from.InBounds() || !to.InBounds() {
		return NoPiece
	}
	captured := b.Squares[to.Row][to.Col]
	b.Squares[to.Row][to.Col] = b.Squares[from.Row][from.Col]
	b.Squares[from.Row][from.Col] = NoPiece
	return captured
}

// Pieces returns the squares holding side's pieces in row-major order
// (row 0 to 7, column 0 to 7).
func (b *Board) Pieces(side Side) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Belongs(side) {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Count returns how many squares hold exactly p.
func (b *Board) Count(p Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == p {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures the grid for save/restore operations. It is cheaper
// than Copy when a board is modified temporarily and then put back, as
// move evaluation does.
type BoardState struct {
	Squares [BoardSize][BoardSize]Piece
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{Squares: b.Squares}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
}

// String renders the board as eight lines of FEN letters, row 0 first,
// with '.' for empty squares.
func (b *Board) String() string {
	out := make([]byte, 0, BoardSize*(BoardSize+1))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			out = append(out, b.Squares[row][col].Letter())
		}
		out = append(out, '\n')
	}
	return string(out)
}
