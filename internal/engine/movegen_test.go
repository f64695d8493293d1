package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/testutil"
)

// Positions with plenty of sliding pieces in contact with both sides.
var slidingFENs = []string{
	InitialFEN,
	"r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/3P1N2/PPP2PPP/RNBQK2R",
	"4k3/8/3q4/8/1R1B2r1/8/5Q2/4K3",
	"8/2b5/8/3Q4/8/8/6r1/R6B",
	"q6q/8/8/3R4/8/8/8/Q6Q",
}

// bitIndex maps a square to the a1=0 ... h8=63 index used by dragontoothmg.
func bitIndex(sq chess.Square) uint8 {
	return uint8((chess.BoardSize-1-sq.Row)*chess.BoardSize + sq.Col)
}

func occupancy(board *chess.Board, side chess.Side) (own, all uint64) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			bit := uint64(1) << bitIndex(chess.Sq(row, col))
			all |= bit
			if p.Side == side {
				own |= bit
			}
		}
	}
	return own, all
}

func squaresOf(bb uint64) []chess.Square {
	var squares []chess.Square
	for idx := 0; idx < 64; idx++ {
		if bb&(uint64(1)<<uint(idx)) != 0 {
			squares = append(squares, chess.Sq(chess.BoardSize-1-idx/chess.BoardSize, idx%chess.BoardSize))
		}
	}
	return squares
}

// TestSlidingMatchesAttackTables checks every Rook, Bishop and Queen
// against dragontoothmg's magic-bitboard sliding attacks minus own pieces.
func TestSlidingMatchesAttackTables(t *testing.T) {
	for _, fen := range slidingFENs {
		board := MustBoardFromFEN(fen)
		for _, side := range []chess.Side{chess.White, chess.Black} {
			own, all := occupancy(board, side)
			for _, from := range board.Pieces(side) {
				piece := board.Get(from)
				var attacks uint64
				switch piece.Kind {
				case chess.Rook:
					attacks = dragontoothmg.CalculateRookMoveBitboard(bitIndex(from), all)
				case chess.Bishop:
					attacks = dragontoothmg.CalculateBishopMoveBitboard(bitIndex(from), all)
				case chess.Queen:
					attacks = dragontoothmg.CalculateRookMoveBitboard(bitIndex(from), all) |
						dragontoothmg.CalculateBishopMoveBitboard(bitIndex(from), all)
				default:
					continue
				}
				got := GenerateMoves(board, piece, from)
				testutil.AssertSameSquares(t, got, squaresOf(attacks&^own), "%s: %v on %v", fen, piece, from)
			}
		}
	}
}

// TestSlidingEmptyBoard checks sliders against pure geometry on an empty board.
func TestSlidingEmptyBoard(t *testing.T) {
	onRook := func(dr, dc int) bool { return dr == 0 || dc == 0 }
	onBishop := func(dr, dc int) bool { return dr == dc || dr == -dc }

	tests := []struct {
		kind    chess.Kind
		reaches func(dr, dc int) bool
	}{
		{chess.Rook, onRook},
		{chess.Bishop, onBishop},
		{chess.Queen, func(dr, dc int) bool { return onRook(dr, dc) || onBishop(dr, dc) }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			board := chess.NewBoard()
			for row := 0; row < chess.BoardSize; row++ {
				for col := 0; col < chess.BoardSize; col++ {
					from := chess.Sq(row, col)
					var want []chess.Square
					for r := 0; r < chess.BoardSize; r++ {
						for c := 0; c < chess.BoardSize; c++ {
							if (r != row || c != col) && tt.reaches(r-row, c-col) {
								want = append(want, chess.Sq(r, c))
							}
						}
					}
					got := GenerateMoves(board, chess.W(tt.kind), from)
					testutil.AssertSameSquares(t, got, want, "%v from %v", tt.kind, from)
				}
			}
		})
	}
}

func TestSlideStopsAtFirstPiece(t *testing.T) {
	// White rook on d4 (row 4, col 3); own pawn on d6, black knight on f4.
	board := MustBoardFromFEN("8/8/3P4/8/3R1n2/8/8/8")
	got := GenerateMoves(board, chess.W(chess.Rook), chess.Sq(4, 3))

	want := testutil.Squares(t,
		"d3", "d2", "d1", // down
		"d5",             // up, stops before own pawn on d6
		"e4", "f4",       // right, captures the knight and stops
		"c4", "b4", "a4", // left
	)
	testutil.AssertEqual(t, got, want)
}

func TestQueenRookRaysBeforeBishopRays(t *testing.T) {
	// Queen boxed in so each ray contributes exactly one square.
	board := MustBoardFromFEN("8/8/2PPP3/2PQP3/2PPP3/8/8/8")
	board.Set(chess.Sq(2, 3), chess.B(chess.Pawn)) // d6 is capturable
	board.Set(chess.Sq(4, 4), chess.B(chess.Pawn)) // e4 is capturable

	got := GenerateMoves(board, chess.W(chess.Queen), chess.Sq(3, 3))
	want := []chess.Square{chess.Sq(2, 3), chess.Sq(4, 4)}
	testutil.AssertEqual(t, got, want)
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		piece chess.Piece
		at    string
		want  []string
	}{
		{"white start rank double push", "8/8/8/8/8/8/4P3/8", chess.W(chess.Pawn), "e2", []string{"e3", "e4"}},
		{"black start rank double push", "8/4p3/8/8/8/8/8/8", chess.B(chess.Pawn), "e7", []string{"e6", "e5"}},
		{"off start rank single push only", "8/8/8/8/8/4P3/8/8", chess.W(chess.Pawn), "e3", []string{"e4"}},
		{"double push blocked on second square", "8/8/8/8/4n3/8/4P3/8", chess.W(chess.Pawn), "e2", []string{"e3"}},
		{"fully blocked", "8/8/8/8/8/4n3/4P3/8", chess.W(chess.Pawn), "e2", nil},
		{"blocked by own piece", "8/8/8/8/8/4N3/4P3/8", chess.W(chess.Pawn), "e2", nil},
		{"captures both diagonals", "8/8/8/8/8/3p1b2/4P3/8", chess.W(chess.Pawn), "e2", []string{"e3", "e4", "d3", "f3"}},
		{"no capture of own piece", "8/8/8/8/8/3P1P2/4P3/8", chess.W(chess.Pawn), "e2", []string{"e3", "e4"}},
		{"black captures downward", "8/8/8/3p4/2P1Q3/8/8/8", chess.B(chess.Pawn), "d5", []string{"d4", "c4", "e4"}},
		{"edge file capture", "8/8/8/8/8/1r6/P7/8", chess.W(chess.Pawn), "a2", []string{"a3", "a4", "b3"}},
		{"white pawn on last row has no moves", "P7/8/8/8/8/8/8/8", chess.W(chess.Pawn), "a8", nil},
		{"black pawn on last row has no moves", "8/8/8/8/8/8/8/7p", chess.B(chess.Pawn), "h1", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := MustBoardFromFEN(tt.fen)
			got := GenerateMoves(board, tt.piece, testutil.Square(t, tt.at))
			testutil.AssertEqual(t, got, toSquares(t, tt.want))
		})
	}
}

func TestLeaperCorners(t *testing.T) {
	board := chess.NewBoard()

	knight := GenerateMoves(board, chess.B(chess.Knight), chess.Sq(0, 0))
	testutil.AssertEqual(t, knight, []chess.Square{chess.Sq(2, 1), chess.Sq(1, 2)})

	king := GenerateMoves(board, chess.B(chess.King), chess.Sq(0, 0))
	testutil.AssertEqual(t, king, []chess.Square{chess.Sq(1, 0), chess.Sq(0, 1), chess.Sq(1, 1)})

	for _, sq := range append(knight, king...) {
		if !sq.InBounds() {
			t.Errorf("generated off-board square %v", sq)
		}
	}
}

func TestLeaperOrderAndOccupancy(t *testing.T) {
	// Knight on d4 (4,3): own pawn on e6 (2,4), black rook on c2 (6,2).
	board := MustBoardFromFEN("8/8/4P3/8/3N4/8/2r5/8")
	got := GenerateMoves(board, chess.W(chess.Knight), chess.Sq(4, 3))
	want := []chess.Square{
		chess.Sq(6, 4), chess.Sq(6, 2), // c2 is a capture
		chess.Sq(2, 2), // e6 holds an own pawn and is skipped
		chess.Sq(5, 5), chess.Sq(5, 1),
		chess.Sq(3, 5), chess.Sq(3, 1),
	}
	testutil.AssertEqual(t, got, want)

	// King in the middle of an empty board: all eight in table order.
	kingMoves := GenerateMoves(chess.NewBoard(), chess.W(chess.King), chess.Sq(4, 4))
	testutil.AssertEqual(t, kingMoves, []chess.Square{
		chess.Sq(5, 4), chess.Sq(3, 4), chess.Sq(4, 5), chess.Sq(4, 3),
		chess.Sq(5, 5), chess.Sq(5, 3), chess.Sq(3, 5), chess.Sq(3, 3),
	})
}

func TestGenerateMovesEmptyPiece(t *testing.T) {
	if got := GenerateMoves(NewGame(), chess.NoPiece, chess.Sq(4, 4)); len(got) != 0 {
		t.Errorf("GenerateMoves(NoPiece) = %v; want none", got)
	}
}

func TestCandidateMovesStartPosition(t *testing.T) {
	board := NewGame()
	for _, side := range []chess.Side{chess.White, chess.Black} {
		// 16 pawn moves + 4 knight moves, no castling.
		if got := len(CandidateMoves(board, side)); got != 20 {
			t.Errorf("len(CandidateMoves(%v)) = %d; want 20", side, got)
		}
	}

	first := CandidateMoves(board, chess.Black)[0]
	if first.String() != "b8c6" {
		t.Errorf("first Black candidate = %v; want b8c6", first)
	}
}

func toSquares(t *testing.T, names []string) []chess.Square {
	t.Helper()
	if len(names) == 0 {
		return nil
	}
	return testutil.Squares(t, names...)
}
