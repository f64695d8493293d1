package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/config"
	"github.com/lgbarn/greedy-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/greedy-chess-go/internal/errors"
	"github.com/lgbarn/greedy-chess-go/internal/testutil"
)

func newTestGame(t *testing.T, human chess.Side, d config.Difficulty) (*Game, *bytes.Buffer) {
	t.Helper()
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithHumanSide(human).
		WithDifficulty(d).
		WithPlayerNames("Ann", "Bot").
		WithSeed(3).
		WithOutput(&bytes.Buffer{}).
		WithLog(log).
		WithVerbosity(2).
		Build()
	return New(cfg, nil), log
}

func sq(t *testing.T, name string) chess.Square {
	t.Helper()
	return testutil.Square(t, name)
}

func TestStart_HumanWhite(t *testing.T) {
	g, _ := newTestGame(t, chess.White, config.Hard)

	if _, ok := g.Start(); ok {
		t.Error("Start() made a computer move with the human playing White")
	}
	if !g.HumanToMove() {
		t.Error("HumanToMove() = false; want true")
	}
	testutil.AssertBoard(t, g.Board(), engine.NewGame())
	if g.Outcome() != InProgress {
		t.Errorf("Outcome() = %v; want in progress", g.Outcome())
	}
}

func TestStart_ComputerWhiteMovesFirst(t *testing.T) {
	g, _ := newTestGame(t, chess.Black, config.Hard)

	m, ok := g.Start()
	if !ok || m.String() != "a2a3" {
		t.Fatalf("Start() = %v, %v; want a2a3", m, ok)
	}
	if !g.HumanToMove() || g.Plies() != 1 {
		t.Errorf("HumanToMove() = %v, Plies() = %d; want true, 1", g.HumanToMove(), g.Plies())
	}
	if got := g.Board().Get(sq(t, "a3")); got != chess.W(chess.Pawn) {
		t.Errorf("a3 = %v; want White Pawn", got)
	}
}

func TestSelect(t *testing.T) {
	g, _ := newTestGame(t, chess.White, config.Hard)
	g.Start()

	tests := []struct {
		name    string
		at      string
		moved   bool
		wantErr error
		wantSel string
	}{
		{"empty square", "e4", false, chesserrors.ErrNoPiece, ""},
		{"opponent piece", "e7", false, chesserrors.ErrNotYourPiece, ""},
		{"own pawn", "e2", false, nil, "e2"},
		{"same square clears", "e2", false, nil, ""},
		{"reselect", "e2", false, nil, "e2"},
		{"target", "e4", true, nil, ""},
		{"computer to move", "d2", false, chesserrors.ErrNotYourTurn, ""},
	}

	for _, tt := range tests {
		moved, err := g.Select(sq(t, tt.at))
		if tt.wantErr != nil {
			testutil.AssertErrorIs(t, err, tt.wantErr, tt.name)
		} else {
			testutil.AssertNoError(t, err, tt.name)
		}
		if moved != tt.moved {
			t.Errorf("%s: moved = %v; want %v", tt.name, moved, tt.moved)
		}
		got, ok := g.Selected()
		if tt.wantSel == "" && ok {
			t.Errorf("%s: Selected() = %v; want none", tt.name, got)
		}
		if tt.wantSel != "" && (!ok || got != sq(t, tt.wantSel)) {
			t.Errorf("%s: Selected() = %v, %v; want %s", tt.name, got, ok, tt.wantSel)
		}
	}

	if got := g.Board().Get(sq(t, "e4")); got != chess.W(chess.Pawn) {
		t.Errorf("e4 = %v; want White Pawn", got)
	}
	if _, err := g.Select(chess.Sq(9, 0)); err == nil {
		t.Error("Select(off-board) returned no error")
	}
}

func TestHumanMoveIsTrusted(t *testing.T) {
	g, log := newTestGame(t, chess.White, config.Hard)
	g.Start()

	// Queen d1 straight onto the Black King on e8.
	if err := g.HumanMove(sq(t, "d1"), sq(t, "e8")); err != nil {
		t.Fatalf("HumanMove() error: %v", err)
	}
	if g.Outcome() != HumanWins {
		t.Fatalf("Outcome() = %v; want human wins", g.Outcome())
	}

	name, ok := g.Winner()
	if !ok || name != "Ann" {
		t.Errorf("Winner() = %q, %v; want Ann", name, ok)
	}
	g.Winner()
	if got := g.Scores().Wins("Ann"); got != 1 {
		t.Errorf("Wins(Ann) = %d; want 1", got)
	}

	_, _, err := g.AITurn()
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameOver)
	_, err = g.Select(sq(t, "a2"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameOver)

	if !strings.Contains(log.String(), "1. Ann: d1e8 takes Black King") {
		t.Errorf("log missing capture line:\n%s", log.String())
	}
}

func TestHumanMoveErrors(t *testing.T) {
	g, _ := newTestGame(t, chess.White, config.Hard)
	g.Start()

	err := g.HumanMove(sq(t, "e2"), sq(t, "e2"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMoveText)

	err = g.HumanMove(sq(t, "e2"), chess.Sq(8, 4))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSquare)
	if _, ok := g.Selected(); ok {
		t.Error("selection left behind by a failed HumanMove")
	}

	err = g.HumanMove(sq(t, "e7"), sq(t, "e5"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrNotYourPiece)
	testutil.AssertBoard(t, g.Board(), engine.NewGame())
}

func TestAITurn(t *testing.T) {
	g, _ := newTestGame(t, chess.White, config.Hard)
	g.Start()

	if _, _, err := g.AITurn(); err == nil {
		t.Fatal("AITurn() during the human's turn returned no error")
	}

	testutil.AssertNoError(t, g.HumanMove(sq(t, "e2"), sq(t, "e4")))
	m, ok, err := g.AITurn()
	testutil.AssertNoError(t, err)
	if !ok || m.String() != "b8c6" {
		t.Errorf("AITurn() = %v, %v; want b8c6", m, ok)
	}
	if !g.HumanToMove() || g.Plies() != 2 {
		t.Errorf("HumanToMove() = %v, Plies() = %d; want true, 2", g.HumanToMove(), g.Plies())
	}
}

func TestAITurnPassesWithoutMoves(t *testing.T) {
	g, _ := newTestGame(t, chess.White, config.Hard)
	g.Start()

	// Black's King on h1 is walled in by its own pawns, none of which can move.
	g.board = engine.MustBoardFromFEN("K7/8/8/8/8/8/6pp/6pk")
	g.humanToMove = false
	want := g.Board().Copy()

	_, ok, err := g.AITurn()
	testutil.AssertNoError(t, err)
	if ok {
		t.Error("AITurn() reported a move")
	}
	if !g.HumanToMove() {
		t.Error("turn did not pass to the human")
	}
	testutil.AssertBoard(t, g.Board(), want)
}

func TestAITurnEasyPicksOwnPiece(t *testing.T) {
	g, _ := newTestGame(t, chess.Black, config.Easy)
	for i := 0; i < 5; i++ {
		m, ok := g.Start()
		if !ok {
			t.Fatal("Start() made no computer move")
		}
		if got := g.Board().Get(m.To); !got.Belongs(chess.White) {
			t.Errorf("computer moved %v onto %v", m, got)
		}
	}
}

func TestOutcomeChecksHumanKingFirst(t *testing.T) {
	tests := []struct {
		name  string
		human chess.Side
		fen   string
		want  Outcome
	}{
		{"both kings", chess.White, "4k3/8/8/8/8/8/8/4K3", InProgress},
		{"white king gone, human white", chess.White, "4k3/8/8/8/8/8/8/8", AIWins},
		{"white king gone, human black", chess.Black, "4k3/8/8/8/8/8/8/8", HumanWins},
		{"no kings", chess.White, "8/8/8/8/8/8/8/8", AIWins},
		{"no kings, human black", chess.Black, "8/8/8/8/8/8/8/8", AIWins},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, _ := newTestGame(t, tt.human, config.Hard)
			g.board = engine.MustBoardFromFEN(tt.fen)
			if got := g.Outcome(); got != tt.want {
				t.Errorf("Outcome() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPlayAgainKeepsScores(t *testing.T) {
	g, _ := newTestGame(t, chess.White, config.Hard)
	for i := 0; i < 2; i++ {
		g.Start()
		g.Board().Clear(sq(t, "e1"))
		if name, ok := g.Winner(); !ok || name != "Bot" {
			t.Fatalf("Winner() = %q, %v; want Bot", name, ok)
		}
	}
	g.Start()
	if _, ok := g.Winner(); ok {
		t.Error("Winner() reported a winner in a fresh game")
	}
	if got := g.Scores().Wins("Bot"); got != 2 {
		t.Errorf("Wins(Bot) = %d; want 2", got)
	}
}

func TestLoggingRespectsVerbosity(t *testing.T) {
	g, log := newTestGame(t, chess.White, config.Hard)
	g.cfg.Verbosity = 0
	g.Start()
	g.HumanMove(sq(t, "e2"), sq(t, "e4"))
	if log.Len() != 0 {
		t.Errorf("verbosity 0 wrote %q", log.String())
	}

	g.cfg.Verbosity = 1
	g.Start()
	if !strings.Contains(log.String(), "New game: Ann (White) vs Bot (Black), hard") {
		t.Errorf("log = %q", log.String())
	}
}
