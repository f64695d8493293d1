// Package game runs human-versus-computer sessions and computer-versus-
// computer matches on top of the move engine.
package game

import (
	"fmt"
	"time"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/config"
	"github.com/lgbarn/greedy-chess-go/internal/engine"
	"github.com/lgbarn/greedy-chess-go/internal/errors"
)

// Outcome is the state of a session's current game.
type Outcome int

const (
	InProgress Outcome = iota
	HumanWins
	AIWins
)

func (o Outcome) String() string {
	switch o {
	case HumanWins:
		return "human wins"
	case AIWins:
		return "computer wins"
	}
	return "in progress"
}

// SelectorFor returns the move selector for a difficulty. A seed of 0 is
// replaced by the clock.
func SelectorFor(d config.Difficulty, seed int64) engine.Selector {
	if d.Greedy() {
		return engine.Greedy{}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return engine.NewRandom(seed)
}

// Game is one human-versus-computer session. Moves typed by the human are
// applied as given; only the computer's moves come from the generator.
type Game struct {
	cfg      *config.Config
	board    *chess.Board
	selector engine.Selector
	scores   *Scoreboard

	selected    chess.Square
	hasSelected bool
	humanToMove bool
	plies       int
	recorded    bool
}

// New creates a session from cfg. scores may be shared between sessions;
// nil starts a fresh scoreboard.
func New(cfg *config.Config, scores *Scoreboard) *Game {
	if scores == nil {
		scores = NewScoreboard()
	}
	return &Game{
		cfg:      cfg,
		board:    engine.NewGame(),
		selector: SelectorFor(cfg.Play.Difficulty, cfg.Seed),
		scores:   scores,
	}
}

// Board returns the live board.
func (g *Game) Board() *chess.Board { return g.board }

// Scores returns the session scoreboard.
func (g *Game) Scores() *Scoreboard { return g.scores }

// HumanSide returns the side the human plays.
func (g *Game) HumanSide() chess.Side { return g.cfg.Play.HumanSide }

// AISide returns the side the computer plays.
func (g *Game) AISide() chess.Side { return g.cfg.Play.AISide() }

// HumanName returns the human player's name.
func (g *Game) HumanName() string { return g.cfg.Play.PlayerNames[0] }

// AIName returns the computer player's name.
func (g *Game) AIName() string { return g.cfg.Play.PlayerNames[1] }

// HumanToMove reports whether the human moves next.
func (g *Game) HumanToMove() bool { return g.humanToMove }

// Plies returns the number of moves made in the current game.
func (g *Game) Plies() int { return g.plies }

// Selected returns the square picked by the previous Select, if any.
func (g *Game) Selected() (chess.Square, bool) {
	return g.selected, g.hasSelected
}

// Start resets the board for a new game. When the computer plays White it
// makes its first move immediately and that move is returned.
func (g *Game) Start() (chess.Move, bool) {
	g.board = engine.NewGame()
	g.hasSelected = false
	g.plies = 0
	g.recorded = false
	g.humanToMove = g.HumanSide() == chess.White

	g.logf(1, "New game: %s (%v) vs %s (%v), %v\n",
		g.HumanName(), g.HumanSide(), g.AIName(), g.AISide(), g.cfg.Play.Difficulty)

	if g.humanToMove {
		return chess.Move{}, false
	}
	m, ok, _ := g.AITurn()
	return m, ok
}

// Select handles one square pick by the human. The first pick must hold
// one of the human's pieces. Picking the same square again drops the
// selection. Any other square completes the move, which is applied without
// consulting the move generator; moved reports whether that happened.
func (g *Game) Select(sq chess.Square) (moved bool, err error) {
	if err := g.checkHumanTurn(); err != nil {
		return false, err
	}
	if !sq.InBounds() {
		return false, errors.Wrapf(errors.ErrInvalidSquare, "%v", sq)
	}

	if !g.hasSelected {
		p := g.board.Get(sq)
		if p.IsEmpty() {
			return false, errors.Wrapf(errors.ErrNoPiece, "%v", sq)
		}
		if !p.Belongs(g.HumanSide()) {
			return false, errors.Wrapf(errors.ErrNotYourPiece, "%v holds %v", sq, p)
		}
		g.selected, g.hasSelected = sq, true
		return false, nil
	}

	from := g.selected
	g.hasSelected = false
	if from == sq {
		return false, nil
	}
	g.apply(chess.Move{From: from, To: sq}, g.HumanName())
	g.humanToMove = false
	return true, nil
}

// HumanMove plays from-to for the human in one call.
func (g *Game) HumanMove(from, to chess.Square) error {
	if from == to {
		return errors.Wrapf(errors.ErrInvalidMoveText, "%v to itself", from)
	}
	g.hasSelected = false
	if _, err := g.Select(from); err != nil {
		return err
	}
	if _, err := g.Select(to); err != nil {
		g.hasSelected = false
		return err
	}
	return nil
}

// AITurn plays the computer's move. ok is false when the computer has no
// move; the turn still passes to the human.
func (g *Game) AITurn() (m chess.Move, ok bool, err error) {
	if g.Outcome() != InProgress {
		return chess.Move{}, false, errors.ErrGameOver
	}
	if g.humanToMove {
		return chess.Move{}, false, errors.ErrNotYourTurn
	}

	m, ok = g.selector.Select(g.board, g.AISide())
	if ok {
		g.apply(m, g.AIName())
	} else {
		g.logf(1, "%s has no move and passes\n", g.AIName())
	}
	g.humanToMove = true
	return m, ok, nil
}

// Outcome reports whether either King has been captured. The human's King
// is checked first.
func (g *Game) Outcome() Outcome {
	switch {
	case engine.IsMated(g.board, g.HumanSide()):
		return AIWins
	case engine.IsMated(g.board, g.AISide()):
		return HumanWins
	}
	return InProgress
}

// Winner returns the name of the winner of a finished game. The first call
// after the game ends adds a point to that player on the scoreboard.
func (g *Game) Winner() (string, bool) {
	var name string
	switch g.Outcome() {
	case HumanWins:
		name = g.HumanName()
	case AIWins:
		name = g.AIName()
	default:
		return "", false
	}
	if !g.recorded {
		g.recorded = true
		g.scores.RecordWin(name)
		g.logf(1, "%s wins after %d plies\n", name, g.plies)
	}
	return name, true
}

func (g *Game) checkHumanTurn() error {
	if g.Outcome() != InProgress {
		return errors.ErrGameOver
	}
	if !g.humanToMove {
		return errors.ErrNotYourTurn
	}
	return nil
}

func (g *Game) apply(m chess.Move, who string) {
	captured := g.board.Move(m.From, m.To)
	g.plies++
	if captured.IsEmpty() {
		g.logf(2, "%d. %s: %v\n", g.plies, who, m)
	} else {
		g.logf(2, "%d. %s: %v takes %v\n", g.plies, who, m, captured)
	}
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Verbosity >= level && g.cfg.LogFile != nil {
		fmt.Fprintf(g.cfg.LogFile, format, args...)
	}
}
