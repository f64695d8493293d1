package game

import (
	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/engine"
	"github.com/lgbarn/greedy-chess-go/internal/hashing"
)

// Ending says why a match stopped.
type Ending int

const (
	KingCaptured Ending = iota
	Repetition          // same position with the same side to move a third time
	NoMoves             // the side to move had no candidate move
	PlyLimit
)

func (e Ending) String() string {
	switch e {
	case KingCaptured:
		return "king captured"
	case Repetition:
		return "threefold repetition"
	case NoMoves:
		return "no moves"
	case PlyLimit:
		return "ply limit"
	}
	return "unknown"
}

// Match is a computer-versus-computer game. It owns its board, so matches
// may run concurrently as long as each has its own selectors.
type Match struct {
	White    engine.Selector
	Black    engine.Selector
	MaxPlies int
}

// MatchResult describes a finished match. Winner is meaningful only when
// Ending is KingCaptured.
type MatchResult struct {
	Winner chess.Side
	Ending Ending
	Plies  int
	ToMove chess.Side
	Moves  []chess.Move
	Board  *chess.Board
}

// Decided reports whether the match has a winner.
func (r MatchResult) Decided() bool {
	return r.Ending == KingCaptured
}

// Play runs the match from the starting position.
func (m *Match) Play() MatchResult {
	board := engine.NewGame()
	tracker := hashing.NewRepetitionTracker()
	side := chess.White
	res := MatchResult{Board: board}

	tracker.Record(board, side)
	for res.Plies < m.MaxPlies {
		mv, ok := m.selector(side).Select(board, side)
		if !ok {
			res.Ending = NoMoves
			res.ToMove = side
			return res
		}
		board.Move(mv.From, mv.To)
		res.Moves = append(res.Moves, mv)
		res.Plies++

		if engine.IsMated(board, side.Opposite()) {
			res.Winner = side
			res.Ending = KingCaptured
			res.ToMove = side.Opposite()
			return res
		}
		side = side.Opposite()
		if tracker.Record(board, side) >= 3 {
			res.Ending = Repetition
			res.ToMove = side
			return res
		}
	}
	res.Ending = PlyLimit
	res.ToMove = side
	return res
}

func (m *Match) selector(side chess.Side) engine.Selector {
	if side == chess.White {
		return m.White
	}
	return m.Black
}
