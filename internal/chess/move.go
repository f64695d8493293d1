package chess

import (
	"strings"

	"github.com/lgbarn/greedy-chess-go/internal/errors"
)

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the long algebraic form of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses "e2e4", "e2-e4" or "e2 e4".
func ParseMove(text string) (Move, error) {
	t := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(text))
	if len(t) != 4 {
		return Move{}, invalidMoveText(text)
	}
	from, err := ParseSquare(t[:2])
	if err != nil {
		return Move{}, invalidMoveText(text)
	}
	to, err := ParseSquare(t[2:])
	if err != nil {
		return Move{}, invalidMoveText(text)
	}
	return Move{From: from, To: to}, nil
}

func invalidMoveText(text string) error {
	return &errors.InputError{Err: errors.ErrInvalidMoveText, Input: text}
}
