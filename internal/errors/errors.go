// Package errors provides sentinel errors and error types for the host,
// position-loading and configuration layers. The move engine itself has no
// fallible operations: empty results and silent no-ops stand in for errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN placement.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name or coordinate off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMoveText indicates move input that is not "<from><to>".
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrNoPiece indicates a selection of an empty square.
	ErrNoPiece = errors.New("no piece on square")

	// ErrNotYourPiece indicates a selection of an opponent's piece.
	ErrNotYourPiece = errors.New("piece belongs to the other side")

	// ErrNotYourTurn indicates a human move attempted during the AI's turn.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameOver indicates a move attempted after a King has been captured.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InputError wraps an error with the user input that caused it, and the
// 1-based position within that input where known. It supports unwrapping
// via errors.Is() and errors.As().
type InputError struct {
	Err    error  // The underlying error
	Input  string // The offending input text
	Column int    // Position in Input (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *InputError) Error() string {
	var parts []string

	if e.Input != "" {
		if e.Column > 0 {
			parts = append(parts, fmt.Sprintf("%q at column %d", e.Input, e.Column))
		} else {
			parts = append(parts, fmt.Sprintf("%q", e.Input))
		}
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ", "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return "bad input " + strings.Join(parts, ", ")
	}
	return "bad input"
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
