// Package output renders boards, scores and self-play games.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/engine"
	"github.com/lgbarn/greedy-chess-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard draws board with rank and file labels, White at the bottom.
func WriteBoard(w io.Writer, board *chess.Board) {
	fmt.Fprint(w, engine.NotationBoard(board).Draw())
}

// WriteFEN writes the placement field of board on its own line.
func WriteFEN(w io.Writer, board *chess.Board) {
	fmt.Fprintln(w, engine.BoardToFEN(board))
}

// WriteScores writes a numbered high-score table.
func WriteScores(w io.Writer, scores []game.Score) {
	if len(scores) == 0 {
		fmt.Fprintln(w, "No games won yet.")
		return
	}
	fmt.Fprintln(w, "High scores:")
	for i, s := range scores {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, s.Name, s.Wins)
	}
}

// WriteMoves writes moves numbered in pairs, White first, wrapped at
// maxLineLength.
func WriteMoves(w io.Writer, moves []chess.Move, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for i, m := range moves {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		ow.Write(m.String())
	}
	ow.NewLine()
}

// ResultText describes how a match ended.
func ResultText(res game.MatchResult) string {
	if res.Decided() {
		return fmt.Sprintf("%v wins, %v", res.Winner, res.Ending)
	}
	return fmt.Sprintf("no result, %v", res.Ending)
}
