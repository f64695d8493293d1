package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/greedy-chess-go/internal/game"
)

// MatchRecord is one self-play game ready for output.
type MatchRecord struct {
	Index int
	// Labels for the selectors that played each side
	White string
	Black string
	// Duplicate is set when an earlier game ended in the same position
	Duplicate bool
	Result    game.MatchResult
}

// MatchWriter is the interface for writing self-play games to output.
type MatchWriter interface {
	// WriteMatch writes a single game to the output.
	WriteMatch(rec MatchRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes games as a header line, the move list and optionally
// the final board.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
	showBoard     bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength int, showBoard bool) *TextWriter {
	return &TextWriter{
		w:             w,
		maxLineLength: maxLineLength,
		showBoard:     showBoard,
	}
}

// WriteMatch writes a game in text format.
func (tw *TextWriter) WriteMatch(rec MatchRecord) error {
	dup := ""
	if rec.Duplicate {
		dup = " (duplicate final position)"
	}
	_, err := fmt.Fprintf(tw.w, "Game %d: %s (White) vs %s (Black): %s after %d plies%s\n",
		rec.Index+1, rec.White, rec.Black, ResultText(rec.Result), rec.Result.Plies, dup)
	if err != nil {
		return err
	}
	WriteMoves(tw.w, rec.Result.Moves, tw.maxLineLength)
	if tw.showBoard && rec.Result.Board != nil {
		WriteBoard(tw.w, rec.Result.Board)
	}
	_, err = fmt.Fprintln(tw.w)
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONMatch
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONMatch, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteMatch buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteMatch(rec MatchRecord) error {
	if jw.single {
		return encodeJSON(jw.w, MatchToJSON(rec))
	}
	jw.games = append(jw.games, MatchToJSON(rec))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := encodeJSON(jw.w, &JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
