package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/greedy-chess-go/internal/engine"
)

// JSONMatch represents a self-play game in JSON format.
type JSONMatch struct {
	Index     int      `json:"index"`
	White     string   `json:"white"`
	Black     string   `json:"black"`
	Winner    string   `json:"winner,omitempty"`
	Ending    string   `json:"ending"`
	PlyCount  int      `json:"plyCount"`
	Moves     []string `json:"moves,omitempty"`
	FinalFEN  string   `json:"finalFEN"`
	Duplicate bool     `json:"duplicate,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONMatch `json:"games"`
}

// MatchToJSON converts a match record to JSON format.
func MatchToJSON(rec MatchRecord) *JSONMatch {
	jm := &JSONMatch{
		Index:     rec.Index,
		White:     rec.White,
		Black:     rec.Black,
		Ending:    rec.Result.Ending.String(),
		PlyCount:  rec.Result.Plies,
		Moves:     make([]string, 0, len(rec.Result.Moves)),
		Duplicate: rec.Duplicate,
	}
	if rec.Result.Decided() {
		jm.Winner = rec.Result.Winner.String()
	}
	for _, m := range rec.Result.Moves {
		jm.Moves = append(jm.Moves, m.String())
	}
	if rec.Result.Board != nil {
		jm.FinalFEN = engine.BoardToFEN(rec.Result.Board)
	}
	return jm
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
