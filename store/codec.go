package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
)

// TypeName is the "type" tag of solution documents.
const TypeName = "Solution_CGSHOP2022"

// Record is the persisted layout.
type Record struct {
	Type      string `json:"type"`
	Instance  string `json:"instance"`
	NumColors int    `json:"num_colors"`
	Colors    []int  `json:"colors"`
}

// Encode writes sol as a solution document.
func Encode(w io.Writer, sol *coloring.Solution) error {
	rec := Record{
		Type:      TypeName,
		Instance:  sol.Instance().ID(),
		NumColors: sol.NumColors(),
		Colors:    sol.Colors(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")

	return enc.Encode(rec)
}

// Decode reads a solution document for ins. The declared num_colors is kept
// as is so that Verify catches out-of-range colours.
func Decode(r io.Reader, ins *instance.Instance) (*coloring.Solution, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if rec.Instance != "" && rec.Instance != ins.ID() {
		return nil, fmt.Errorf("%w: document for %q, instance %q", ErrMismatch, rec.Instance, ins.ID())
	}
	if len(rec.Colors) != ins.Len() {
		return nil, fmt.Errorf("%w: %d colours for %d items", ErrMismatch, len(rec.Colors), ins.Len())
	}
	sol, err := coloring.FromColors(ins, rec.Colors)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	sol.SetNumColors(rec.NumColors)

	return sol, nil
}
