package sink

import (
	"encoding/json"

	"github.com/matzehuels/mosaic/pkg/render/layout"
	"github.com/matzehuels/mosaic/pkg/tile"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id      string
	seed    uint64
	hasSeed bool
	marks   bool
}

// WithJSONID records the generation ID in the output.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONSeed records the random seed so the mosaic can be regenerated.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.hasSeed = true }
}

// WithJSONMarks includes the raw cell marks, one string per cell.
func WithJSONMarks() JSONOption { return func(r *jsonRenderer) { r.marks = true } }

type jsonOutput struct {
	ID      string        `json:"id,omitempty"`
	Seed    *uint64       `json:"seed,omitempty"`
	Rows    int           `json:"rows"`
	Columns int           `json:"columns"`
	Counts  jsonCounts    `json:"counts"`
	Blocks  []jsonBlock   `json:"blocks"`
	Marks   [][]tile.Mark `json:"marks,omitempty"`
}

type jsonCounts struct {
	Small int `json:"small"`
	Tall  int `json:"tall"`
	Wide  int `json:"wide"`
}

type jsonBlock struct {
	Index   int        `json:"index"`
	Shape   tile.Shape `json:"shape"`
	Row     int        `json:"row"`
	Column  int        `json:"column"`
	RowSpan int        `json:"row_span"`
	ColSpan int        `json:"col_span"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. Shapes and
// marks are written by name ("TALL", "TALL_TOP").
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:      r.id,
		Rows:    l.Rows,
		Columns: l.Columns,
		Counts:  jsonCounts{Small: l.Small, Tall: l.Tall, Wide: l.Wide},
		Blocks:  make([]jsonBlock, 0, len(l.Blocks)),
	}
	if r.hasSeed {
		seed := r.seed
		out.Seed = &seed
	}
	if r.marks {
		out.Marks = l.Marks
	}
	for _, b := range l.Blocks {
		out.Blocks = append(out.Blocks, jsonBlock{
			Index:   b.Index,
			Shape:   b.Shape,
			Row:     b.Row,
			Column:  b.Column,
			RowSpan: b.RowSpan,
			ColSpan: b.ColSpan,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
