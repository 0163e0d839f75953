package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/render/layout"
	"github.com/matzehuels/mosaic/pkg/tile"
)

// Meta is the provenance recorded alongside a layout, if any.
type Meta struct {
	ID   string
	Seed uint64 // 0 when the document has no seed
}

type document struct {
	ID      string  `json:"id"`
	Seed    uint64  `json:"seed"`
	Rows    int     `json:"rows"`
	Columns int     `json:"columns"`
	Counts  *counts `json:"counts"`
	Blocks  []block `json:"blocks"`
}

type counts struct {
	Small int `json:"small"`
	Tall  int `json:"tall"`
	Wide  int `json:"wide"`
}

type block struct {
	Shape  tile.Shape `json:"shape"`
	Row    int        `json:"row"`
	Column int        `json:"column"`
}

// ReadJSON decodes a layout document from r. It does not close r.
//
// Errors are INVALID_FORMAT for undecodable input and INVALID_ARGUMENT for
// documents that do not describe a complete tiling.
func ReadJSON(r io.Reader) (layout.Layout, Meta, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return layout.Layout{}, Meta{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}

	draft := layout.Layout{Rows: doc.Rows, Columns: doc.Columns}
	for i, b := range doc.Blocks {
		draft.Blocks = append(draft.Blocks, layout.Block{Index: i + 1, Shape: b.Shape, Row: b.Row, Column: b.Column})
	}
	g, err := layout.Replay(draft)
	if err != nil {
		return layout.Layout{}, Meta{}, err
	}
	l, err := layout.Build(g)
	if err != nil {
		return layout.Layout{}, Meta{}, err
	}

	if c := doc.Counts; c != nil && (c.Small != l.Small || c.Tall != l.Tall || c.Wide != l.Wide) {
		return layout.Layout{}, Meta{}, errors.New(errors.ErrCodeInvalidArgument,
			"counts [%d,%d,%d] do not match blocks [%d,%d,%d]", c.Small, c.Tall, c.Wide, l.Small, l.Tall, l.Wide)
	}
	return l, Meta{ID: doc.ID, Seed: doc.Seed}, nil
}

// ImportLayout reads the layout document at path; "-" reads standard input.
func ImportLayout(path string) (layout.Layout, Meta, error) {
	if path == "-" {
		return ReadJSON(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return layout.Layout{}, Meta{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
