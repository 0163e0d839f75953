package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mosaic/pkg/render/layout"
	"github.com/matzehuels/mosaic/pkg/render/sink"
)

// WriteJSON encodes l as a layout document, recording meta when set.
// The output can be re-imported with [ReadJSON].
func WriteJSON(w io.Writer, l layout.Layout, meta Meta) error {
	var opts []sink.JSONOption
	if meta.ID != "" {
		opts = append(opts, sink.WithJSONID(meta.ID))
	}
	if meta.Seed != 0 {
		opts = append(opts, sink.WithJSONSeed(meta.Seed))
	}
	data, err := sink.RenderJSON(l, opts...)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ExportLayout writes l to a JSON file at path.
func ExportLayout(path string, l layout.Layout, meta Meta) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, l, meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
