package pipeline

import (
	"fmt"

	"github.com/matzehuels/mosaic/pkg/render/layout"
	"github.com/matzehuels/mosaic/pkg/render/sink"
)

// RenderMeta carries run information embedded in the JSON artifact.
type RenderMeta struct {
	ID   string
	Seed uint64
}

// Render generates output artifacts in the requested formats.
// opts must have render defaults set.
func Render(l layout.Layout, opts Options, meta RenderMeta) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data, err = sink.RenderHTML(l, htmlOptions(opts)...)
		case FormatSVG:
			data = sink.RenderSVG(l, svgOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(l,
				sink.WithJSONID(meta.ID),
				sink.WithJSONSeed(meta.Seed),
				sink.WithJSONMarks(),
			)
		case FormatText:
			data = []byte(sink.RenderText(l, sink.WithPlainText()))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func htmlOptions(opts Options) []sink.HTMLOption {
	html := []sink.HTMLOption{sink.WithHTMLClass("mosaic")}
	if opts.Title != "" {
		html = append(html, sink.WithHTMLDocument(opts.Title))
	}
	return html
}

func svgOptions(opts Options) []sink.SVGOption {
	svg := []sink.SVGOption{sink.WithCellSize(opts.CellSize)}
	if opts.Gap != nil {
		svg = append(svg, sink.WithGap(*opts.Gap))
	}
	if opts.Labels {
		svg = append(svg, sink.WithLabels())
	}
	return svg
}
