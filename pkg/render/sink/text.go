package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mosaic/pkg/render/layout"
	"github.com/matzehuels/mosaic/pkg/tile"
)

// Two characters per cell keep tiles roughly square in a terminal.
var markGlyphs = map[tile.Mark]string{
	tile.Empty:      "··",
	tile.MarkSmall:  "[]",
	tile.TallTop:    "/\\",
	tile.TallBottom: "\\/",
	tile.WideLeft:   "<=",
	tile.WideRight:  "=>",
}

var (
	styleSmall = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleTall  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleWide  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// TextOption configures text rendering via [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	plain     bool
	separator string
}

// WithPlainText disables colours.
func WithPlainText() TextOption { return func(r *textRenderer) { r.plain = true } }

// WithCellSeparator sets the string placed between cells of a row.
func WithCellSeparator(sep string) TextOption { return func(r *textRenderer) { r.separator = sep } }

// RenderText draws the layout's marks as a character grid, one line per row.
func RenderText(l layout.Layout, opts ...TextOption) string {
	r := textRenderer{separator: " "}
	for _, opt := range opts {
		opt(&r)
	}

	var sb strings.Builder
	for _, row := range l.Marks {
		for i, m := range row {
			if i > 0 {
				sb.WriteString(r.separator)
			}
			sb.WriteString(r.glyph(m))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r textRenderer) glyph(m tile.Mark) string {
	g := markGlyphs[m]
	if r.plain {
		return g
	}
	switch tile.FromMark(m) {
	case tile.Tall:
		return styleTall.Render(g)
	case tile.Wide:
		return styleWide.Render(g)
	case tile.Small:
		return styleSmall.Render(g)
	}
	switch m {
	case tile.TallBottom:
		return styleTall.Render(g)
	case tile.WideRight:
		return styleWide.Render(g)
	}
	return g
}
