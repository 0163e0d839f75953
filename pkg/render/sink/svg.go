package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/mosaic/pkg/render/layout"
	"github.com/matzehuels/mosaic/pkg/tile"
)

const (
	DefaultCellSize = 40.0
	DefaultGap      = 4.0
)

// Fill colours per shape.
var shapeFill = map[tile.Shape]string{
	tile.Small: "#e8e8e8",
	tile.Tall:  "#9cc3e6",
	tile.Wide:  "#f2c894",
}

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize float64
	gap      float64
	labels   bool
}

// WithCellSize sets the edge length of one grid cell in pixels.
// Non-positive values are ignored.
func WithCellSize(size float64) SVGOption {
	return func(r *svgRenderer) {
		if size > 0 {
			r.cellSize = size
		}
	}
}

// WithGap sets the spacing between neighbouring tiles in pixels.
// Negative values are ignored.
func WithGap(gap float64) SVGOption {
	return func(r *svgRenderer) {
		if gap >= 0 {
			r.gap = gap
		}
	}
}

// WithLabels draws each tile's 1-based index at its center.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws one rectangle per block. The gap is applied around the
// outer edge too, so a tile spanning two cells is exactly one gap wider than
// two single tiles.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{cellSize: DefaultCellSize, gap: DefaultGap}
	for _, opt := range opts {
		opt(&r)
	}

	width := float64(l.Columns)*r.cellSize + r.gap
	height := float64(l.Rows)*r.cellSize + r.gap

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	for _, b := range l.Blocks {
		x := float64(b.Left())*r.cellSize + r.gap
		y := float64(b.Top())*r.cellSize + r.gap
		w := float64(b.Width())*r.cellSize - r.gap
		h := float64(b.Height())*r.cellSize - r.gap
		fmt.Fprintf(&buf, `  <rect id="tile-%d" class="tile %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			b.Index, shapeClass(b.Shape), x, y, w, h, shapeFill[b.Shape])
		if r.labels {
			cx := b.CenterX()*r.cellSize + r.gap/2
			cy := b.CenterY()*r.cellSize + r.gap/2
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.1f">%d</text>`+"\n",
				cx, cy, r.cellSize/3, b.Index)
		}
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func shapeClass(s tile.Shape) string {
	switch s {
	case tile.Tall:
		return "tall"
	case tile.Wide:
		return "wide"
	default:
		return "small"
	}
}
