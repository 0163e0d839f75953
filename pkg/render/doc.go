// Package render turns finished mosaics into visual output.
//
// Rendering happens in two steps. The [layout] subpackage walks a filled
// grid in row-major order and emits one block per tile: continuation cells
// of tall and wide tiles produce nothing, because their anchor already spans
// them. The [sink] subpackage turns a layout into bytes:
//
//   - HTML: a <table> using rowspan/colspan, one numbered cell per tile
//   - SVG: one rectangle per tile
//   - JSON: dimensions, counts and blocks for other tools
//   - Text: a coloured character grid for terminals
//
// Typical use:
//
//	l, err := layout.Build(g)
//	html, err := sink.RenderHTML(l)
//	svg := sink.RenderSVG(l, sink.WithCellSize(40))
//
// [layout]: github.com/matzehuels/mosaic/pkg/render/layout
// [sink]: github.com/matzehuels/mosaic/pkg/render/sink
package render
