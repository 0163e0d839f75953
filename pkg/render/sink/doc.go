// Package sink renders a [layout.Layout] into output formats.
//
// Every renderer is a pure function of the layout and its options: it never
// modifies the layout and is safe to call concurrently. Options follow the
// functional-option pattern, one option type per format ([HTMLOption],
// [SVGOption], [JSONOption], [TextOption]).
//
// [layout.Layout]: github.com/matzehuels/mosaic/pkg/render/layout.Layout
package sink
