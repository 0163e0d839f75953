package grid

import "github.com/matzehuels/mosaic/pkg/tile"

// Map copies the grid into a new rows×columns matrix, applying fn to each mark.
func Map[T any](g *Grid, fn func(tile.Mark) T) [][]T {
	out := make([][]T, g.rows)
	for i, row := range g.cells {
		out[i] = make([]T, len(row))
		for j, m := range row {
			out[i][j] = fn(m)
		}
	}
	return out
}

// Flatten copies the grid in row-major order into a single slice. fn maps
// each mark to a value; marks for which fn returns false are skipped.
func Flatten[T any](g *Grid, fn func(tile.Mark) (T, bool)) []T {
	out := make([]T, 0, g.rows*g.columns)
	for _, row := range g.cells {
		for _, m := range row {
			if v, ok := fn(m); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// Cells returns a copy of the raw marks.
func (g *Grid) Cells() [][]tile.Mark {
	return Map(g, func(m tile.Mark) tile.Mark { return m })
}

// Values returns a copy of the mark codes (see [tile.Mark.Value]).
func (g *Grid) Values() [][]int {
	return Map(g, tile.Mark.Value)
}

// Tiles returns a copy of the grid projected onto shapes: anchors give their
// shape, continuation cells give [tile.Continuation], empty cells [tile.NoShape].
func (g *Grid) Tiles() [][]tile.Shape {
	return Map(g, tile.FromMark)
}

// Anchors returns the shapes of every placed tile in row-major order.
func (g *Grid) Anchors() []tile.Shape {
	return Flatten(g, func(m tile.Mark) (tile.Shape, bool) {
		return tile.FromMark(m), m.IsAnchor()
	})
}
