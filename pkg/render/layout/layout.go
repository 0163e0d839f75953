package layout

import (
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/tile"
)

// Layout is the renderable form of a filled grid.
type Layout struct {
	Rows    int
	Columns int

	Small int
	Tall  int
	Wide  int

	// Blocks in row-major order of their anchors; Blocks[i].Index == i+1.
	Blocks []Block

	// Marks is a copy of the grid's cells.
	Marks [][]tile.Mark
}

// Build walks g in row-major order and emits a block per anchor mark.
// g must be fully covered.
func Build(g *grid.Grid) (Layout, error) {
	if !g.Full() {
		return Layout{}, errors.New(errors.ErrCodeInvalidArgument,
			"cannot lay out grid %s: %d of %d cells covered", g, g.Occupied(), g.Area())
	}

	marks := g.Cells()
	l := Layout{
		Rows:    g.Rows(),
		Columns: g.Columns(),
		Small:   g.Small(),
		Tall:    g.Tall(),
		Wide:    g.Wide(),
		Blocks:  make([]Block, 0, g.TileCount()),
		Marks:   marks,
	}

	for row, cells := range marks {
		for column, m := range cells {
			if !m.IsAnchor() {
				continue
			}
			shape := tile.FromMark(m)
			l.Blocks = append(l.Blocks, Block{
				Index:   len(l.Blocks) + 1,
				Shape:   shape,
				Row:     row,
				Column:  column,
				RowSpan: shape.Height(),
				ColSpan: shape.Width(),
			})
		}
	}
	return l, nil
}

// Replay places l's blocks onto a fresh grid. It fails if a block is out of
// bounds, overlaps another, or the blocks leave cells uncovered, so it also
// validates layouts that did not come from [Build].
func Replay(l Layout) (*grid.Grid, error) {
	g, err := grid.New(l.Rows, l.Columns)
	if err != nil {
		return nil, err
	}
	for _, b := range l.Blocks {
		if err := g.Set(b.Row, b.Column, b.Shape); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "block %d", b.Index)
		}
	}
	if !g.Full() {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"layout covers %d of %d cells", g.Occupied(), g.Area())
	}
	return g, nil
}

// TileCount returns the number of blocks.
func (l Layout) TileCount() int { return len(l.Blocks) }

// RowBlocks groups blocks by the row of their anchor. Rows without an anchor
// (every cell continues a tall tile from above) get an empty slice.
func (l Layout) RowBlocks() [][]Block {
	rows := make([][]Block, l.Rows)
	for i := range rows {
		rows[i] = []Block{}
	}
	for _, b := range l.Blocks {
		rows[b.Row] = append(rows[b.Row], b)
	}
	return rows
}

// Owners maps every cell to the position in Blocks of the tile covering it.
func (l Layout) Owners() [][]int {
	owners := make([][]int, l.Rows)
	for i := range owners {
		owners[i] = make([]int, l.Columns)
	}
	for i, b := range l.Blocks {
		for r := b.Top(); r < b.Bottom(); r++ {
			for c := b.Left(); c < b.Right(); c++ {
				owners[r][c] = i
			}
		}
	}
	return owners
}
