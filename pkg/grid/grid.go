// Package grid implements the rectangular board tiles are painted onto.
//
// A [Grid] owns a rows×columns matrix of [tile.Mark] values plus running
// counts of the tiles placed so far. All reads are bounds-checked and every
// accessor that exposes the matrix returns a fresh copy: mutating what it
// returns never changes the grid.
package grid

import (
	"fmt"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/tile"
)

// Grid is a rows×columns board of cell marks.
// The zero value is not usable; create grids with [New].
type Grid struct {
	rows    int
	columns int
	cells   [][]tile.Mark

	small int
	tall  int
	wide  int
}

// New creates an empty grid. Both dimensions must be positive.
func New(rows, columns int) (*Grid, error) {
	if err := errors.PositiveInt(rows, "rows"); err != nil {
		return nil, err
	}
	if err := errors.PositiveInt(columns, "columns"); err != nil {
		return nil, err
	}

	cells := make([][]tile.Mark, rows)
	backing := make([]tile.Mark, rows*columns)
	for i := range cells {
		cells[i] = backing[i*columns : (i+1)*columns : (i+1)*columns]
	}
	return &Grid{rows: rows, columns: columns, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Area returns rows*columns.
func (g *Grid) Area() int { return g.rows * g.columns }

// Small returns the number of small tiles placed.
func (g *Grid) Small() int { return g.small }

// Tall returns the number of tall tiles placed.
func (g *Grid) Tall() int { return g.tall }

// Wide returns the number of wide tiles placed.
func (g *Grid) Wide() int { return g.wide }

// TileCount returns the number of tiles placed.
func (g *Grid) TileCount() int { return g.small + g.tall + g.wide }

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int { return g.small + 2*(g.tall+g.wide) }

// Full reports whether every cell is covered.
func (g *Grid) Full() bool { return g.Occupied() == g.Area() }

// String formats the grid as "RxC [small,tall,wide]".
func (g *Grid) String() string {
	return fmt.Sprintf("%dx%d [%d,%d,%d]", g.rows, g.columns, g.small, g.tall, g.wide)
}

// Get returns the mark at (row, column).
func (g *Grid) Get(row, column int) (tile.Mark, error) {
	if err := g.checkWindow(row, column, 1, 1); err != nil {
		return tile.Empty, err
	}
	return g.cells[row][column], nil
}

// IsEmpty reports whether the cell at (row, column) is empty.
func (g *Grid) IsEmpty(row, column int) (bool, error) {
	m, err := g.Get(row, column)
	if err != nil {
		return false, err
	}
	return m.IsEmpty(), nil
}

// IsEmptyForTile reports whether every cell of shape's footprint anchored at
// (row, column) is empty. The footprint must lie inside the grid.
func (g *Grid) IsEmptyForTile(row, column int, shape tile.Shape) (bool, error) {
	if !shape.Valid() {
		return false, errors.New(errors.ErrCodeInvalidArgument, "cannot test footprint of %s", shape)
	}
	if err := g.checkWindow(row, column, shape.Height(), shape.Width()); err != nil {
		return false, err
	}
	return g.footprintEmpty(row, column, shape), nil
}

// footprintEmpty assumes the footprint is in bounds.
func (g *Grid) footprintEmpty(row, column int, shape tile.Shape) bool {
	for y := range shape.Height() {
		for x := range shape.Width() {
			if !g.cells[row+y][column+x].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Set places shape with its anchor at (row, column). It fails if the
// footprint leaves the grid or overlaps a placed tile.
func (g *Grid) Set(row, column int, shape tile.Shape) error {
	if !shape.Valid() {
		return errors.New(errors.ErrCodeInvalidArgument, "cannot set %s tile", shape)
	}
	if err := g.checkWindow(row, column, shape.Height(), shape.Width()); err != nil {
		return err
	}
	if !g.footprintEmpty(row, column, shape) {
		return errors.New(errors.ErrCodeInvalidArgument, "cannot set tile %s at [%d, %d]: not empty", shape, row, column)
	}

	g.cells[row][column] = shape.Anchor()
	if m, dr, dc, ok := shape.Follower(); ok {
		g.cells[row+dr][column+dc] = m
	}

	switch shape {
	case tile.Small:
		g.small++
	case tile.Tall:
		g.tall++
	case tile.Wide:
		g.wide++
	}
	return nil
}

// Clear resets every cell to empty and every counter to zero.
func (g *Grid) Clear() {
	if g.small == 0 && g.tall == 0 && g.wide == 0 {
		return
	}
	for _, row := range g.cells {
		clear(row)
	}
	g.small, g.tall, g.wide = 0, 0, 0
}

// checkWindow validates a height×width window anchored at (row, column).
func (g *Grid) checkWindow(row, column, height, width int) error {
	if err := errors.IntBetween(0, g.rows-height, row, "row"); err != nil {
		return err
	}
	return errors.IntBetween(0, g.columns-width, column, "column")
}
