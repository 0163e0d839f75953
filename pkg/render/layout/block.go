package layout

import "github.com/matzehuels/mosaic/pkg/tile"

// Block is one placed tile in cell units.
type Block struct {
	Index   int // 1-based position in row-major traversal
	Shape   tile.Shape
	Row     int
	Column  int
	RowSpan int
	ColSpan int
}

// Left returns the column boundary on the left of the block.
func (b Block) Left() int { return b.Column }

// Right returns the column boundary on the right of the block.
func (b Block) Right() int { return b.Column + b.ColSpan }

// Top returns the row boundary above the block.
func (b Block) Top() int { return b.Row }

// Bottom returns the row boundary below the block.
func (b Block) Bottom() int { return b.Row + b.RowSpan }

// Width returns the horizontal span of the block.
func (b Block) Width() int { return b.ColSpan }

// Height returns the vertical span of the block.
func (b Block) Height() int { return b.RowSpan }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() float64 { return float64(b.Left()+b.Right()) / 2 }

// CenterY returns the vertical center point of the block.
func (b Block) CenterY() float64 { return float64(b.Top()+b.Bottom()) / 2 }

// Contains reports whether the cell (row, column) lies inside the block.
func (b Block) Contains(row, column int) bool {
	return row >= b.Top() && row < b.Bottom() && column >= b.Left() && column < b.Right()
}
