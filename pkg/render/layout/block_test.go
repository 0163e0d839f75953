package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/mosaic/pkg/tile"
)

func TestBlockBounds(t *testing.T) {
	tests := []struct {
		name                     string
		block                    Block
		left, right, top, bottom int
	}{
		{
			name:  "small",
			block: Block{Shape: tile.Small, Row: 2, Column: 3, RowSpan: 1, ColSpan: 1},
			left:  3, right: 4, top: 2, bottom: 3,
		},
		{
			name:  "tall",
			block: Block{Shape: tile.Tall, Row: 0, Column: 1, RowSpan: 2, ColSpan: 1},
			left:  1, right: 2, top: 0, bottom: 2,
		},
		{
			name:  "wide",
			block: Block{Shape: tile.Wide, Row: 4, Column: 0, RowSpan: 1, ColSpan: 2},
			left:  0, right: 2, top: 4, bottom: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.block
			assert.Equal(t, [4]int{tt.left, tt.right, tt.top, tt.bottom}, [4]int{b.Left(), b.Right(), b.Top(), b.Bottom()})
			assert.Equal(t, b.ColSpan, b.Width())
			assert.Equal(t, b.RowSpan, b.Height())
		})
	}
}

func TestBlockCenter(t *testing.T) {
	tests := []struct {
		name   string
		block  Block
		wantCX float64
		wantCY float64
	}{
		{"small at origin", Block{RowSpan: 1, ColSpan: 1}, 0.5, 0.5},
		{"tall", Block{Row: 1, Column: 2, RowSpan: 2, ColSpan: 1}, 2.5, 2},
		{"wide", Block{Row: 3, Column: 0, RowSpan: 1, ColSpan: 2}, 1, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCX, tt.block.CenterX())
			assert.Equal(t, tt.wantCY, tt.block.CenterY())
		})
	}
}

func TestBlockContains(t *testing.T) {
	b := Block{Row: 1, Column: 1, RowSpan: 2, ColSpan: 1}

	tests := []struct {
		row, column int
		want        bool
	}{
		{1, 1, true},
		{2, 1, true},
		{3, 1, false},
		{0, 1, false},
		{1, 2, false},
		{1, 0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Contains(tt.row, tt.column), "Contains(%d, %d)", tt.row, tt.column)
	}
}
