package sink

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/render/layout"
	"github.com/matzehuels/mosaic/pkg/tile"
)

// sampleLayout returns the layout of the 2x3 grid
//
//	TALL_TOP    WIDE_LEFT WIDE_RIGHT
//	TALL_BOTTOM SMALL     SMALL
func sampleLayout(t *testing.T) layout.Layout {
	t.Helper()
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	for _, p := range []struct {
		row, column int
		shape       tile.Shape
	}{
		{0, 0, tile.Tall},
		{0, 1, tile.Wide},
		{1, 1, tile.Small},
		{1, 2, tile.Small},
	} {
		require.NoError(t, g.Set(p.row, p.column, p.shape))
	}
	l, err := layout.Build(g)
	require.NoError(t, err)
	return l
}
