package distribution

import (
	"math"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/random"
)

// Distribute sizes a grid for tiles tiles laid out over columns columns and
// returns a distribution that covers that grid exactly, together with the
// empty grid.
//
// The tall and wide rates give the requested proportions of paired tiles.
// The number of rows is the one closest to the cells those proportions need;
// the distribution is then balanced one tile at a time until its cell count
// equals rows*columns.
func Distribute(tiles, columns int, tallRate, wideRate float64, r random.Source) (*Distribution, *grid.Grid, error) {
	if err := errors.PositiveInt(tiles, "tiles"); err != nil {
		return nil, nil, err
	}
	if err := errors.PositiveInt(columns, "columns"); err != nil {
		return nil, nil, err
	}

	tallTarget := int(math.Round(tallRate * float64(tiles)))
	wideTarget := int(math.Round(wideRate * float64(tiles)))
	smallTarget := tiles - tallTarget - wideTarget

	cellsTarget := 2*tallTarget + 2*wideTarget + smallTarget
	rows := int(math.Round(float64(cellsTarget) / float64(columns)))

	if columns >= cellsTarget || tallTarget > 0 && rows < 2 {
		return nil, nil, errors.New(errors.ErrCodeInvalidArgument, "cannot fill %d items in %d columns", tiles, columns)
	}

	d, err := FromLargeTiles(tiles, tallTarget, wideTarget)
	if err != nil {
		return nil, nil, err
	}
	if err := d.Balance(rows*columns, r); err != nil {
		return nil, nil, err
	}

	g, err := grid.New(rows, columns)
	if err != nil {
		return nil, nil, err
	}
	return d, g, nil
}

// Balance trades paired tiles for small ones (or back) until Cells() equals
// cells. Each step moves Cells() by exactly one; an INVALID_STATE error is
// returned if cells lies outside [Tiles(), 2*Tiles()].
func (d *Distribution) Balance(cells int, r random.Source) error {
	for d.Cells() != cells {
		var err error
		if d.Cells() > cells {
			err = d.DecrementLargeTiles(r)
		} else {
			err = d.IncrementLargeTiles(r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
