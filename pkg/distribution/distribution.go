// Package distribution computes how many tiles of each shape a mosaic holds.
//
// A [Distribution] counts small, tall and wide tiles and remembers the
// tall/wide rates it was created with. Balancing operations trade one paired
// tile for one small tile (or back), picking the shape whose current rate is
// best placed to absorb the change. [Distribute] uses them to fit a requested
// tile count into a grid exactly.
package distribution

import (
	"fmt"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/random"
)

// Distribution holds the number of tiles of each shape.
// Counts are never negative and balancing never changes Tiles().
type Distribution struct {
	Small int
	Tall  int
	Wide  int

	initialTallRate float64
	initialWideRate float64
}

// New creates a distribution and records its current tall/wide rates as
// the targets later balancing tries to preserve.
func New(small, tall, wide int) (*Distribution, error) {
	if err := errors.NonNegativeInt(small, "small"); err != nil {
		return nil, err
	}
	if err := errors.NonNegativeInt(tall, "tall"); err != nil {
		return nil, err
	}
	if err := errors.NonNegativeInt(wide, "wide"); err != nil {
		return nil, err
	}

	d := &Distribution{Small: small, Tall: tall, Wide: wide}
	d.initialTallRate = d.TallRate()
	d.initialWideRate = d.WideRate()
	return d, nil
}

// FromLargeTiles creates a distribution of total tiles of which tall are
// tall and wide are wide; the rest are small.
func FromLargeTiles(total, tall, wide int) (*Distribution, error) {
	return New(total-tall-wide, tall, wide)
}

// String formats the distribution as "[small,tall,wide]".
func (d *Distribution) String() string {
	return fmt.Sprintf("[%d,%d,%d]", d.Small, d.Tall, d.Wide)
}

// Tiles returns the total number of tiles.
func (d *Distribution) Tiles() int { return d.Small + d.Tall + d.Wide }

// Cells returns the number of grid cells the tiles cover.
func (d *Distribution) Cells() int { return d.Small + 2*(d.Tall+d.Wide) }

// TallRate returns Tall/Tiles. It is NaN when there are no tiles.
func (d *Distribution) TallRate() float64 { return float64(d.Tall) / float64(d.Tiles()) }

// WideRate returns Wide/Tiles. It is NaN when there are no tiles.
func (d *Distribution) WideRate() float64 { return float64(d.Wide) / float64(d.Tiles()) }

// InitialTallRate returns the tall rate captured at construction.
func (d *Distribution) InitialTallRate() float64 { return d.initialTallRate }

// InitialWideRate returns the wide rate captured at construction.
func (d *Distribution) InitialWideRate() float64 { return d.initialWideRate }

// DecrementLargeTiles turns one tall or wide tile into a small tile.
//
// When only one paired shape is left, that one shrinks. Otherwise the shape
// that sits closest to (or furthest above) its initial rate shrinks; an exact
// tie is broken by r. Since the tile total is fixed, repeated calls take
// turns between tall and wide rather than draining one shape.
func (d *Distribution) DecrementLargeTiles(r random.Source) error {
	if d.Tall == 0 && d.Wide == 0 {
		return errors.New(errors.ErrCodeInvalidState, "cannot decrement the number of either wide or tall tiles in %s", d)
	}

	var shrinkWide bool
	switch {
	case d.Tall == 0:
		shrinkWide = true
	case d.Wide == 0:
		shrinkWide = false
	default:
		wideGap := d.initialWideRate - d.WideRate()
		tallGap := d.initialTallRate - d.TallRate()
		shrinkWide = pick(wideGap, tallGap, r)
	}

	if shrinkWide {
		d.Wide--
	} else {
		d.Tall--
	}
	d.Small++
	return nil
}

// IncrementLargeTiles turns one small tile into a tall or wide tile.
//
// The shape that sits furthest below (or least above) its initial rate
// grows; an exact tie is broken by r.
func (d *Distribution) IncrementLargeTiles(r random.Source) error {
	if d.Small == 0 {
		return errors.New(errors.ErrCodeInvalidState, "cannot decrement the number of small tiles in %s, already 0", d)
	}

	wideExcess := d.WideRate() - d.initialWideRate
	tallExcess := d.TallRate() - d.initialTallRate

	if pick(wideExcess, tallExcess, r) {
		d.Wide++
	} else {
		d.Tall++
	}
	d.Small--
	return nil
}

// pick reports whether the wide side wins: wide < tall, or a coin flip on a tie.
func pick(wide, tall float64, r random.Source) bool {
	if wide == tall {
		return r.IntN(2) == 0
	}
	return wide < tall
}
