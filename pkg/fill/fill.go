// Package fill paints a distribution of tiles onto a grid at random.
//
// [Filler.Set] drops a single tile at a random free position. [Filler.TryToFill]
// places a whole distribution, paired tiles first. [Filler.Fill] repeats
// TryToFill on dead ends, clearing the grid between attempts, up to a retry
// bound. After Fill returns the grid is either completely and correctly
// filled or completely empty.
package fill

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/distribution"
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/random"
	"github.com/matzehuels/mosaic/pkg/tile"
)

// ErrNoSlot is the cause of the INVALID_ARGUMENT error returned when no free
// position fits a shape. Fill treats it as a dead end and retries.
var ErrNoSlot = stderrors.New("no empty slot")

// RetryHook is called after every failed fill attempt with the 1-based
// attempt number and the placement error that ended it.
type RetryHook func(attempt int, err error)

// Option configures a Filler.
type Option func(*Filler)

// WithLogger logs failed attempts at debug level.
func WithLogger(l *log.Logger) Option {
	return func(f *Filler) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithRetryHook registers a callback for failed attempts.
func WithRetryHook(h RetryHook) Option { return func(f *Filler) { f.onRetry = h } }

// Filler places tiles using an injected random source.
type Filler struct {
	rng     random.Source
	logger  *log.Logger
	onRetry RetryHook
}

// New creates a Filler drawing positions from r.
func New(r random.Source, opts ...Option) *Filler {
	f := &Filler{
		rng:    r,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set places shape at a random free position of g and returns its anchor.
//
// A start position is drawn uniformly from the window of valid anchors; the
// window is then scanned in row-major order, wrapping around, until the
// shape fits. If the scan comes back to the start, Set fails with an
// INVALID_ARGUMENT error wrapping ErrNoSlot and g is unchanged.
func (f *Filler) Set(g *grid.Grid, shape tile.Shape) (row, column int, err error) {
	if !shape.Valid() {
		return 0, 0, errors.New(errors.ErrCodeInvalidArgument, "cannot place %s tile", shape)
	}

	rows := g.Rows() - shape.Height() + 1
	columns := g.Columns() - shape.Width() + 1
	if rows <= 0 || columns <= 0 {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidArgument, ErrNoSlot, "%s tile does not fit in grid %s", shape, g)
	}

	row = f.rng.IntN(rows)
	column = f.rng.IntN(columns)
	startRow, startColumn := row, column

	for {
		ok, err := g.IsEmptyForTile(row, column, shape)
		if err != nil {
			return 0, 0, err
		}
		if ok {
			break
		}
		column = (column + 1) % columns
		if column == 0 {
			row = (row + 1) % rows
		}
		if row == startRow && column == startColumn {
			return 0, 0, errors.Wrap(errors.ErrCodeInvalidArgument, ErrNoSlot, "no empty slot for %s tile in grid %s", shape, g)
		}
	}

	if err := g.Set(row, column, shape); err != nil {
		return 0, 0, err
	}
	return row, column, nil
}

// TryToFill places every tile of d once. Tall and wide tiles go first,
// whichever has more remaining (tall on a tie); small tiles fill the rest.
// The first placement error is returned unchanged and g keeps the tiles
// placed so far.
func (f *Filler) TryToFill(g *grid.Grid, d *distribution.Distribution) error {
	tall, wide := d.Tall, d.Wide

	for range d.Tiles() {
		var shape tile.Shape
		switch {
		case tall == 0 && wide == 0:
			shape = tile.Small
		case tall >= wide:
			shape = tile.Tall
			tall--
		default:
			shape = tile.Wide
			wide--
		}
		if _, _, err := f.Set(g, shape); err != nil {
			return err
		}
	}
	return nil
}

// Fill places d onto g, retrying up to maxRetries times.
//
// Static mismatches fail immediately with INVALID_ARGUMENT and no placement
// is attempted: non-positive maxRetries, a cell count different from the
// grid area, tall tiles in a single-row grid, or wide tiles in a
// single-column grid. A dead end (ErrNoSlot) clears g and starts over; once
// all attempts fail Fill returns RETRIES_EXHAUSTED and g is empty.
func (f *Filler) Fill(g *grid.Grid, d *distribution.Distribution, maxRetries int) error {
	return f.FillContext(context.Background(), g, d, maxRetries)
}

// FillContext is Fill that also gives up, with a CANCELED error wrapping
// ctx.Err(), when ctx ends. The context is checked before every attempt; a
// running attempt is never interrupted. g is left empty.
func (f *Filler) FillContext(ctx context.Context, g *grid.Grid, d *distribution.Distribution, maxRetries int) error {
	if err := errors.PositiveInt(maxRetries, "maxRetries"); err != nil {
		return err
	}
	if err := Check(g, d); err != nil {
		return err
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeCanceled, err,
				"fill of distribution %s stopped after %d tries", d, attempt-1)
		}
		err := f.TryToFill(g, d)
		if err == nil {
			return nil
		}
		g.Clear()
		if !stderrors.Is(err, ErrNoSlot) {
			return err
		}
		f.logger.Debug("fill attempt failed", "attempt", attempt, "of", maxRetries, "distribution", d, "err", errors.UserMessage(err))
		if f.onRetry != nil {
			f.onRetry(attempt, err)
		}
	}

	return errors.New(errors.ErrCodeRetriesExhausted,
		"could not fill distribution %s in a %dx%d grid after %d tries", d, g.Rows(), g.Columns(), maxRetries)
}

// Check reports whether d can in principle be placed onto g.
func Check(g *grid.Grid, d *distribution.Distribution) error {
	if cells := g.Area(); d.Cells() != cells {
		return errors.New(errors.ErrCodeInvalidArgument,
			"cannot fill distribution %s (%d cells) in a %dx%d grid (%d cells)", d, d.Cells(), g.Rows(), g.Columns(), cells)
	}
	if g.Rows() < 2 && d.Tall > 0 {
		return errors.New(errors.ErrCodeInvalidArgument,
			"cannot fill distribution %s in a %dx%d grid: not enough rows", d, g.Rows(), g.Columns())
	}
	if g.Columns() < 2 && d.Wide > 0 {
		return errors.New(errors.ErrCodeInvalidArgument,
			"cannot fill distribution %s in a %dx%d grid: not enough columns", d, g.Rows(), g.Columns())
	}
	return nil
}
