// Package mosaic generates rectangular grids tiled with small, tall and wide
// tiles.
//
// [Generate] is the entry point: given a tile count and a column count it
// sizes a grid, balances a distribution of shapes to cover it exactly and
// paints the tiles at random.
//
//	g, err := mosaic.Generate(20, 5, mosaic.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	for _, row := range g.Cells() {
//	    // render row
//	}
package mosaic

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/distribution"
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/fill"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/random"
)

const (
	// DefaultTallRate is the default target proportion of tall tiles.
	DefaultTallRate = 0.25

	// DefaultWideRate is the default target proportion of wide tiles.
	DefaultWideRate = 0.25

	// DefaultMaxFillRetries bounds the number of fill attempts.
	DefaultMaxFillRetries = 100
)

// Option configures a Generator.
type Option func(*Generator)

// WithTallRate sets the target proportion of tall tiles.
func WithTallRate(rate float64) Option { return func(g *Generator) { g.tallRate = rate } }

// WithWideRate sets the target proportion of wide tiles.
func WithWideRate(rate float64) Option { return func(g *Generator) { g.wideRate = rate } }

// WithMaxFillRetries sets how many fill attempts are made before giving up.
func WithMaxFillRetries(n int) Option { return func(g *Generator) { g.maxFillRetries = n } }

// WithSeed draws all random choices from a PCG source seeded with seed.
func WithSeed(seed uint64) Option { return func(g *Generator) { g.rng = random.New(seed) } }

// WithRand draws all random choices from r.
func WithRand(r random.Source) Option { return func(g *Generator) { g.rng = r } }

// WithLogger logs generation steps at debug level.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRetryHook is called after each failed fill attempt.
func WithRetryHook(h fill.RetryHook) Option { return func(g *Generator) { g.onRetry = h } }

// Generator produces mosaics with fixed settings.
// A Generator is not safe for concurrent use: it owns its random source.
type Generator struct {
	tallRate       float64
	wideRate       float64
	maxFillRetries int
	rng            random.Source
	logger         *log.Logger
	onRetry        fill.RetryHook
}

// New creates a Generator. Without WithSeed or WithRand the random source is
// seeded from the clock.
func New(opts ...Option) *Generator {
	g := &Generator{
		tallRate:       DefaultTallRate,
		wideRate:       DefaultWideRate,
		maxFillRetries: DefaultMaxFillRetries,
		logger:         log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = random.New(uint64(time.Now().UnixNano()))
	}
	return g
}

// Generate returns a rows×columns grid holding tiles tiles, fully covered.
func (g *Generator) Generate(tiles, columns int) (*grid.Grid, error) {
	out, _, err := g.GenerateWithDistribution(tiles, columns)
	return out, err
}

// GenerateWithDistribution is Generate that also returns the balanced
// distribution the grid was filled with.
func (g *Generator) GenerateWithDistribution(tiles, columns int) (*grid.Grid, *distribution.Distribution, error) {
	return g.GenerateContext(context.Background(), tiles, columns)
}

// GenerateContext is GenerateWithDistribution that stops retrying once ctx
// ends; see [fill.Filler.FillContext].
func (g *Generator) GenerateContext(ctx context.Context, tiles, columns int) (*grid.Grid, *distribution.Distribution, error) {
	if err := errors.Rate(g.tallRate, "tallRate"); err != nil {
		return nil, nil, err
	}
	if err := errors.Rate(g.wideRate, "wideRate"); err != nil {
		return nil, nil, err
	}

	d, out, err := distribution.Distribute(tiles, columns, g.tallRate, g.wideRate, g.rng)
	if err != nil {
		return nil, nil, err
	}
	g.logger.Debug("distributed tiles", "tiles", tiles, "grid", out, "distribution", d)

	f := fill.New(g.rng, fill.WithLogger(g.logger), fill.WithRetryHook(g.onRetry))
	if err := f.FillContext(ctx, out, d, g.maxFillRetries); err != nil {
		return nil, d, err
	}
	return out, d, nil
}

// Generate is shorthand for New(opts...).Generate(tiles, columns).
func Generate(tiles, columns int, opts ...Option) (*grid.Grid, error) {
	return New(opts...).Generate(tiles, columns)
}
