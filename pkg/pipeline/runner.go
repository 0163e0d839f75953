package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/distribution"
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/observability"
	"github.com/matzehuels/mosaic/pkg/render/layout"
)

// Runner executes the pipeline with layout caching.
// Both CLI and server use it so that caching and hooks behave the same.
//
// The Runner holds no per-run state; multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// uses log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs generate → layout → render. The context is checked before
// each stage and between fill attempts; a single attempt always runs to the
// end.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		ID:   uuid.New(),
		Seed: opts.Seed,
	}
	if !opts.Seeded() {
		result.Seed = rand.Uint64() | 1
	}

	// Stage 1+2: Generate and lay out (cached together for seeded runs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.generate(ctx, opts, result); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	r.Logger.Info("generated mosaic",
		"grid", result.Grid,
		"attempts", result.Stats.Attempts,
		"cached", result.CacheHit,
		"duration", result.Stats.GenerateTime+result.Stats.LayoutTime)

	// Stage 3: Render
	if err := r.render(ctx, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// RenderLayout renders an existing layout, such as one imported from a JSON
// document, without generating. The layout is replayed onto a grid first, so
// invalid layouts fail with INVALID_ARGUMENT.
func (r *Runner) RenderLayout(ctx context.Context, l layout.Layout, opts Options, meta RenderMeta) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	g, err := layout.Replay(l)
	if err != nil {
		return nil, err
	}

	result := &Result{ID: uuid.New(), Seed: meta.Seed}
	if id, err := uuid.Parse(meta.ID); err == nil {
		result.ID = id
	}
	r.fillResult(result, g, l)

	if err := r.render(ctx, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) render(ctx context.Context, opts Options, result *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(result.Layout, opts, RenderMeta{ID: result.ID.String(), Seed: result.Seed})
	result.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return nil
}

// Generate runs only the generate and layout stages.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{ID: uuid.New(), Seed: opts.Seed}
	if !opts.Seeded() {
		result.Seed = rand.Uint64() | 1
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.generate(ctx, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) generate(ctx context.Context, opts Options, result *Result) error {
	key := cache.Key("layout", opts.LayoutKeyParts()...)
	if opts.Seeded() {
		if l, ok := r.cachedLayout(ctx, key); ok {
			g, err := layout.Replay(l)
			if err == nil {
				r.fillResult(result, g, l)
				result.CacheHit = true
				return nil
			}
			r.Logger.Warn("discarding invalid cached layout", "err", err)
		}
	}

	start := time.Now()
	attempts := 1
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Tiles, opts.Columns)

	gen := mosaic.New(
		mosaic.WithTallRate(*opts.TallRate),
		mosaic.WithWideRate(*opts.WideRate),
		mosaic.WithMaxFillRetries(opts.MaxFillRetries),
		mosaic.WithSeed(result.Seed),
		mosaic.WithLogger(opts.Logger),
		mosaic.WithRetryHook(func(attempt int, err error) {
			attempts = attempt + 1
			hooks.OnFillRetry(ctx, attempt, err)
		}),
	)
	g, d, err := gen.GenerateContext(ctx, opts.Tiles, opts.Columns)
	result.Stats.GenerateTime = time.Since(start)
	if attempts > opts.MaxFillRetries {
		attempts = opts.MaxFillRetries
	}
	if errors.Is(err, errors.ErrCodeCanceled) {
		// The attempt announced by the last retry never started.
		attempts--
	}
	result.Stats.Attempts = attempts
	hooks.OnGenerateComplete(ctx, opts.Tiles, opts.Columns, attempts, result.Stats.GenerateTime, err)
	if err != nil {
		return err
	}

	layoutStart := time.Now()
	l, err := layout.Build(g)
	if err != nil {
		return err
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	r.fillResult(result, g, l)
	result.Distribution = d

	if opts.Seeded() {
		r.storeLayout(ctx, key, l)
	}
	return nil
}

func (r *Runner) fillResult(result *Result, g *grid.Grid, l layout.Layout) {
	result.Grid = g
	result.Layout = l
	result.Stats.Rows = l.Rows
	result.Stats.Columns = l.Columns
	result.Stats.TileCount = l.TileCount()
	if d, err := distribution.New(l.Small, l.Tall, l.Wide); err == nil {
		result.Distribution = d
	}
}

func (r *Runner) cachedLayout(ctx context.Context, key string) (layout.Layout, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return layout.Layout{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "layout")
		return layout.Layout{}, false
	}
	var l layout.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		r.Logger.Warn("discarding undecodable cached layout", "err", err)
		return layout.Layout{}, false
	}
	observability.Cache().OnCacheHit(ctx, "layout")
	return l, true
}

func (r *Runner) storeLayout(ctx context.Context, key string, l layout.Layout) {
	data, err := json.Marshal(l)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "layout", len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
