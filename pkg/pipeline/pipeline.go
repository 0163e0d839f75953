// Package pipeline runs the generate → layout → render pipeline shared by the
// CLI and the HTTP server.
//
// # Stages
//
//  1. Generate: size the grid, balance the distribution, fill it at random
//  2. Layout: turn the filled grid into numbered blocks
//  3. Render: produce HTML, SVG, JSON or text
//
// Seeded runs are deterministic, so their layouts are cached; unseeded runs
// draw a fresh seed and record it in the result so they can be reproduced.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Tiles:   20,
//	    Columns: 5,
//	    Formats: []string{pipeline.FormatHTML},
//	})
//	if err != nil {
//	    return err
//	}
//	html := result.Artifacts[pipeline.FormatHTML]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mosaic/pkg/distribution"
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/render/layout"
	"github.com/matzehuels/mosaic/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	DefaultTallRate       = mosaic.DefaultTallRate
	DefaultWideRate       = mosaic.DefaultWideRate
	DefaultMaxFillRetries = mosaic.DefaultMaxFillRetries

	// DefaultCellSize is the SVG edge length of one cell in pixels.
	DefaultCellSize = sink.DefaultCellSize

	// DefaultGap is the SVG spacing between tiles in pixels.
	DefaultGap = sink.DefaultGap

	// MaxTiles bounds the tile count accepted from untrusted callers.
	MaxTiles = 10000

	// MaxFillRetries bounds the fill attempts accepted from untrusted callers.
	MaxFillRetries = 10000
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatSVG:  true,
	FormatJSON: true,
	FormatText: true,
}

// ContentTypes maps output formats to their MIME types.
var ContentTypes = map[string]string{
	FormatHTML: "text/html; charset=utf-8",
	FormatSVG:  "image/svg+xml",
	FormatJSON: "application/json",
	FormatText: "text/plain; charset=utf-8",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// Rates and gap are pointers because zero is a meaningful value for them;
// nil selects the default.
type Options struct {
	// Generate options
	Tiles          int      `json:"tiles" toml:"tiles"`
	Columns        int      `json:"columns" toml:"columns"`
	TallRate       *float64 `json:"tall_rate,omitempty" toml:"tall_rate"`
	WideRate       *float64 `json:"wide_rate,omitempty" toml:"wide_rate"`
	MaxFillRetries int      `json:"max_fill_retries,omitempty" toml:"max_fill_retries"`
	Seed           uint64   `json:"seed,omitempty" toml:"seed"` // 0 draws a random seed

	// Render options
	Formats  []string `json:"formats,omitempty" toml:"formats"`
	CellSize float64  `json:"cell_size,omitempty" toml:"cell_size"`
	Gap      *float64 `json:"gap,omitempty" toml:"gap"`
	Labels   bool     `json:"labels,omitempty" toml:"labels"`
	Title    string   `json:"title,omitempty" toml:"title"` // wraps HTML output in a full page

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Float returns a pointer to v, for the optional rate and gap fields.
func Float(v float64) *float64 { return &v }

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run; it is echoed in JSON output and HTTP headers.
	ID uuid.UUID

	// Seed is the seed actually used, drawn at random when Options.Seed is 0.
	Seed uint64

	Grid         *grid.Grid
	Distribution *distribution.Distribution
	Layout       layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats Stats

	// CacheHit is true when the layout came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows         int
	Columns      int
	TileCount    int
	Attempts     int // fill attempts, including the successful one
	GenerateTime time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks the generation parameters and sets their defaults.
// Whether tiles and columns are compatible is left to the generator.
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	if err := errors.IntBetween(1, MaxTiles, o.Tiles, "tiles"); err != nil {
		return err
	}
	if err := errors.PositiveInt(o.Columns, "columns"); err != nil {
		return err
	}
	if err := errors.Rate(*o.TallRate, "tall_rate"); err != nil {
		return err
	}
	if err := errors.Rate(*o.WideRate, "wide_rate"); err != nil {
		return err
	}
	return errors.IntBetween(1, MaxFillRetries, o.MaxFillRetries, "max_fill_retries")
}

// SetGenerateDefaults sets default values for generation.
func (o *Options) SetGenerateDefaults() {
	if o.TallRate == nil {
		o.TallRate = Float(DefaultTallRate)
	}
	if o.WideRate == nil {
		o.WideRate = Float(DefaultWideRate)
	}
	if o.MaxFillRetries == 0 {
		o.MaxFillRetries = DefaultMaxFillRetries
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Gap == nil {
		o.Gap = Float(DefaultGap)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.CellSize < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "expecting cell_size to be positive, got %v", o.CellSize)
	}
	if *o.Gap < 0 || *o.Gap >= o.CellSize {
		return errors.New(errors.ErrCodeInvalidArgument, "expecting gap to be in [0, %v), got %v", o.CellSize, *o.Gap)
	}
	return ValidateFormats(o.Formats)
}

// Seeded reports whether the caller fixed the seed.
func (o *Options) Seeded() bool {
	return o.Seed != 0
}

// LayoutKeyParts returns the parameters that determine a seeded layout.
func (o *Options) LayoutKeyParts() []any {
	return []any{o.Tiles, o.Columns, *o.TallRate, *o.WideRate, o.MaxFillRetries, o.Seed}
}
