// Package pkg provides the libraries behind mosaic.
//
// # Overview
//
// Mosaic fills a rectangular grid with small (1x1), tall (1x2) and wide (2x1)
// tiles so that every cell is covered exactly once, given a tile count, a
// column count and target proportions of tall and wide tiles. The result is a
// random, gap-free layout for image galleries and card grids.
//
// # Architecture
//
// The typical data flow through mosaic:
//
//	tiles, columns, rates
//	         ↓
//	    [distribution] package (size the grid, balance tile counts)
//	         ↓
//	    [fill] package (random placement with bounded retry)
//	         ↓
//	    [render/layout] package (numbered blocks, row-major)
//	         ↓
//	    HTML/SVG/JSON/text output ([render/sink])
//
// [mosaic] wraps the first two stages behind a single call, and [pipeline]
// runs all of them with caching and hooks for the CLI and HTTP server.
//
// # Quick Start
//
//	g, err := mosaic.Generate(20, 5, mosaic.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	l, _ := layout.Build(g)
//	svg := sink.RenderSVG(l, sink.WithLabels())
//
// # Main Packages
//
// ## Core
//
// [tile] - Tile shapes and the per-cell marks they leave on a grid.
//
// [grid] - Bounds-checked rows x columns grid of marks with per-shape counters.
//
// [distribution] - Tile counts per shape, the balancer that trades large
// tiles for small ones, and Distribute, which picks the grid size.
//
// [fill] - Randomized placement with restart on dead ends.
//
// [random] - Injectable random source; seeded PCG by default.
//
// [errors] - Structured errors with machine-readable codes.
//
// ## Output
//
// [render/layout] - Row-major blocks with spans, ready for any renderer.
//
// [render/sink] - HTML table, SVG, JSON and terminal text renderers.
//
// [io] - JSON import and export of layouts.
//
// ## Infrastructure
//
// [pipeline] - Options, validation and the Runner used by CLI and server.
//
// [cache] - Layout cache backends: memory, file, Redis and MongoDB.
//
// [observability] - Hooks for metrics and tracing, no-op by default.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/fill/...             # Specific package
//	MOSAIC_TEST_REDIS_URL=redis://localhost:6379/15 go test ./pkg/cache/
//
// [tile]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/tile
// [grid]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/grid
// [distribution]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/distribution
// [fill]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/fill
// [random]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/random
// [errors]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/errors
// [mosaic]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/mosaic
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/render/layout
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/render/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/buildinfo
package pkg
