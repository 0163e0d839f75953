package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/pipeline"
)

const (
	defaultTiles   = 20
	defaultColumns = 5
)

// generateFlags are the generation parameters shared by generate, serve and
// preview.
type generateFlags struct {
	config   string
	tiles    int
	columns  int
	tallRate float64
	wideRate float64
	retries  int
	seed     uint64
}

func (f *generateFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "TOML file with generation options")
	fs.IntVarP(&f.tiles, "tiles", "n", defaultTiles, "number of tiles")
	fs.IntVarP(&f.columns, "columns", "c", defaultColumns, "number of grid columns")
	fs.Float64Var(&f.tallRate, "tall-rate", pipeline.DefaultTallRate, "target proportion of tall tiles (0-1)")
	fs.Float64Var(&f.wideRate, "wide-rate", pipeline.DefaultWideRate, "target proportion of wide tiles (0-1)")
	fs.IntVar(&f.retries, "retries", pipeline.DefaultMaxFillRetries, "maximum fill attempts")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
}

// options loads the config file, if any, and overlays flags. Explicit flags
// always win; flag defaults only fill what the file leaves unset.
func (f *generateFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.config != "" {
		var err error
		if opts, err = pipeline.LoadConfig(f.config); err != nil {
			return opts, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("tiles") || opts.Tiles == 0 {
		opts.Tiles = f.tiles
	}
	if fs.Changed("columns") || opts.Columns == 0 {
		opts.Columns = f.columns
	}
	if fs.Changed("tall-rate") || opts.TallRate == nil {
		opts.TallRate = pipeline.Float(f.tallRate)
	}
	if fs.Changed("wide-rate") || opts.WideRate == nil {
		opts.WideRate = pipeline.Float(f.wideRate)
	}
	if fs.Changed("retries") || opts.MaxFillRetries == 0 {
		opts.MaxFillRetries = f.retries
	}
	if fs.Changed("seed") {
		opts.Seed = f.seed
	}
	return opts, nil
}

// cacheFlags select the layout cache backend.
type cacheFlags struct {
	spec    string
	noCache bool
}

func (f *cacheFlags) register(cmd *cobra.Command, defaultSpec, usage string) {
	cmd.Flags().StringVar(&f.spec, "cache", defaultSpec, usage)
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable layout caching")
}
