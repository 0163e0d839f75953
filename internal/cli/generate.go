package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/pipeline"
	"github.com/matzehuels/mosaic/pkg/render/sink"
)

type generateOptions struct {
	gen      generateFlags
	cache    cacheFlags
	formats  string
	output   string
	cellSize float64
	gap      float64
	labels   bool
	title    string
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var o generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a mosaic",
		Long: `Generate a random mosaic and write it in one or more formats.

Without --output a single format is written to stdout. With --output and
several formats, the extension of each file is replaced by the format name.`,
		Example: `  mosaic generate -n 20 -c 5
  mosaic generate -n 40 -c 6 --tall-rate 0.1 -f html -o gallery.html
  mosaic generate --config mosaic.toml -f svg,json -o out/mosaic`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &o)
		},
	}

	o.gen.register(cmd)
	o.cache.register(cmd, "", "cache backend (memory, file://dir, redis://..., mongodb://...); default is the user cache dir")
	fs := cmd.Flags()
	fs.StringVarP(&o.formats, "format", "f", pipeline.FormatText, "output formats, comma-separated ("+strings.Join(pipeline.FormatNames(), ", ")+")")
	fs.StringVarP(&o.output, "output", "o", "", "output file (stdout if empty)")
	fs.Float64Var(&o.cellSize, "cell-size", pipeline.DefaultCellSize, "SVG cell size in pixels")
	fs.Float64Var(&o.gap, "gap", pipeline.DefaultGap, "SVG gap between tiles in pixels")
	fs.BoolVar(&o.labels, "labels", false, "number the tiles in SVG output")
	fs.StringVar(&o.title, "title", "", "wrap HTML output in a page with this title")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, o *generateOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := o.gen.options(cmd)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("format") || len(opts.Formats) == 0 {
		opts.Formats = parseFormats(o.formats)
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{pipeline.FormatText}
	}
	if fs.Changed("cell-size") || opts.CellSize == 0 {
		opts.CellSize = o.cellSize
	}
	if fs.Changed("gap") || opts.Gap == nil {
		opts.Gap = pipeline.Float(o.gap)
	}
	if fs.Changed("labels") {
		opts.Labels = o.labels
	}
	if fs.Changed("title") {
		opts.Title = o.title
	}
	opts.Logger = logger

	if o.output == "" && len(opts.Formats) > 1 {
		return fmt.Errorf("writing %d formats needs --output", len(opts.Formats))
	}

	runner, err := c.newRunner(ctx, o.cache.spec, o.cache.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	out := cmd.OutOrStdout()
	var spin *Spinner
	if o.output != "" {
		spin = newSpinnerWithContext(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Filling %d tiles...", opts.Tiles))
		spin.Start()
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, opts)
	if spin != nil {
		switch {
		case spin.Cancelled():
			spin.Stop()
		case err != nil:
			spin.StopWithError(errors.UserMessage(err))
		default:
			spin.StopWithSuccess(fmt.Sprintf("Generated %s with seed %d", result.Grid, result.Seed))
		}
	}
	if err != nil {
		return err
	}
	prog.done("Generated", "grid", result.Grid, "seed", result.Seed, "cached", result.CacheHit)

	if o.output == "" {
		format := opts.Formats[0]
		if format == pipeline.FormatText {
			_, err = fmt.Fprint(out, sink.RenderText(result.Layout))
			return err
		}
		_, err = out.Write(result.Artifacts[format])
		return err
	}

	paths, err := writeArtifacts(o.output, result.Artifacts, opts.Formats)
	if err != nil {
		return err
	}
	printStats(out, result.Stats, result.CacheHit)
	for _, p := range paths {
		printFile(out, p)
	}
	return nil
}

// writeArtifacts writes one file per format. A single format goes to output
// as given; several formats share output's base name with the format as
// extension.
func writeArtifacts(output string, artifacts map[string][]byte, formats []string) ([]string, error) {
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := output
		if len(formats) > 1 {
			path = strings.TrimSuffix(output, filepath.Ext(output)) + "." + extension(format)
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func extension(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}
