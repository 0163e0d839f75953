package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/internal/server"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

type serveOptions struct {
	gen     generateFlags
	cache   cacheFlags
	addr    string
	timeout time.Duration
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var o serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mosaics over HTTP",
		Long: `Run an HTTP server exposing GET /mosaic, POST /mosaic and GET /healthz.

Generation flags set the defaults for parameters a request leaves out.`,
		Example: `  mosaic serve --addr :8080
  mosaic serve --cache redis://localhost:6379/0 --tall-rate 0.2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &o)
		},
	}

	o.gen.register(cmd)
	o.cache.register(cmd, "memory", "cache backend (memory, file://dir, redis://..., mongodb://...)")
	cmd.Flags().StringVar(&o.addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 30*time.Second, "per-request timeout (0 disables)")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, o *serveOptions) error {
	ctx := cmd.Context()

	defaults, err := o.gen.options(cmd)
	if err != nil {
		return err
	}
	// Tiles and columns always come from the request.
	defaults.Tiles, defaults.Columns = 0, 0
	defaults.Logger = c.Logger

	runner, err := c.newRunner(ctx, o.cache.spec, o.cache.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	out := cmd.OutOrStdout()
	printInfo(out, "Serving mosaics on %s", StyleNumber.Render(o.addr))
	printKeyValue(out, "cache", cacheLabel(o.cache))
	printKeyValue(out, "rates", formatRates(defaults))
	printNextStep(out, "Try", "curl 'http://localhost"+portOf(o.addr)+"/mosaic?tiles=20&columns=5&format=text'")

	srv := server.New(runner, c.Logger,
		server.WithDefaults(defaults),
		server.WithTimeout(o.timeout),
	)
	return srv.ListenAndServe(ctx, o.addr)
}

func cacheLabel(f cacheFlags) string {
	if f.noCache {
		return "disabled"
	}
	return f.spec
}

func formatRates(opts pipeline.Options) string {
	return "tall " + formatFloat(*opts.TallRate) + ", wide " + formatFloat(*opts.WideRate)
}
