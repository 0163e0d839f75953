// Command mosaic generates random tile mosaics from the command line and
// serves them over HTTP.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/internal/cli"
	"github.com/matzehuels/mosaic/pkg/errors"
)

// Exit codes beyond the usual 0/1.
const (
	exitUsage     = 2   // invalid parameters or config
	exitExhausted = 3   // fill retries ran out; other parameters may work
	exitInterrupt = 130 // shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging (shows every fill retry)")

	// The level is only known once flags are parsed.
	inner := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if inner != nil {
			return inner(cmd, args)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "error:", errors.UserMessage(err))
	}
	return err
}

func exitCode(err error) int {
	switch {
	case stderrors.Is(err, context.Canceled):
		return exitInterrupt
	case errors.Is(err, errors.ErrCodeRetriesExhausted):
		return exitExhausted
	case errors.IsInvalidInput(err):
		return exitUsage
	}
	return 1
}
