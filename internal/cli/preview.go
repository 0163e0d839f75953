package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/pipeline"
	"github.com/matzehuels/mosaic/pkg/render/sink"
)

const rateStep = 0.05

var (
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	previewErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var gen generateFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Reshuffle mosaics interactively",
		Long: `Show a mosaic in the terminal and regenerate it on key presses.

Keys: r/space reshuffle, +/- columns, ]/[ tiles, t/T tall rate, w/W wide rate, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := gen.options(cmd)
			if err != nil {
				return err
			}
			// Log lines would tear the full-screen view.
			quiet := log.New(io.Discard)
			opts.Logger = quiet
			runner := pipeline.NewRunner(nil, quiet)
			m := newPreviewModel(cmd.Context(), runner, opts)

			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
	gen.register(cmd)
	return cmd
}

// =============================================================================
// previewModel - Interactive reshuffling
// =============================================================================

// previewModel regenerates on every parameter change. Generation runs
// synchronously inside Update: even large grids fill in milliseconds.
type previewModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options
	result *pipeline.Result
	err    error
}

func newPreviewModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) previewModel {
	opts.SetGenerateDefaults()
	m := previewModel{ctx: ctx, runner: runner, opts: opts}
	m.regenerate()
	return m
}

// regenerate draws a fresh mosaic. A fixed seed is only honoured for the
// first draw; later draws reshuffle.
func (m *previewModel) regenerate() {
	result, err := m.runner.Generate(m.ctx, m.opts)
	m.opts.Seed = 0
	if err != nil {
		m.err = err
		return
	}
	m.result, m.err = result, nil
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "r", " ":
	case "+", "=":
		m.opts.Columns++
	case "-", "_":
		if m.opts.Columns > 1 {
			m.opts.Columns--
		}
	case "]":
		m.opts.Tiles++
	case "[":
		if m.opts.Tiles > 1 {
			m.opts.Tiles--
		}
	case "t":
		m.opts.TallRate = stepRate(m.opts.TallRate, rateStep)
	case "T":
		m.opts.TallRate = stepRate(m.opts.TallRate, -rateStep)
	case "w":
		m.opts.WideRate = stepRate(m.opts.WideRate, rateStep)
	case "W":
		m.opts.WideRate = stepRate(m.opts.WideRate, -rateStep)
	default:
		return m, nil
	}

	m.regenerate()
	return m, nil
}

// stepRate moves a rate by delta, clamped to [0, 1] and rounded to the step.
func stepRate(rate *float64, delta float64) *float64 {
	v := *rate + delta
	v = float64(int(v/rateStep+0.5)) * rateStep
	return pipeline.Float(min(max(v, 0), 1))
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Mosaic"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d tiles · %d columns · tall %s · wide %s",
		m.opts.Tiles, m.opts.Columns, formatFloat(*m.opts.TallRate), formatFloat(*m.opts.WideRate))))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(previewErrorStyle.Render(iconError + " " + errors.UserMessage(m.err)))
		b.WriteString("\n\n")
	}
	if m.result != nil {
		b.WriteString(sink.RenderText(m.result.Layout))
		b.WriteString("\n")
		b.WriteString(statsLine(m.result.Stats, false))
		b.WriteString(StyleDim.Render(fmt.Sprintf(" · seed %d", m.result.Seed)))
		b.WriteString("\n\n")
	}

	b.WriteString(previewHelpStyle.Render("r reshuffle  +/- columns  ]/[ tiles  t/T tall  w/W wide  q quit"))
	b.WriteString("\n")
	return b.String()
}
