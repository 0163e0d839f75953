package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

func newTestCLI() (*CLI, *bytes.Buffer) {
	var logs bytes.Buffer
	return New(&logs, LogInfo), &logs
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c, _ := newTestCLI()
	root := c.RootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()

	for _, name := range []string{"generate", "render", "serve", "preview", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "Find(%q)", name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestGenerateJSONToStdout(t *testing.T) {
	out, err := runRoot(t, "generate", "-n", "20", "-c", "5", "--seed", "7", "-f", "json", "--no-cache")
	require.NoError(t, err)

	var doc struct {
		Seed    uint64            `json:"seed"`
		Rows    int               `json:"rows"`
		Columns int               `json:"columns"`
		Blocks  []json.RawMessage `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc), "output is not JSON:\n%s", out)
	assert.EqualValues(t, 7, doc.Seed)
	assert.Equal(t, 5, doc.Columns)
	assert.Len(t, doc.Blocks, 20)
}

func TestGenerateTextToStdout(t *testing.T) {
	out, err := runRoot(t, "generate", "-n", "10", "-c", "5", "--tall-rate", "0", "--wide-rate", "0", "--no-cache")
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "[]"), "small glyphs in\n%s", out)
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	args := []string{"generate", "-n", "30", "-c", "6", "--seed", "42", "-f", "text", "--no-cache"}
	first, err := runRoot(t, args...)
	require.NoError(t, err)
	second, err := runRoot(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed produced different output")
}

func TestGenerateToFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "nested", "gallery.out")

	out, err := runRoot(t, "generate", "-n", "12", "-c", "4", "--seed", "3", "-f", "svg,json", "-o", output, "--no-cache")
	require.NoError(t, err)

	for _, name := range []string{"gallery.svg", "gallery.json"} {
		path := filepath.Join(dir, "nested", name)
		data, err := os.ReadFile(path)
		if assert.NoError(t, err, "ReadFile(%s)", name) {
			assert.NotEmpty(t, data, "%s is empty", name)
		}
		assert.Contains(t, out, path)
	}
}

func TestRenderSavedLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.json")
	_, err := runRoot(t, "generate", "-n", "10", "-c", "5", "--tall-rate", "0", "--wide-rate", "0",
		"--seed", "4", "-f", "json", "-o", path, "--no-cache")
	require.NoError(t, err)

	out, err := runRoot(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "[]"), "small glyphs in\n%s", out)

	out, err = runRoot(t, "render", path, "-f", "html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<table"), "html output = %s", out)
	assert.Equal(t, 10, strings.Count(out, "<td"))
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"rows": 1, "columns": 2, "blocks": [{"shape": "SMALL"}]}`), 0644))

	_, err := runRoot(t, "render", filepath.Join(dir, "missing.json"))
	assert.Error(t, err, "missing file")
	_, err = runRoot(t, "render", broken)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument), "render(broken) = %v", err)
	_, err = runRoot(t, "render")
	assert.Error(t, err, "no argument")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"-f", "pdf"}, errors.ErrCodeInvalidFormat},
		{"bad rate", []string{"--tall-rate", "1.5"}, errors.ErrCodeInvalidArgument},
		{"too few cells", []string{"-n", "2", "-c", "5"}, errors.ErrCodeInvalidArgument},
		{"too many retries", []string{"--retries", strconv.Itoa(pipeline.MaxFillRetries + 1)}, errors.ErrCodeInvalidArgument},
		{"several formats to stdout", []string{"-f", "svg,json"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--no-cache"}, tt.args...)
			_, err := runRoot(t, args...)
			require.Error(t, err)
			if tt.code != "" {
				assert.True(t, errors.Is(err, tt.code), "error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestGenerateFlagsConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.toml")
	config := "tiles = 30\ncolumns = 6\ntall_rate = 0\nseed = 11\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0644))

	var f generateFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--columns", "4"}))

	opts, err := f.options(cmd)
	require.NoError(t, err)
	assert.Equal(t, 30, opts.Tiles, "tiles from config")
	assert.Equal(t, 4, opts.Columns, "columns from flag")
	assert.Zero(t, *opts.TallRate, "tall rate from config")
	assert.Equal(t, pipeline.DefaultWideRate, *opts.WideRate, "wide rate from flag default")
	assert.Equal(t, pipeline.DefaultMaxFillRetries, opts.MaxFillRetries)
	assert.EqualValues(t, 11, opts.Seed, "seed from config")
}

func TestGenerateFlagsMissingConfig(t *testing.T) {
	var f generateFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}))

	_, err := f.options(cmd)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "options() = %v", err)
}

func TestCompletionCommand(t *testing.T) {
	out, err := runRoot(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "mosaic")

	_, err = runRoot(t, "completion", "tcsh")
	assert.Error(t, err, "unsupported shell")
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"SVG, json ,", []string{"svg", "json"}},
		{" , ", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseFormats(tt.in), "parseFormats(%q)", tt.in)
	}
}

func TestWriteArtifactsSingle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.html")
	paths, err := writeArtifacts(path, map[string][]byte{"html": []byte("<table>")}, []string{"html"})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<table>", string(data))
}

func TestWriteArtifactsMultiple(t *testing.T) {
	base := filepath.Join(t.TempDir(), "mosaic.out")
	artifacts := map[string][]byte{"text": []byte("[]"), "svg": []byte("<svg/>")}
	paths, err := writeArtifacts(base, artifacts, []string{"text", "svg"})
	require.NoError(t, err)

	dir := filepath.Dir(base)
	assert.Equal(t, []string{filepath.Join(dir, "mosaic.txt"), filepath.Join(dir, "mosaic.svg")}, paths)
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":8080":          ":8080",
		"localhost:9000": ":9000",
		"[::1]:7000":     ":7000",
		"nohost":         "",
	}
	for addr, want := range tests {
		assert.Equal(t, want, portOf(addr), "portOf(%q)", addr)
	}
}

func TestStatsLine(t *testing.T) {
	s := pipeline.Stats{Rows: 4, Columns: 5, TileCount: 17, Attempts: 1}
	line := statsLine(s, false)
	for _, want := range []string{"4x5", "17 tiles", "1 attempt", iconFresh} {
		assert.Contains(t, line, want)
	}
	assert.NotContains(t, line, "attempts", "want singular attempt")

	cached := statsLine(pipeline.Stats{Rows: 1, Columns: 2, TileCount: 2}, true)
	assert.Contains(t, cached, iconCached)
	assert.NotContains(t, cached, "attempt")
}

func TestFormatRates(t *testing.T) {
	opts := pipeline.Options{TallRate: pipeline.Float(0.2), WideRate: pipeline.Float(0)}
	assert.Equal(t, "tall 0.2, wide 0", formatRates(opts))
}

func TestCacheLabel(t *testing.T) {
	assert.Equal(t, "memory", cacheLabel(cacheFlags{spec: "memory"}))
	assert.Equal(t, "disabled", cacheLabel(cacheFlags{spec: "memory", noCache: true}))
}

func TestOpenCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx := t.Context()

	c, err := openCache(ctx, "", false)
	require.NoError(t, err)
	c.Close()

	_, err = openCache(ctx, "bogus://", false)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "openCache(bogus) = %v", err)
	_, err = openCache(ctx, "bogus://", true)
	assert.NoError(t, err, "noCache ignores the spec")
}
