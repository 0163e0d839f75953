package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	opts, err := ParseConfig([]byte(`
tiles = 40
columns = 6
tall_rate = 0
wide_rate = 0.3
seed = 99
formats = ["html", "svg"]
gap = 2
labels = true
`))
	require.NoError(t, err)

	assert.Equal(t, 40, opts.Tiles)
	assert.Equal(t, 6, opts.Columns)
	assert.EqualValues(t, 99, opts.Seed)
	require.NotNil(t, opts.TallRate, "explicit 0 should be kept")
	assert.Zero(t, *opts.TallRate)
	require.NotNil(t, opts.WideRate)
	assert.Equal(t, 0.3, *opts.WideRate)
	assert.Equal(t, []string{"html", "svg"}, opts.Formats)
	assert.True(t, opts.Labels)
	require.NotNil(t, opts.Gap)
	assert.Equal(t, 2.0, *opts.Gap)
	assert.Zero(t, opts.MaxFillRetries, "MaxFillRetries should stay unset")
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `tiles = `},
		{"type", `tiles = "many"`},
		{"unknown key", "tiles = 4\ncolumnz = 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "ParseConfig() = %v, want INVALID_CONFIG", err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.toml")
	require.NoError(t, os.WriteFile(path, []byte("tiles = 20\ncolumns = 5\n"), 0644))

	opts, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, opts.Tiles)
	assert.Equal(t, 5, opts.Columns)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "LoadConfig(missing) = %v", err)
}
