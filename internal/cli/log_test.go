package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestNewLoggerReportsCallerAtDebug(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.DebugLevel).Debug("attempt failed")
	assert.Contains(t, buf.String(), "log_test.go", "debug output has no caller")

	buf.Reset()
	newLogger(&buf, log.InfoLevel).Info("generated")
	assert.NotContains(t, buf.String(), "log_test.go", "info output reports caller")
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Generated", "grid", "4x5")

	for _, want := range []string{"Generated", "grid=4x5", "elapsed="} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	custom := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, custom, loggerFromContext(withLogger(context.Background(), custom)))
}

func TestCacheDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
		dir, err := cacheDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/custom-cache", appName), dir)
	})

	t.Run("home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CACHE_HOME", "")
		t.Setenv("HOME", home)
		dir, err := cacheDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".cache", appName), dir)
	})
}
