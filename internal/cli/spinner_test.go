package cli

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerBasic(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, "Filling...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	assert.Contains(t, buf.String(), "Filling...")
	assert.False(t, s.Cancelled(), "Stop should not count as cancellation")
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, io.Discard, "Filling...")
	s.Start()
	cancel()

	assert.Eventually(t, s.Cancelled, time.Second, 10*time.Millisecond,
		"spinner should be cancelled after context cancellation")
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(io.Discard, "Filling...")
	s.Start()

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
		s.Stop()
	})
}

func TestSpinnerStopWithMessages(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, "Working...")
	s.Start()
	s.StopWithSuccess("Done!")
	assert.Contains(t, buf.String(), "Done!")

	buf.Reset()
	s = newSpinner(&buf, "Working...")
	s.Start()
	s.StopWithError("Failed!")
	assert.Contains(t, buf.String(), "Failed!")
}
