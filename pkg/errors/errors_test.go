package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "test message: %s", "value")

	assert.Equal(t, ErrCodeInvalidArgument, err.Code)
	assert.Equal(t, "test message: value", err.Message)
	assert.EqualError(t, err, "INVALID_ARGUMENT: test message: value")
}

func TestWrap(t *testing.T) {
	cause := errors.New("no slot")
	err := Wrap(ErrCodeInvalidArgument, cause, "cannot place tile")

	assert.Equal(t, ErrCodeInvalidArgument, err.Code)
	assert.Same(t, cause, err.Cause)
	assert.Same(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "INVALID_ARGUMENT: cannot place tile: no slot")
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidState, "test"),
			code:     ErrCodeInvalidState,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidArgument, "test"),
			code:     ErrCodeRetriesExhausted,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeRetriesExhausted, New(ErrCodeInvalidArgument, "inner"), "outer"),
			code:     ErrCodeRetriesExhausted,
			expected: true,
		},
		{
			name:     "fmt wrapped error",
			err:      fmtWrap(New(ErrCodeInvalidArgument, "inner")),
			code:     ErrCodeInvalidArgument,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidArgument,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidArgument,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Is(tt.err, tt.code))
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeRetriesExhausted, "test"),
			expected: ErrCodeRetriesExhausted,
		},
		{
			name:     "canceled fill",
			err:      fmtWrap(Wrap(ErrCodeCanceled, fmt.Errorf("deadline"), "stopped")),
			expected: ErrCodeCanceled,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetCode(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidArgument, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserMessage(tt.err))
		})
	}
}

func TestIsInvalidInput(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeInvalidArgument, "x"), true},
		{New(ErrCodeInvalidState, "x"), true},
		{New(ErrCodeInvalidFormat, "x"), true},
		{New(ErrCodeInvalidConfig, "x"), true},
		{New(ErrCodeRetriesExhausted, "x"), false},
		{New(ErrCodeCanceled, "x"), false},
		{New(ErrCodeInternal, "x"), false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsInvalidInput(tt.err), "IsInvalidInput(%v)", tt.err)
	}
}

func fmtWrap(err error) error {
	return fmt.Errorf("generate: %w", err)
}
