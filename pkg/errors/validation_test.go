package errors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositiveInt(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"one", 1, false},
		{"large", 1 << 20, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PositiveInt(tt.value, "rows")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, Is(err, ErrCodeInvalidArgument), "PositiveInt(%d) = %v", tt.value, err)
		})
	}
}

func TestNonNegativeInt(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 7, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NonNegativeInt(tt.value, "small")
			assert.Equal(t, tt.wantErr, err != nil, "NonNegativeInt(%d) = %v", tt.value, err)
		})
	}
}

func TestIntBetween(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		value    int
		wantErr  bool
	}{
		{"lower bound", 0, 3, 0, false},
		{"upper bound", 0, 3, 3, false},
		{"inside", 0, 3, 2, false},
		{"below", 0, 3, -1, true},
		{"above", 0, 3, 4, true},
		{"empty range", 0, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IntBetween(tt.min, tt.max, tt.value, "row")
			assert.Equal(t, tt.wantErr, err != nil, "IntBetween(%d, %d, %d) = %v", tt.min, tt.max, tt.value, err)
		})
	}

	err := IntBetween(0, 3, 5, "row")
	assert.Equal(t, "expecting row to be between 0 and 3, got 5", UserMessage(err))
}

func TestRate(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"quarter", 0.25, false},
		{"one", 1, false},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Rate(tt.value, "tallRate")
			assert.Equal(t, tt.wantErr, err != nil, "Rate(%v) = %v", tt.value, err)
		})
	}
}
