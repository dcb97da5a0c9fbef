package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollars(t *testing.T) {
	tests := []struct {
		cents int64
		want  float64
	}{
		{1050, 10.5},
		{999, 9.99},
		{1, 0.01},
		{100, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dollars(tt.cents), "Dollars(%d)", tt.cents)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "9.99", Format(999))
	assert.Equal(t, "10.50", Format(1050))
	assert.Equal(t, "0.05", Format(5))
}

func TestParseDollars(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"9.99", 999},
		{"$10.5", 1050},
		{" 3 ", 300},
		{"1.005", 100}, // 100.49999... in binary
	}
	for _, tt := range tests {
		got, err := ParseDollars(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, "ParseDollars(%q)", tt.in)
	}
}

func TestParseDollars_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "NaN", "Inf"} {
		_, err := ParseDollars(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}
