package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{1.004, 1.0},
		{2.675, 2.68},
		{-1.005, -1.0},
		{-1.006, -1.01},
		{-2.675, -2.67},
		{33.333333, 33.33},
		{0.1 + 0.2, 0.3},
		{100, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundFloat(tt.in), "RoundFloat(%v)", tt.in)
	}
}

func TestNormalizeFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.009, 0},
		{-0.009, 0},
		{0.0000000000000001, 0},
		{0.01, 0.01},
		{-0.01, -0.01},
		{12.345, 12.35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeFloat(tt.in), "NormalizeFloat(%v)", tt.in)
	}
}

func TestNormalize(t *testing.T) {
	assert.True(t, Normalize(decimal.RequireFromString("0.004")).IsZero())
	assert.True(t, Normalize(decimal.RequireFromString("-0.0099")).IsZero())
	assert.Equal(t, "-0.01", Normalize(decimal.RequireFromString("-0.01")).String())
	assert.Equal(t, "33.33", Normalize(decimal.NewFromInt(100).Div(decimal.NewFromInt(3))).String())
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"-1.005", "-1"},
		{"-1.0051", "-1.01"},
		{"-0.015", "-0.01"},
		{"0.015", "0.02"},
		{"-12.344", "-12.34"},
		{"7", "7"},
	}

	for _, tt := range tests {
		got := Round(decimal.RequireFromString(tt.in))
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Round(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(1235), ToCents(decimal.RequireFromString("12.345")))
	assert.Equal(t, int64(-3000), ToCents(decimal.NewFromInt(-30)))
	assert.True(t, FromCents(3000).Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "0.07", FromCents(7).String())
}

func TestParseAndFormat(t *testing.T) {
	d, err := Parse("19.999")
	require.NoError(t, err)
	assert.Equal(t, "20.00", Format(d))

	_, err = Parse("twelve")
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"alice": decimal.RequireFromString("60"),
		"bob":   decimal.RequireFromString("-30"),
		"carol": decimal.RequireFromString("-30"),
	}
	assert.True(t, Sum(balances).IsZero())
	assert.True(t, IsZero(decimal.RequireFromString("0.001")))
}
