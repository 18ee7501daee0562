// Package money rounds and normalizes monetary amounts.
//
// All amounts carry two decimal places. Values whose magnitude is below one
// cent are treated as noise and collapse to an exact zero, so balances that
// have accumulated rounding error never show up as "dust".
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places kept for every amount.
const Places = 2

// Epsilon is the smallest non-zero amount (one cent).
var Epsilon = decimal.New(1, -Places)

// half is added before flooring so ties go towards positive infinity.
var half = decimal.New(5, -Places-1)

// Round rounds d to two decimal places, half up: 1.005 becomes 1.01 and
// -1.005 becomes -1.00.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).RoundFloor(Places)
}

// Normalize rounds d, returning exact zero when |d| < 0.01.
func Normalize(d decimal.Decimal) decimal.Decimal {
	if d.Abs().LessThan(Epsilon) {
		return decimal.Zero
	}
	return Round(d)
}

// RoundFloat rounds x to two decimal places, half up.
// The float goes through its shortest decimal representation first, so 1.005
// rounds to 1.01 instead of falling below the boundary.
func RoundFloat(x float64) float64 {
	return Round(decimal.NewFromFloat(x)).InexactFloat64()
}

// NormalizeFloat is Normalize for float64 values.
func NormalizeFloat(x float64) float64 {
	return Normalize(decimal.NewFromFloat(x)).InexactFloat64()
}

// ToCents converts d to integer minor units after rounding.
func ToCents(d decimal.Decimal) int64 {
	return Round(d).Shift(Places).IntPart()
}

// FromCents converts integer minor units back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -Places)
}

// Parse reads a decimal amount from s and rounds it.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Round(d), nil
}

// Format renders d with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return Round(d).StringFixed(Places)
}

// Sum adds up values.
func Sum[M ~map[K]decimal.Decimal, K comparable](values M) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// IsZero reports whether d normalizes to zero.
func IsZero(d decimal.Decimal) bool {
	return Normalize(d).IsZero()
}
