// Package money converts between the stored integer cents and the decimal
// dollars people type and read.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Dollars is the display value of cents, e.g. 1050 -> 10.5.
func Dollars(cents int64) float64 {
	return float64(cents) / 100
}

// Format renders cents with two decimals, e.g. 999 -> "9.99".
func Format(cents int64) string {
	return strconv.FormatFloat(Dollars(cents), 'f', 2, 64)
}

// ParseDollars turns "9.99" or "$9.99" into 999 using round(dollars*100).
func ParseDollars(input string) (int64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "$")
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	return int64(math.Round(f * 100)), nil
}
