package numeric

import (
	"fmt"
	"math"
	"strconv"
)

// PercentChange returns (final - initial) / |initial|.
// A zero initial value yields +Inf, -Inf or NaN depending on the sign of the
// numerator.
func PercentChange(initial, final float64) float64 {
	return (final - initial) / math.Abs(initial)
}

// Format renders a float64 in its shortest decimal form without exponent.
// Non-finite values use Go's spellings: "+Inf", "-Inf" and "NaN".
func Format(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Compute parses both texts and returns the formatted percent change.
// The error identifies the first text that failed to parse.
func Compute(initialText, finalText string) (string, error) {
	initial, err := Parse(initialText)
	if err != nil {
		return "", fmt.Errorf("initial value: %w", err)
	}
	final, err := Parse(finalText)
	if err != nil {
		return "", fmt.Errorf("final value: %w", err)
	}
	return Format(PercentChange(initial, final)), nil
}
