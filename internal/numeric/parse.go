package numeric

import (
	"math"
	"regexp"
	"strconv"
)

// decimalPattern matches the decimal literal grammar accepted by Parse.
// strconv.ParseFloat alone is too permissive: it also takes hex floats,
// underscores after a base prefix, "inf" and "nan".
var decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Parse converts text into a finite float64.
// Returns a *ParseError when text is empty, is not a decimal literal, or
// does not fit in a float64.
func Parse(text string) (float64, error) {
	if text == "" {
		return 0, &ParseError{Kind: KindEmpty, Text: text}
	}
	if !decimalPattern.MatchString(text) {
		return 0, &ParseError{Kind: KindSyntax, Text: text}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// The pattern already guarantees syntax, so only range errors remain
		return 0, &ParseError{Kind: KindNotFinite, Text: text, Err: err}
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, &ParseError{Kind: KindNotFinite, Text: text}
	}

	return value, nil
}

// IsValid reports whether text parses as a finite decimal number
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}
