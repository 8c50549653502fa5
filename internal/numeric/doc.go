// Package numeric holds the arithmetic behind the percent change calculator.
//
// It decides whether a field's text is an acceptable number, computes the
// percent change between two values and formats the result for display.
//
// # Accepted Numbers
//
// A text is accepted when it is a finite decimal literal:
//
//	[+|-] digits [. [digits]] [(e|E) [+|-] digits]
//	[+|-] . digits [(e|E) [+|-] digits]
//
// The empty string, hexadecimal floats, "inf", "nan" and literals that
// overflow a float64 are rejected.
//
// # Percent Change
//
// The result is a ratio, not scaled by 100:
//
//	(final - initial) / |initial|
//
// Division by zero follows IEEE 754, so an initial value of zero produces
// +Inf, -Inf or NaN. These values are formatted as-is.
package numeric
