package numeric

import (
	"errors"
	"fmt"
)

// ErrorKind represents the reason a text was rejected as a number
type ErrorKind int

const (
	// KindEmpty indicates the text was empty
	KindEmpty ErrorKind = iota
	// KindSyntax indicates the text is not a decimal literal
	KindSyntax
	// KindNotFinite indicates the literal overflows a float64
	KindNotFinite
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSyntax:
		return "invalid syntax"
	case KindNotFinite:
		return "not finite"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// ParseError describes a text that could not be accepted as a number
type ParseError struct {
	Kind ErrorKind // Why the text was rejected
	Text string    // The rejected text
	Err  error     // Underlying strconv error (if any)
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %q: %s (caused by: %v)", e.Text, e.Kind, e.Err)
	}
	return fmt.Sprintf("parse %q: %s", e.Text, e.Kind)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if an error (or anything it wraps) is a ParseError
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
