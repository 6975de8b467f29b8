package polysolve

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingEquals indicates the equation has no "=" separator.
	ErrMissingEquals = errors.New("polysolve: equation must contain \"=\"")
	// ErrTooManyEquals indicates the equation has more than one "=" separator.
	ErrTooManyEquals = errors.New("polysolve: equation must contain exactly one \"=\"")
	// ErrEmptySide indicates one side of the equation holds no terms.
	ErrEmptySide = errors.New("polysolve: equation side is empty")
	// ErrMalformedTerm indicates a fragment that is not [coefficient][variable][^exponent].
	ErrMalformedTerm = errors.New("polysolve: malformed term")
	// ErrMixedVariables indicates terms using more than one variable name.
	ErrMixedVariables = errors.New("polysolve: equation mixes variable names")
	// ErrUnsupportedDegree indicates a non-zero term above the second power.
	ErrUnsupportedDegree = errors.New("polysolve: only polynomials of degree at most 2 are supported")
)

// ParseError describes a fragment of one equation side that could not be parsed.
type ParseError struct {
	Side     string // raw side text as given
	Fragment string // offending signed fragment after normalization
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q in %q", e.Err, e.Fragment, e.Side)
}

func (e *ParseError) Unwrap() error { return e.Err }
