// Package polysolve solves polynomial equations of degree at most two given
// as text, such as "x^2 + 2x + 1 = 0".
//
// The pipeline has four stages:
//   - Normalize turns one side of an equation into a Mapping (exponent → Term).
//   - Reduce / ParseEquation subtract the right side from the left, giving P(x) = 0.
//   - Format renders a Mapping in the standard form "ax^2+bx^1+c=0".
//   - Solve classifies the reduced equation (quadratic, linear, identity,
//     contradiction) and computes its roots with the closed-form method.
//
// Roots are rendered exactly where that is cheap: integer square roots,
// quotients and sums fold to numbers, anything else keeps a symbolic form
// such as "(-1+i*sqrt(3))/2". Every Root also carries a float approximation.
//
// Solve returns a Result holding the numbered Steps of the derivation rather
// than printing them; WriteTrace renders a Result as text.
//
// Malformed input fails with errors that wrap ErrMalformedTerm,
// ErrMissingEquals, ErrTooManyEquals, ErrEmptySide, ErrMixedVariables or
// ErrUnsupportedDegree.
package polysolve
