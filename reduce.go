package polysolve

import (
	"fmt"
	"strings"
)

// Reduce returns the canonical mapping of left − right, i.e. the equation
// left = right rewritten as P(x) = 0.
func Reduce(left, right string) (Mapping, error) {
	acc, err := Normalize(left)
	if err != nil {
		return nil, fmt.Errorf("left side: %w", err)
	}
	rhs, err := Normalize(right)
	if err != nil {
		return nil, fmt.Errorf("right side: %w", err)
	}

	lv, rv := acc.Variable(), rhs.Variable()
	if lv != "" && rv != "" && lv != rv {
		return nil, fmt.Errorf("%w: %q and %q", ErrMixedVariables, lv, rv)
	}

	for _, e := range rhs.Exponents() {
		t := rhs[e]
		acc.add(e, -t.Coefficient, t.Variable)
	}
	return acc, nil
}

// ParseEquation splits "left=right" and reduces it. Exactly one "=" is required.
func ParseEquation(equation string) (Mapping, error) {
	sides := strings.Split(equation, "=")
	switch {
	case len(sides) < 2:
		return nil, ErrMissingEquals
	case len(sides) > 2:
		return nil, fmt.Errorf("%w: found %d", ErrTooManyEquals, len(sides)-1)
	}
	return Reduce(sides[0], sides[1])
}
