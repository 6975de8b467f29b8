package polysolve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// sign directly followed by a variable: the elided coefficient is 1.
	implicitOneRe = regexp.MustCompile(`([+-])([a-zA-Z])`)
	// variable raised to the zero power, e.g. the "x^0" of "5x^0". The
	// fragment must end there, so "x^0.5" is left for the parser to reject.
	zeroPowerRe = regexp.MustCompile(`[a-zA-Z]+\^0+([+-]|$)`)
	// one signed fragment: [coefficient][variable][^exponent].
	fragmentRe = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+))?([a-zA-Z]+)?(?:\^(\d+))?$`)
)

// Normalize converts one side of an equation into its canonical mapping.
//
// The side is rewritten into a pure sum of signed fragments: whitespace is
// removed, "-x" becomes "-1x", "x^0" collapses to a constant and every "-"
// becomes "+-". Each fragment is then parsed and merged into the mapping,
// summing coefficients that share an exponent.
func Normalize(side string) (Mapping, error) {
	s := stripSpace(side)
	if s == "" {
		return nil, ErrEmptySide
	}

	s = implicitOneRe.ReplaceAllString("+"+s, "${1}1${2}")
	s = zeroPowerRe.ReplaceAllString(s, "${1}")
	s = strings.ReplaceAll(s, "-", "+-")

	m := Mapping{}
	variable := ""
	for _, frag := range strings.Split(s, "+") {
		if frag == "" {
			continue
		}
		t, err := parseFragment(frag)
		if err != nil {
			return nil, &ParseError{Side: side, Fragment: frag, Err: err}
		}
		if t.Variable != "" {
			if variable != "" && variable != t.Variable {
				return nil, fmt.Errorf("%w: %q and %q", ErrMixedVariables, variable, t.Variable)
			}
			variable = t.Variable
		}
		m.add(t.Exponent, t.Coefficient, t.Variable)
	}
	return m, nil
}

func parseFragment(frag string) (Term, error) {
	g := fragmentRe.FindStringSubmatch(frag)
	if g == nil {
		return Term{}, ErrMalformedTerm
	}
	coef, variable, exp := g[1], g[2], g[3]
	if coef == "" && variable == "" {
		return Term{}, ErrMalformedTerm
	}

	t := Term{Coefficient: 1, Variable: variable}
	if coef != "" {
		c, err := strconv.ParseFloat(coef, 64)
		if err != nil {
			return Term{}, fmt.Errorf("%w: %v", ErrMalformedTerm, err)
		}
		t.Coefficient = c
	}

	switch {
	case variable == "" && exp != "":
		return Term{}, ErrMalformedTerm
	case variable == "":
		t.Exponent = 0
	case exp == "":
		t.Exponent = 1
	default:
		e, err := strconv.Atoi(exp)
		if err != nil {
			return Term{}, fmt.Errorf("%w: %v", ErrMalformedTerm, err)
		}
		t.Exponent = e
	}
	return t, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
