package polysolve

import (
	"strconv"
	"strings"
)

// Format renders a mapping in standard form "...+bx^2+...=0": non-zero terms
// from the highest exponent down, coefficients of ±1 elided on variable
// terms, and no leading "+". An all-zero mapping renders as "0=0".
func Format(m Mapping) string {
	exps := m.Exponents()
	var b strings.Builder
	for i := len(exps) - 1; i >= 0; i-- {
		t := m[exps[i]]
		if t.Coefficient == 0 {
			continue
		}
		b.WriteString(formatTerm(t, m.Variable()))
	}
	lhs := strings.TrimPrefix(b.String(), "+")
	if lhs == "" {
		lhs = "0"
	}
	return lhs + "=0"
}

func formatTerm(t *Term, fallback string) string {
	sign := ""
	if t.Coefficient > 0 {
		sign = "+"
	}
	if t.Exponent == 0 {
		return sign + formatNumber(t.Coefficient)
	}

	variable := t.Variable
	if variable == "" {
		variable = fallback
	}
	if variable == "" {
		variable = DefaultVariable
	}

	var coef string
	switch t.Coefficient {
	case 1:
		coef = "+"
	case -1:
		coef = "-"
	default:
		coef = sign + formatNumber(t.Coefficient)
	}
	return coef + variable + "^" + strconv.Itoa(t.Exponent)
}
