package polysolve

import "sort"

// Term contributes Coefficient·Variable^Exponent to a polynomial.
type Term struct {
	Exponent    int     `json:"exponent"`
	Coefficient float64 `json:"coefficient"`
	Variable    string  `json:"variable,omitempty"`
}

// Mapping is the canonical exponent-indexed form of one side, or of a whole
// equation reduced to P(x) = 0. It holds at most one Term per exponent;
// missing exponents have coefficient zero.
type Mapping map[int]*Term

// add merges coefficient into the term at exponent, creating it if absent.
func (m Mapping) add(exponent int, coefficient float64, variable string) {
	t, ok := m[exponent]
	if !ok {
		t = &Term{Exponent: exponent}
		m[exponent] = t
	}
	t.Coefficient += coefficient
	if variable != "" {
		t.Variable = variable
	}
}

// Coefficient returns the coefficient at exponent, or 0 when no term exists.
func (m Mapping) Coefficient(exponent int) float64 {
	if t, ok := m[exponent]; ok {
		return t.Coefficient
	}
	return 0
}

// Exponents returns the populated exponents in ascending order.
func (m Mapping) Exponents() []int {
	exps := make([]int, 0, len(m))
	for e := range m {
		exps = append(exps, e)
	}
	sort.Ints(exps)
	return exps
}

// Degree returns the highest exponent with a non-zero coefficient, or 0.
func (m Mapping) Degree() int {
	deg := 0
	for e, t := range m {
		if t.Coefficient != 0 && e > deg {
			deg = e
		}
	}
	return deg
}

// Variable returns the variable name recorded on the mapping's terms, or ""
// for a mapping of constants.
func (m Mapping) Variable() string {
	for _, e := range m.Exponents() {
		if v := m[e].Variable; v != "" {
			return v
		}
	}
	return ""
}

// Terms returns copies of the mapping's terms, highest exponent first.
func (m Mapping) Terms() []Term {
	exps := m.Exponents()
	out := make([]Term, 0, len(exps))
	for i := len(exps) - 1; i >= 0; i-- {
		out = append(out, *m[exps[i]])
	}
	return out
}
