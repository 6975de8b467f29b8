package polysolve

import (
	"fmt"
	"math"
	"strings"
)

// DefaultVariable labels roots of equations that name no variable.
const DefaultVariable = "x"

// Case classifies a reduced equation ax^2+bx+c=0.
type Case int

const (
	CaseQuadraticTwoReal Case = iota + 1 // a≠0, Δ>0
	CaseQuadraticDouble                  // a≠0, Δ=0
	CaseQuadraticComplex                 // a≠0, Δ<0
	CaseLinear                           // a=0, b≠0
	CaseIdentity                         // a=b=c=0
	CaseContradiction                    // a=b=0, c≠0
)

var caseNames = map[Case]string{
	CaseQuadraticTwoReal: "quadratic_two_real",
	CaseQuadraticDouble:  "quadratic_double",
	CaseQuadraticComplex: "quadratic_complex",
	CaseLinear:           "linear",
	CaseIdentity:         "identity",
	CaseContradiction:    "contradiction",
}

func (c Case) String() string {
	if s, ok := caseNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

// MarshalText encodes the case by name.
func (c Case) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Quadratic reports whether the case came from a non-zero x^2 coefficient.
func (c Case) Quadratic() bool {
	return c == CaseQuadraticTwoReal || c == CaseQuadraticDouble || c == CaseQuadraticComplex
}

// Step is one numbered entry of the solving trace.
type Step struct {
	Number  int      `json:"number"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Root is a solution rendered exactly, with its floating-point approximation.
type Root struct {
	Exact Value   `json:"exact"`
	Re    float64 `json:"re"`
	Im    float64 `json:"im,omitempty"`
}

// Coefficients holds a, b and c of ax^2+bx+c=0.
type Coefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Solution is the final answer of a solve.
type Solution struct {
	Case     Case   `json:"case"`
	Variable string `json:"variable"`
	Roots    []Root `json:"roots,omitempty"`
}

func (s Solution) String() string {
	switch s.Case {
	case CaseIdentity:
		return "infinite solutions"
	case CaseContradiction:
		return "no solutions"
	}
	if len(s.Roots) == 1 {
		return s.Variable + "=" + s.Roots[0].Exact.String()
	}
	parts := make([]string, len(s.Roots))
	for i, r := range s.Roots {
		parts[i] = fmt.Sprintf("%s%d=%s", s.Variable, i+1, r.Exact)
	}
	return strings.Join(parts, ", ")
}

// Result is everything a solve produced: the canonical form, the
// classification, the trace and the solution.
type Result struct {
	Equation     string       `json:"equation"`
	Canonical    string       `json:"canonical"`
	Mapping      Mapping      `json:"-"`
	Coefficients Coefficients `json:"coefficients"`
	Discriminant *float64     `json:"discriminant,omitempty"`
	Steps        []Step       `json:"steps"`
	Solution     Solution     `json:"solution"`
}

// Solve parses, reduces and solves an equation of degree at most two.
func Solve(equation string) (*Result, error) {
	m, err := ParseEquation(equation)
	if err != nil {
		return nil, err
	}
	if d := m.Degree(); d > 2 {
		return nil, fmt.Errorf("%w: found degree %d", ErrUnsupportedDegree, d)
	}
	return SolveMapping(equation, m), nil
}

// SolveMapping solves an already reduced mapping. The equation text is only
// used to decide whether the standard-form step is emitted.
func SolveMapping(equation string, m Mapping) *Result {
	variable := m.Variable()
	if variable == "" {
		variable = DefaultVariable
	}
	r := &Result{
		Equation:  equation,
		Canonical: Format(m),
		Mapping:   m,
		Coefficients: Coefficients{
			A: m.Coefficient(2),
			B: m.Coefficient(1),
			C: m.Coefficient(0),
		},
		Solution: Solution{Variable: variable},
	}

	if r.Canonical != stripSpace(equation) {
		r.addStep("convert to ax^2+bx+c=0", r.Canonical)
	}

	a, b, c := r.Coefficients.A, r.Coefficients.B, r.Coefficients.C
	switch {
	case a != 0:
		r.solveQuadratic(a, b, c)
	case b != 0:
		r.Solution.Case = CaseLinear
		r.addStep("a=0 and b!=0 => x=-c/b")
		x := PrettyDivide(Number(-c), Number(b))
		r.Solution.Roots = []Root{{Exact: x, Re: zeroSafe(-c / b)}}
	case c == 0:
		r.Solution.Case = CaseIdentity
		r.addStep("a=0 and b=0 and c=0 => infinite solutions")
	default:
		r.Solution.Case = CaseContradiction
		r.addStep("a=0 and b=0 and c!=0 => no solutions")
	}
	return r
}

func (r *Result) solveQuadratic(a, b, c float64) {
	delta := b*b - 4*a*c
	r.Discriminant = &delta
	deltaLine := "Delta: " + formatNumber(delta)

	minusB, twoA := Number(-b), Number(2*a)
	switch {
	case delta > 0:
		r.Solution.Case = CaseQuadraticTwoReal
		r.addStep("a!=0 => quadratic", deltaLine,
			"Delta>0 => x1=(-b+sqrt(delta))/2a, x2=(-b-sqrt(delta))/2a")
		sq := PrettySqrt(delta)
		fsq := math.Sqrt(delta)
		r.Solution.Roots = []Root{
			{Exact: PrettyDivide(PrettyAdd(minusB, sq), twoA), Re: zeroSafe((-b + fsq) / (2 * a))},
			{Exact: PrettyDivide(PrettySub(minusB, sq), twoA), Re: zeroSafe((-b - fsq) / (2 * a))},
		}
	case delta == 0:
		r.Solution.Case = CaseQuadraticDouble
		r.addStep("a!=0 => quadratic", deltaLine, "Delta=0 => x=-b/2a")
		r.Solution.Roots = []Root{{Exact: PrettyDivide(minusB, twoA), Re: zeroSafe(-b / (2 * a))}}
	default:
		r.Solution.Case = CaseQuadraticComplex
		r.addStep("a!=0 => quadratic", deltaLine,
			"Delta<0 => x1=(-b+i*sqrt(-delta))/2a, x2=(-b-i*sqrt(-delta))/2a")
		isq := Imaginary(PrettySqrt(-delta))
		re, im := zeroSafe(-b/(2*a)), math.Sqrt(-delta)/(2*a)
		r.Solution.Roots = []Root{
			{Exact: PrettyDivide(PrettyAdd(minusB, isq), twoA), Re: re, Im: im},
			{Exact: PrettyDivide(PrettySub(minusB, isq), twoA), Re: re, Im: -im},
		}
	}
}

func (r *Result) addStep(message string, details ...string) {
	r.Steps = append(r.Steps, Step{Number: len(r.Steps) + 1, Message: message, Details: details})
}

// zeroSafe folds negative zero into zero.
func zeroSafe(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}
