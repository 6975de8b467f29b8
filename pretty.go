package polysolve

import (
	"math"
	"strconv"
)

// Value is one rendered quantity of a root: an exact number, or a symbolic
// expression kept when the number has no exact integer form.
type Value struct {
	num  float64
	expr string
}

// Number wraps f as an exact numeric Value.
func Number(f float64) Value { return Value{num: f} }

// IsSymbolic reports whether v retains a symbolic expression.
func (v Value) IsSymbolic() bool { return v.expr != "" }

// Float returns the numeric value. It is meaningless for symbolic values.
func (v Value) Float() float64 { return v.num }

func (v Value) String() string {
	if v.expr != "" {
		return v.expr
	}
	return formatNumber(v.num)
}

// MarshalText renders v the same way String does.
func (v Value) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// PrettySqrt returns √n as an integer when it is one, otherwise "sqrt(n)".
func PrettySqrt(n float64) Value {
	if r := math.Sqrt(n); isInt(r) {
		return Number(r)
	}
	return Value{expr: "sqrt(" + formatNumber(n) + ")"}
}

// PrettyDivide returns a/b as an integer when the quotient is one, otherwise
// the fraction "a/b".
func PrettyDivide(a, b Value) Value {
	if !a.IsSymbolic() && !b.IsSymbolic() {
		if q := a.num / b.num; isInt(q) {
			return Number(q)
		}
		if b.num < 0 {
			a, b = Number(-a.num), Number(-b.num)
		}
	}
	den := b.String()
	if !b.IsSymbolic() && b.num < 0 {
		den = "(" + den + ")"
	}
	return Value{expr: a.String() + "/" + den}
}

// PrettyAdd returns a+b as a number when both operands are numbers,
// otherwise the sum "(a+b)".
func PrettyAdd(a, b Value) Value {
	if !a.IsSymbolic() && !b.IsSymbolic() {
		if s := a.num + b.num; !math.IsNaN(s) {
			return Number(s)
		}
	}
	return Value{expr: "(" + a.String() + "+" + b.String() + ")"}
}

// PrettySub returns a-b as a number when both operands are numbers,
// otherwise the difference "(a-b)".
func PrettySub(a, b Value) Value {
	if !a.IsSymbolic() && !b.IsSymbolic() {
		if s := a.num - b.num; !math.IsNaN(s) {
			return Number(s)
		}
	}
	return Value{expr: "(" + a.String() + "-" + b.String() + ")"}
}

// Imaginary marks v as a multiple of the imaginary unit: "i*v".
func Imaginary(v Value) Value { return Value{expr: "i*" + v.String()} }

func isInt(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// formatNumber prints f as a plain decimal in shortest round-trip form,
// never in exponent notation, so the output parses back as a coefficient.
// -0 prints as "0".
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
