package polysolve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/polysolve"
)

// ============================================================
// Pretty-printing tests
// ============================================================

func TestPrettySqrt(t *testing.T) {
	four := polysolve.PrettySqrt(4)
	assert.False(t, four.IsSymbolic())
	assert.Equal(t, "2", four.String())
	assert.Equal(t, 2.0, four.Float())

	three := polysolve.PrettySqrt(3)
	assert.True(t, three.IsSymbolic())
	assert.Equal(t, "sqrt(3)", three.String())

	assert.Equal(t, "0", polysolve.PrettySqrt(0).String())
	assert.Equal(t, "sqrt(2.25)", polysolve.PrettySqrt(2.25).String())
}

func TestPrettyDivide(t *testing.T) {
	n := polysolve.Number
	cases := []struct {
		name string
		got  polysolve.Value
		want string
	}{
		{"Exact", polysolve.PrettyDivide(n(4), n(2)), "2"},
		{"NegativeExact", polysolve.PrettyDivide(n(-6), n(3)), "-2"},
		{"Fraction", polysolve.PrettyDivide(n(1), n(3)), "1/3"},
		{"NegativeDenominator", polysolve.PrettyDivide(n(3), n(-2)), "-3/2"},
		{"BothNegative", polysolve.PrettyDivide(n(-1), n(-2)), "1/2"},
		{"SymbolicNumerator", polysolve.PrettyDivide(polysolve.PrettyAdd(n(1), polysolve.PrettySqrt(2)), n(2)), "(1+sqrt(2))/2"},
		{"SymbolicOverNegative", polysolve.PrettyDivide(polysolve.PrettyAdd(n(1), polysolve.PrettySqrt(2)), n(-2)), "(1+sqrt(2))/(-2)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.String())
		})
	}
}

func TestNumber_NoExponentNotation(t *testing.T) {
	n := polysolve.Number
	assert.Equal(t, "0.0000001", n(1e-7).String())
	assert.Equal(t, "1000000000000000000000", n(1e21).String())
	assert.Equal(t, "-0.5", n(-0.5).String())
	assert.Equal(t, "0", n(math.Copysign(0, -1)).String())
	assert.Equal(t, "1/1000000000000000000000", polysolve.PrettyDivide(n(1), n(1e21)).String())
}

func TestPrettyAddSub(t *testing.T) {
	n := polysolve.Number
	assert.Equal(t, "3", polysolve.PrettyAdd(n(1), n(2)).String())
	assert.False(t, polysolve.PrettyAdd(n(1), n(2)).IsSymbolic())
	assert.Equal(t, "-1", polysolve.PrettySub(n(1), n(2)).String())
	assert.Equal(t, "(-1+sqrt(5))", polysolve.PrettyAdd(n(-1), polysolve.PrettySqrt(5)).String())
	assert.Equal(t, "(3-sqrt(2))", polysolve.PrettySub(n(3), polysolve.PrettySqrt(2)).String())
}

func TestImaginary(t *testing.T) {
	assert.Equal(t, "i*sqrt(3)", polysolve.Imaginary(polysolve.PrettySqrt(3)).String())
	assert.Equal(t, "i*2", polysolve.Imaginary(polysolve.PrettySqrt(4)).String())
	assert.True(t, polysolve.Imaginary(polysolve.Number(1)).IsSymbolic())
}
