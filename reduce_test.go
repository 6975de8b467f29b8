package polysolve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/polysolve"
)

// ============================================================
// Reduce / ParseEquation tests
// ============================================================

func TestReduce_SubtractsRightSide(t *testing.T) {
	m, err := polysolve.Reduce("x^2 + 1", "2x + 4")
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Coefficient(2))
	assert.Equal(t, -2.0, m.Coefficient(1))
	assert.Equal(t, -3.0, m.Coefficient(0))
	// the x term existed only on the right and keeps its variable
	assert.Equal(t, "x", m[1].Variable)
}

func TestReduce_IdenticalSidesCancel(t *testing.T) {
	m, err := polysolve.ParseEquation("x^2 = x^2")
	require.NoError(t, err)
	for _, e := range m.Exponents() {
		assert.Zero(t, m.Coefficient(e), "exponent %d", e)
	}
}

func TestReduce_ConstantLeftVariableRight(t *testing.T) {
	m, err := polysolve.ParseEquation("3 = x")
	require.NoError(t, err)
	assert.Equal(t, -1.0, m.Coefficient(1))
	assert.Equal(t, 3.0, m.Coefficient(0))
	assert.Equal(t, "x", m.Variable())
}

func TestParseEquation_Errors(t *testing.T) {
	cases := []struct {
		name     string
		equation string
		err      error
	}{
		{"NoEquals", "x^2 + 1", polysolve.ErrMissingEquals},
		{"TwoEquals", "x = 1 = 2", polysolve.ErrTooManyEquals},
		{"EmptyRight", "x^2 =", polysolve.ErrEmptySide},
		{"EmptyLeft", " = 4", polysolve.ErrEmptySide},
		{"MalformedRight", "x = 2x^", polysolve.ErrMalformedTerm},
		{"VariableAcrossSides", "x = y", polysolve.ErrMixedVariables},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := polysolve.ParseEquation(tc.equation)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseEquation(%q) error = %v; want %v", tc.equation, err, tc.err)
			}
		})
	}
}

func TestParseEquation_SideInError(t *testing.T) {
	_, err := polysolve.ParseEquation("x = 2x^")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "right side")
}
