package calculator

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperations(t *testing.T) {
	tests := []struct {
		op       Operation
		a, b     float64
		expected float64
	}{
		{OpAdd, 2, 3, 5},
		{OpAdd, -1.5, 0.25, -1.25},
		{OpSubtract, 2, 3, -1},
		{OpSubtract, 0.5, 0.25, 0.25},
		{OpMultiply, 2, 3, 6},
		{OpMultiply, -4, 0.5, -2},
		{OpDivide, 5, 2, 2.5},
		{OpDivide, 1, 3, 1.0 / 3},
		{OpDivide, 0, 7, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := tt.op.Apply(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, b := range []float64{0, math.Copysign(0, -1)} {
		_, err := Divide(42, b)
		require.Error(t, err)
		assert.Equal(t, DivisionByZero, KindOf(err))
		assert.Equal(t, "Division by zero is not allowed", err.Error())
		assert.True(t, errors.Is(err, ErrDivisionByZero))
	}
}

func TestDivideNearZeroIsNotZero(t *testing.T) {
	got, err := Divide(1, 1e-300)
	require.NoError(t, err)
	assert.Equal(t, 1e300, got)
}

func TestNonFiniteOperandsPropagate(t *testing.T) {
	got := Add(math.Inf(1), 1)
	assert.True(t, math.IsInf(got, 1))

	got = Subtract(math.Inf(1), math.Inf(1))
	assert.True(t, math.IsNaN(got))

	got, err := Divide(math.NaN(), 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestApplyUnknownOperation(t *testing.T) {
	_, err := Operation("modulo").Apply(1, 2)
	require.Error(t, err)
	assert.Equal(t, Unclassified, KindOf(err))
	assert.True(t, errors.Is(err, ErrUnknownOperation))
	assert.Contains(t, err.Error(), "modulo")
}
