package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func value(x float64) float64 {
	return 2*x + 3
}

func TestLinear(t *testing.T) {
	xs := []float64{0, 0.5, 1.5, 2, 4}
	vals := make([]float64, len(xs))
	for i := range xs {
		vals[i] = value(xs[i])
	}
	lin := NewLinear(xs, vals)

	// points on the grid should work
	assert.InDelta(t, value(0.5), lin.Eval(0.5), 1e-12, "on grid")
	// points just off the grid should also work
	assert.InDelta(t, value(0.51), lin.Eval(0.51), 1e-12, "nearby")
	assert.InDelta(t, value(3.3), lin.Eval(3.3), 1e-12, "wide bin")
	// points on the edge of the grid should work
	assert.InDelta(t, value(0), lin.Eval(0), 1e-12, "lower edge")
	assert.InDelta(t, value(4), lin.Eval(4), 1e-12, "upper edge")
}

func TestLinearDecreasing(t *testing.T) {
	xs := []float64{3, 2, 1, 0}
	vals := []float64{value(3), value(2), value(1), value(0)}
	lin := NewLinear(xs, vals)

	table := []float64{0, 0.25, 1, 1.75, 2.5, 3}
	for i, x := range table {
		if got := lin.Eval(x); got < value(x)-1e-12 || got > value(x)+1e-12 {
			t.Errorf("%d) Eval(%g) = %g instead of %g", i+1, x, got, value(x))
		}
	}
}

func TestInverseCDF(t *testing.T) {
	// Flat stretches at both ends and in the middle are dropped.
	cdf := []float64{0, 0, 0.25, 0.5, 0.5, 0.75, 1, 1}
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	inv := NewInverseCDF(cdf, xs)

	table := []struct{ u, x float64 }{
		{0, 0}, {0.125, 1}, {0.25, 2}, {0.5, 3}, {0.625, 4}, {1, 6},
	}
	for i, test := range table {
		if got := inv.Eval(test.u); got < test.x-1e-12 || got > test.x+1e-12 {
			t.Errorf("%d) Eval(%g) = %g instead of %g", i+1, test.u, got, test.x)
		}
	}

	assert.Panics(t, func() { NewInverseCDF([]float64{1, 1, 1}, []float64{0, 1, 2}) })
	assert.Panics(t, func() { NewInverseCDF([]float64{0, 1}, []float64{0}) })
	assert.Panics(t, func() { NewInverseCDF(nil, nil) })

	// A final value which rounds below one is stretched onto it.
	inv = NewInverseCDF([]float64{0, 0.5, 0.9999999999999999}, []float64{0, 1, 2})
	assert.Equal(t, 2.0, inv.Eval(1))
}

func TestLinearPanics(t *testing.T) {
	assert.Panics(t, func() { NewLinear([]float64{0, 1, 1}, []float64{0, 1, 2}) })
	assert.Panics(t, func() { NewLinear([]float64{0, 1}, []float64{0}) })

	lin := NewLinear([]float64{0, 1}, []float64{0, 1})
	assert.Panics(t, func() { lin.Eval(1.5) })
	assert.Panics(t, func() { lin.Eval(-0.1) })
}
