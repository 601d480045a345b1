package interpolate

import (
	"fmt"
	"sort"
)

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a sequence of strictly increasing
// or strictly decreasing point, xs, which take on the values given by vals.
//
// Lookups will occur in O(log |xs|).
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(vals) = %d.", len(xs), len(vals),
		))
	}
	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

// NewInverseCDF creates an interpolator which maps cumulative probabilities
// in [0, 1] onto xs, for inverse transform sampling. Only the points where cdf
// strictly rises are kept, since flat stretches of a CDF have no inverse, and
// the last kept point is set to exactly one.
//
// NewInverseCDF panics if cdf never rises.
func NewInverseCDF(cdf, xs []float64) *Linear {
	if len(cdf) != len(xs) {
		panic(fmt.Sprintf(
			"len(cdf) = %d, but len(xs) = %d.", len(cdf), len(xs),
		))
	} else if len(cdf) == 0 {
		panic("Empty CDF cannot be inverted.")
	}

	us, vals := []float64{cdf[0]}, []float64{xs[0]}
	for i := 1; i < len(cdf); i++ {
		if cdf[i] > us[len(us)-1] {
			us, vals = append(us, cdf[i]), append(vals, xs[i])
		}
	}
	if len(us) < 2 {
		panic("CDF is flat and cannot be inverted.")
	}
	us[len(us)-1] = 1

	return NewLinear(us, vals)
}

// Eval returns the interpolated value at x.
//
// Eval panics if called on a values outside the supplied range on inputs.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.val(i1), lin.xs.val(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

//////////////
// searcher //
//////////////

// searcher finds the bin containing a point of a monotonic table.
type searcher struct {
	xs   []float64
	incr bool
	n    int
}

func (s *searcher) init(xs []float64) {
	if len(xs) < 2 {
		panic(fmt.Sprintf("Table of length %d cannot be interpolated.", len(xs)))
	}

	s.xs, s.n = xs, len(xs)
	s.incr = xs[1] > xs[0]
	for i := 0; i < len(xs)-1; i++ {
		if (s.incr && xs[i+1] <= xs[i]) || (!s.incr && xs[i+1] >= xs[i]) {
			panic(fmt.Sprintf(
				"Table is not strictly monotonic at index %d: %g, %g.",
				i, xs[i], xs[i+1],
			))
		}
	}
}

func (s *searcher) val(i int) float64 { return s.xs[i] }

// search returns the index of the lower edge of the bin containing x. The
// last point of the table belongs to the final bin.
func (s *searcher) search(x float64) int {
	lo, hi := s.val(0), s.val(s.n-1)
	if !s.incr {
		lo, hi = hi, lo
	}
	if x < lo || x > hi || x != x {
		panic(fmt.Sprintf("Point %g is outside the range [%g, %g].", x, lo, hi))
	}

	var i int
	if s.incr {
		i = sort.Search(s.n, func(j int) bool { return s.xs[j] > x }) - 1
	} else {
		i = sort.Search(s.n, func(j int) bool { return s.xs[j] < x }) - 1
	}

	if i < 0 {
		i = 0
	} else if i > s.n-2 {
		i = s.n - 2
	}
	return i
}
