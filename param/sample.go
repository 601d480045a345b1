package param

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/spectators/math/interpolate"
	"github.com/phil-mansfield/spectators/math/rand"
)

// ImpactBins is the number of points the impact parameter CDF is tabulated at.
const ImpactBins = 1001

// ImpactSampler draws impact parameters.
type ImpactSampler interface {
	Sample() float64
}

var (
	_ ImpactSampler = &FixedImpactSampler{}
	_ ImpactSampler = &TableImpactSampler{}
)

// FixedImpactSampler always returns the same impact parameter.
type FixedImpactSampler struct {
	B float64
}

// Sample returns the fixed impact parameter without drawing random numbers.
func (s *FixedImpactSampler) Sample() float64 { return s.B }

// TableImpactSampler draws impact parameters from a Model's density by
// inverse transform sampling of its tabulated CDF.
type TableImpactSampler struct {
	gen  *rand.Generator
	bMax float64
	icdf *interpolate.Linear
}

// NewTableImpactSampler tabulates the CDF of m's impact parameter density
// over [0, BMax]. Random numbers are drawn from gen, which the sampler does
// not own. An error is returned if the density cannot be normalized, which
// happens when it underflows to zero or overflows across the whole domain.
func NewTableImpactSampler(
	m *Model, gen *rand.Generator,
) (*TableImpactSampler, error) {
	bs := make([]float64, ImpactBins)
	floats.Span(bs, 0, m.BMax())

	seg := make([]float64, ImpactBins)
	for i := 1; i < ImpactBins; i++ {
		db := bs[i] - bs[i-1]
		seg[i] = 0.5 * db * (m.ImpactDensity(bs[i-1]) + m.ImpactDensity(bs[i]))
	}
	cdf := floats.CumSum(make([]float64, ImpactBins), seg)

	total := cdf[ImpactBins-1]
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf(
			"Impact parameter density integrates to %g over [0, %g] and "+
				"cannot be normalized.", total, m.BMax(),
		)
	}
	floats.Scale(1/total, cdf)

	return &TableImpactSampler{
		gen: gen, bMax: m.BMax(), icdf: interpolate.NewInverseCDF(cdf, bs),
	}, nil
}

// Sample draws an impact parameter in [0, BMax].
func (s *TableImpactSampler) Sample() float64 {
	b := s.icdf.Eval(s.gen.Uniform(0, 1))
	return math.Min(math.Max(b, 0), s.bMax)
}

// MultiplicitySampler converts impact parameters into spectator counts.
type MultiplicitySampler struct {
	m           *Model
	gen         *rand.Generator
	fluctuation bool
	fixed       int
}

// NewMultiplicitySampler creates a sampler for m. If fluctuation is set, the
// count is smeared by a Gaussian of width MultiplicityWidth(b). If fixed is
// non-negative, every sample returns fixed.
func NewMultiplicitySampler(
	m *Model, gen *rand.Generator, fluctuation bool, fixed int,
) *MultiplicitySampler {
	return &MultiplicitySampler{m, gen, fluctuation, fixed}
}

// Fixed returns the fixed count and whether one was set. When it is set the
// impact parameter is irrelevant and need not be sampled.
func (s *MultiplicitySampler) Fixed() (int, bool) {
	return s.fixed, s.fixed >= 0
}

// Sample returns the number of spectators for impact parameter b. The result
// is never negative; zero is a valid count.
func (s *MultiplicitySampler) Sample(b float64) int {
	if s.fixed >= 0 {
		return s.fixed
	}

	mean := s.m.MeanMultiplicity(b)
	if !s.fluctuation {
		return int(math.Round(mean))
	}

	n := math.Round(s.gen.Gaussian(mean, s.m.MultiplicityWidth(b)))
	if n < 0 {
		return 0
	}
	return int(n)
}
