/*package fermi models the Fermi motion of nucleons bound in a nucleus with the
two-Gaussian momentum distribution of Ilinov et al.:

	f(p) = xk p^2 (exp(-p^2/2 s1^2)/s1^3 + alpha exp(-p^2/2 s2^2)/s2^3)

with s1 = 0.113 GeV/c, s2 = 0.250 GeV/c, alpha = 0.18 (A/12)^(1/3) and xk
chosen so f integrates to one. Each species' widths are scaled by its Fermi
momentum relative to symmetric nuclear matter, (2N/A)^(1/3) for neutrons and
(2Z/A)^(1/3) for protons, so neutrons in a neutron-rich nucleus move faster.
For Z = A/2 both species share one distribution. Generators which fill the
neutron table with a copy of the proton table are the special case of a
symmetric nucleus; use Z = A/2 to reproduce them.

Very asymmetric nuclei give one species a narrow distribution whose
cumulative table reaches one long before PMax. Sampling only uses the part
of the table which still rises.

The distribution is tabulated once into Bins cumulative probabilities over
[0, PMax] and sampled by inverse transform.
*/
package fermi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/spectators/geom"
	"github.com/phil-mansfield/spectators/math/interpolate"
	"github.com/phil-mansfield/spectators/math/rand"
	"github.com/phil-mansfield/spectators/pdg"
)

const (
	// Bins is the number of entries in each cumulative table.
	Bins = 201
	// Step is the momentum width of a table bin in GeV/c.
	Step = 0.005
	// PMax is the largest tabulated momentum in GeV/c.
	PMax = Step * (Bins - 1)

	Sigma1 = 0.113
	Sigma2 = 0.250
)

// Table is a cumulative probability table indexed by momentum bin.
type Table [Bins]float64

// Model holds the cumulative tables for protons and neutrons of one nucleus.
type Model struct {
	a, z float64
	gen  *rand.Generator

	ps               Table
	probp, probn     Table
	sampleP, sampleN *interpolate.Linear
}

// New builds the Fermi tables for a nucleus with mass number a and charge z.
// Random numbers are drawn from gen, which the model does not own.
func New(a, z float64, gen *rand.Generator) (*Model, error) {
	if a < 2 {
		return nil, fmt.Errorf("Mass number must be at least 2, but is %g.", a)
	} else if z <= 0 || z >= a {
		return nil, fmt.Errorf("Charge must be in (0, %g), but is %g.", a, z)
	}

	m := &Model{a: a, z: z, gen: gen}
	for i := range m.ps {
		m.ps[i] = float64(i) * Step
	}

	alpha := Alpha(a)
	if err := m.tabulate(&m.probp, alpha, math.Cbrt(2*z/a)); err != nil {
		return nil, fmt.Errorf("Proton %w", err)
	}
	if err := m.tabulate(&m.probn, alpha, math.Cbrt(2*(a-z)/a)); err != nil {
		return nil, fmt.Errorf("Neutron %w", err)
	}

	// Narrow distributions reach one well before PMax.
	m.sampleP = interpolate.NewInverseCDF(m.probp[:], m.ps[:])
	m.sampleN = interpolate.NewInverseCDF(m.probn[:], m.ps[:])

	return m, nil
}

// Alpha returns the relative weight of the wide Gaussian for a nucleus with
// mass number a.
func Alpha(a float64) float64 {
	return 0.18 * math.Cbrt(a/12)
}

// Density returns the normalized momentum density at p (GeV/c) for the given
// alpha and width scale.
func Density(p, alpha, scale float64) float64 {
	s1, s2 := Sigma1*scale, Sigma2*scale
	xk := 4 * math.Pi / ((1 + alpha) * math.Pow(2*math.Pi, 1.5))
	f1 := math.Exp(-p*p/(2*s1*s1)) / (s1 * s1 * s1)
	f2 := math.Exp(-p*p/(2*s2*s2)) / (s2 * s2 * s2)
	return xk * p * p * (f1 + alpha*f2)
}

// tabulate integrates the density with the trapezoid rule and normalizes the
// result so the final entry is exactly one.
func (m *Model) tabulate(out *Table, alpha, scale float64) error {
	seg := make([]float64, Bins)
	for i := 1; i < Bins; i++ {
		seg[i] = 0.5 * Step * (Density(m.ps[i-1], alpha, scale) +
			Density(m.ps[i], alpha, scale))
	}
	floats.CumSum(out[:], seg)

	total := out[Bins-1]
	if !(total > 0) || math.IsInf(total, 0) {
		return fmt.Errorf("Fermi distribution with width scale %g cannot be "+
			"tabulated in steps of %g GeV/c.", scale, Step)
	}
	floats.Scale(1/total, out[:])
	out[Bins-1] = 1
	return nil
}

// Table returns the cumulative table for the given species.
func (m *Model) Table(code int) Table {
	switch code {
	case pdg.Proton:
		return m.probp
	case pdg.Neutron:
		return m.probn
	}
	panic(fmt.Sprintf("Fermi tables only exist for nucleons, not %d.", code))
}

// Momenta returns the momentum at the upper edge of each table entry.
func (m *Model) Momenta() Table { return m.ps }

// SampleMomentum draws a Fermi momentum magnitude in GeV/c for the given
// species.
func (m *Model) SampleMomentum(code int) float64 {
	var icdf *interpolate.Linear
	switch code {
	case pdg.Proton:
		icdf = m.sampleP
	case pdg.Neutron:
		icdf = m.sampleN
	default:
		panic(fmt.Sprintf("Fermi tables only exist for nucleons, not %d.", code))
	}
	return icdf.Eval(m.gen.Uniform(0, 1))
}

// SampleDeviation draws the momentum (GeV/c) of a nucleon in the rest frame
// of its nucleus: a magnitude from the species' table and an isotropic
// direction.
func (m *Model) SampleDeviation(code int) geom.Vec {
	p := m.SampleMomentum(code)
	cost := 1 - 2*m.gen.Uniform(0, 1)
	phi := m.gen.Uniform(0, 2*math.Pi)

	sint := math.Sqrt(math.Max(0, 1-cost*cost))
	sp, cp := math.Sincos(phi)
	return geom.Vec{p * sint * cp, p * sint * sp, p * cost}
}
