/*package param contains the fitted parameterizations which connect the
impact parameter of a collision to the number of spectator nucleons it
produces, and the samplers built on top of them.

All impact parameters are in fm.
*/
package param

import (
	"fmt"
	"math"
)

// Calibration holds the fitted coefficients of the three parameterizations.
// The coefficients are calibration data, not logic: they can be replaced
// wholesale (see io.ReadCalibration) without touching the samplers.
//
//	ImpactDensity(b)     = c0 * b / (1 + exp((b - c1) / c2))
//	MeanMultiplicity(b)  = c0 / (1 + exp((b - c1) / c2))
//	MultiplicityWidth(b) = c0 + c1*b + c2*b^2
type Calibration struct {
	BMax float64

	ImpactDensity     [3]float64
	MeanMultiplicity  [3]float64
	MultiplicityWidth [3]float64
}

// DefaultCalibration returns the neutron parameterization for Pb-Pb
// collisions at 5.36 TeV per nucleon pair. Protons use it too.
func DefaultCalibration() Calibration {
	return Calibration{
		BMax:              20,
		ImpactDensity:     [3]float64{1, 14.8, 0.55},
		MeanMultiplicity:  [3]float64{60, 12.5, 1.8},
		MultiplicityWidth: [3]float64{2.5, 0.55, -0.025},
	}
}

// Validate returns an error if the calibration cannot describe a physical
// distribution.
func (cal *Calibration) Validate() error {
	if cal.BMax <= 0 {
		return fmt.Errorf("Maximum impact parameter must be positive, but is %g.",
			cal.BMax)
	} else if cal.ImpactDensity[0] <= 0 {
		return fmt.Errorf("Impact parameter density normalization must be " +
			"positive, but is %g.", cal.ImpactDensity[0])
	} else if cal.ImpactDensity[2] <= 0 {
		return fmt.Errorf("Impact parameter density diffuseness must be " +
			"positive, but is %g.", cal.ImpactDensity[2])
	} else if cal.MeanMultiplicity[0] < 0 {
		return fmt.Errorf("Mean multiplicity amplitude must be non-negative, " +
			"but is %g.", cal.MeanMultiplicity[0])
	} else if cal.MeanMultiplicity[2] <= 0 {
		return fmt.Errorf("Mean multiplicity diffuseness must be positive, " +
			"but is %g.", cal.MeanMultiplicity[2])
	}

	for i, c := range cal.all() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("Calibration coefficient %d is %g.", i, c)
		}
	}
	return nil
}

func (cal *Calibration) all() []float64 {
	cs := []float64{cal.BMax}
	cs = append(cs, cal.ImpactDensity[:]...)
	cs = append(cs, cal.MeanMultiplicity[:]...)
	return append(cs, cal.MultiplicityWidth[:]...)
}

// Model evaluates a Calibration. It is immutable once created.
type Model struct {
	cal Calibration
}

// NewModel creates a Model from a calibration. Creating two models from the
// same calibration gives identical models.
func NewModel(cal Calibration) *Model {
	return &Model{cal: cal}
}

// Calibration returns the coefficients the model was built from.
func (m *Model) Calibration() Calibration { return m.cal }

// BMax returns the largest impact parameter in the model's domain.
func (m *Model) BMax() float64 { return m.cal.BMax }

// clamp moves b onto the closest point of [0, BMax].
func (m *Model) clamp(b float64) float64 {
	if b < 0 || math.IsNaN(b) {
		return 0
	} else if b > m.cal.BMax {
		return m.cal.BMax
	}
	return b
}

// ImpactDensity returns the (unnormalized) probability density of the impact
// parameter b. It is zero outside of [0, BMax].
func (m *Model) ImpactDensity(b float64) float64 {
	if b < 0 || b > m.cal.BMax || math.IsNaN(b) {
		return 0
	}
	c := &m.cal.ImpactDensity
	return c[0] * b / (1 + math.Exp((b-c[1])/c[2]))
}

// MeanMultiplicity returns the mean number of spectators at impact
// parameter b. b is clamped to the model's domain and the result is never
// negative.
func (m *Model) MeanMultiplicity(b float64) float64 {
	b = m.clamp(b)
	c := &m.cal.MeanMultiplicity
	return math.Max(0, c[0]/(1+math.Exp((b-c[1])/c[2])))
}

// MultiplicityWidth returns the Gaussian width of the number of spectators
// at impact parameter b. b is clamped to the model's domain and the result is
// never negative.
func (m *Model) MultiplicityWidth(b float64) float64 {
	b = m.clamp(b)
	c := &m.cal.MultiplicityWidth
	return math.Max(0, c[0]+c[1]*b+c[2]*b*b)
}
