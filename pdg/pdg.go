/*package pdg lists the particle species the generator knows about, by their
Particle Data Group Monte Carlo codes.
*/
package pdg

import (
	"fmt"
)

const (
	Neutron = 2112
	Proton  = 2212
)

// Masses in GeV/c^2 (PDG 2022).
const (
	NeutronMass = 0.93956542052
	ProtonMass  = 0.93827208816
)

// Mass returns the rest mass of the particle with the given code.
func Mass(code int) (float64, error) {
	switch code {
	case Neutron:
		return NeutronMass, nil
	case Proton:
		return ProtonMass, nil
	}
	return 0, fmt.Errorf("Particle code %d is not a nucleon.", code)
}

// IsNucleon returns true if code is one of the supported spectator species.
func IsNucleon(code int) bool {
	return code == Neutron || code == Proton
}

// Name returns a human readable name for the code.
func Name(code int) string {
	switch code {
	case Neutron:
		return "neutron"
	case Proton:
		return "proton"
	}
	return fmt.Sprintf("pdg%d", code)
}
