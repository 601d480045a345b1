package spectators

import (
	"math"

	"go-hep.org/x/hep/fmom"

	"github.com/phil-mansfield/spectators/geom"
	"github.com/phil-mansfield/spectators/param"
	"github.com/phil-mansfield/spectators/pdg"
)

const (
	// NoLink marks a missing mother or daughter. Spectators are primaries
	// and never decay, so every link holds it.
	NoLink = -1
	// StatusFinal is the status code of a final state particle.
	StatusFinal = 1
)

// Beam crossing planes.
const (
	HorizontalPlane = 1
	VerticalPlane   = 2
)

// DefaultMomentum is the momentum per nucleon of a 5.36 TeV Pb-Pb beam, in
// GeV/c.
const DefaultMomentum = 5360.0 / 2

// Particle is a generated spectator.
type Particle struct {
	PdgCode int
	Status  int

	FirstMother, LastMother     int
	FirstDaughter, LastDaughter int

	// Lab frame four-momentum in GeV.
	P fmom.PxPyPzE
}

// HostParticle is the flat layout particles are handed to a host in.
type HostParticle struct {
	PdgCode       int     `yaml:"pdg"`
	Status        int     `yaml:"status"`
	FirstMother   int     `yaml:"first_mother"`
	LastMother    int     `yaml:"last_mother"`
	FirstDaughter int     `yaml:"first_daughter"`
	LastDaughter  int     `yaml:"last_daughter"`
	Px            float64 `yaml:"px"`
	Py            float64 `yaml:"py"`
	Pz            float64 `yaml:"pz"`
	E             float64 `yaml:"e"`
}

// Host returns a copy of p in the host layout.
func (p *Particle) Host() HostParticle {
	return HostParticle{
		PdgCode:       p.PdgCode,
		Status:        p.Status,
		FirstMother:   p.FirstMother,
		LastMother:    p.LastMother,
		FirstDaughter: p.FirstDaughter,
		LastDaughter:  p.LastDaughter,
		Px:            p.P.Px(),
		Py:            p.P.Py(),
		Pz:            p.P.Pz(),
		E:             p.P.E(),
	}
}

// EventHeader is the per-event record a host keeps next to its particles.
type EventHeader struct {
	Event     int    `yaml:"event"`
	Particles int    `yaml:"particles"`
	Generator string `yaml:"generator"`
}

// Config controls a Generator. It must be set before Init.
type Config struct {
	// Particle is the PDG code of the spectators, pdg.Neutron or pdg.Proton.
	Particle int
	// Particles is a fixed number of spectators per event. If negative, the
	// number is derived from the impact parameter.
	Particles int
	// ImpactParameter in fm. If not positive, it is sampled every event.
	ImpactParameter float64
	// Fluctuation smears the number of spectators with a Gaussian.
	Fluctuation bool

	// Momentum per nucleon in GeV/c.
	Momentum float64
	// PseudoRapidity of the beam. If zero, the direction cosines are used.
	PseudoRapidity   float64
	CosX, CosY, CosZ float64

	// Fermi turns on Fermi motion smearing.
	Fermi bool
	// Mass number and charge of the beam nucleus, used by the Fermi model.
	NucleusA, NucleusZ float64

	// Divergence is the angular spread of the beam in rad.
	Divergence float64
	// CrossingAngle in rad, in the plane given by CrossingPlane.
	CrossingAngle float64
	CrossingPlane int

	Calibration param.Calibration

	// Debug prints every generated particle from UpdateHeader.
	Debug bool
}

// DefaultConfig returns single-species neutron generation along the beam axis
// with impact parameters sampled from the default calibration.
func DefaultConfig() Config {
	return Config{
		Particle:        pdg.Neutron,
		Particles:       -1,
		ImpactParameter: -1,
		Momentum:        DefaultMomentum,
		CosZ:            1,
		NucleusA:        208,
		NucleusZ:        82,
		CrossingPlane:   VerticalPlane,
		Calibration:     param.DefaultCalibration(),
	}
}

// Direction returns the unit vector the spectators travel along. A non-zero
// pseudorapidity takes precedence over the direction cosines, which are
// normalized. If neither is set, the beam axis is used.
func (cfg *Config) Direction() geom.Vec {
	if cfg.PseudoRapidity != 0 {
		theta := 2 * math.Atan(math.Exp(-cfg.PseudoRapidity))
		st, ct := math.Sincos(theta)
		return geom.Vec{st, 0, ct}
	}

	dir := geom.Vec{cfg.CosX, cfg.CosY, cfg.CosZ}
	norm := dir.Norm()
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return geom.Vec{0, 0, 1}
	}
	return *dir.ScaleSelf(1 / norm)
}
