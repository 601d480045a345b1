/*package io reads generator configuration and calibration files and writes
generated events.
*/
package io

import (
	"fmt"

	"github.com/phil-mansfield/spectators"
	"github.com/phil-mansfield/spectators/math/rand"
	"github.com/phil-mansfield/spectators/param"
)

const (
	ExampleSpectatorsFile = `[Spectators]

#######################
# Required Parameters #
#######################

# Number of events to generate.
Events = 1000
# File the YAML event stream is written to.
Output = path/to/events.yaml

#######################
# Optional Parameters #
#######################

# PDG code of the spectators: 2112 for neutrons and 2212 for protons. Other
# codes are replaced by neutrons. Default is 2112.
# Particle = 2112

# Fixed number of spectators in every event. If negative, the number is
# derived from the sampled impact parameter. Default is -1.
# Particles = -1

# Impact parameter in fm. If not positive, it is sampled every event from the
# calibrated distribution. Default is -1.
# ImpactParameter = -1

# Smears the number of spectators with a Gaussian of the calibrated width.
# Fluctuation = false

# Momentum per nucleon in GeV/c. Default is 2680 (5.36 TeV Pb-Pb).
# Momentum = 2680

# Beam direction. A non-zero PseudoRapidity takes precedence over the
# direction cosines, which are normalized before use. Default is +z.
# PseudoRapidity = 0
# CosX = 0
# CosY = 0
# CosZ = 1

# Fermi motion smearing, computed for a nucleus with mass number NucleusA and
# charge NucleusZ. Default nucleus is lead.
# Fermi = false
# NucleusA = 208
# NucleusZ = 82

# Beam divergence and crossing angle in rad. CrossingPlane is 1 for the
# horizontal plane and 2 for the vertical plane. Default plane is 2.
# Divergence = 0
# CrossingAngle = 0
# CrossingPlane = 2

# Calibration is a whitespace separated table of coefficients with three
# columns and three rows: the impact parameter density, the mean
# multiplicity and the multiplicity width. BMax is the largest impact
# parameter in fm. The default calibration is for Pb-Pb at 5.36 TeV.
# Calibration = path/to/calibration.txt
# BMax = 20

# Random seed. If negative, the seed is taken from the clock. Default is 0.
# Seed = 0

# Random number algorithm, either PCG or ChaCha8. Default is PCG.
# Source = PCG

# Prints every generated particle to the log.
# Debug = false

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleSingleNeutronFile = `[Spectators]
# One 2680 GeV/c neutron per event along the beam axis, with a 32 murad beam
# divergence.
Events = 1000
Output = path/to/events.yaml

Particle = 2112
Particles = 1
Momentum = 2680
Divergence = 3.2e-5`

	ExampleSingleProtonFile = `[Spectators]
# One 2680 GeV/c proton per event along the beam axis, with a 32 murad beam
# divergence.
Events = 1000
Output = path/to/events.yaml

Particle = 2212
Particles = 1
Momentum = 2680
Divergence = 3.2e-5`

	ExampleNeutronsFile = `[Spectators]
# Neutron spectators of minimum bias Pb-Pb collisions at 5.36 TeV. Set
# ImpactParameter to fix b and Fluctuation to smear the neutron count.
Events = 1000
Output = path/to/events.yaml

Particle = 2112
Particles = -1
ImpactParameter = -1
Momentum = 2680
Divergence = 3.2e-5
# Fluctuation = true`

	ExampleProtonsFile = `[Spectators]
# Proton spectators of minimum bias Pb-Pb collisions at 5.36 TeV. Protons use
# the neutron calibration.
Events = 1000
Output = path/to/events.yaml

Particle = 2212
Particles = -1
ImpactParameter = -1
Momentum = 2680
Divergence = 3.2e-5
# Fluctuation = true`
)

// ExampleFiles maps the names accepted by -ExampleConfig to example files.
var ExampleFiles = map[string]string{
	"Spectators":    ExampleSpectatorsFile,
	"SingleNeutron": ExampleSingleNeutronFile,
	"SingleProton":  ExampleSingleProtonFile,
	"Neutrons":      ExampleNeutronsFile,
	"Protons":       ExampleProtonsFile,
}

type SharedConfig struct {
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type SpectatorsConfig struct {
	SharedConfig

	// Required
	Events int
	Output string

	// Optional
	Particle, Particles int
	ImpactParameter     float64
	Fluctuation         bool

	Momentum, PseudoRapidity float64
	CosX, CosY, CosZ         float64

	Fermi              bool
	NucleusA, NucleusZ float64

	Divergence, CrossingAngle float64
	CrossingPlane             int

	Calibration string
	BMax        float64

	Seed   int64
	Source string
	Debug  bool
}

type SpectatorsWrapper struct {
	Spectators SpectatorsConfig
}

func DefaultSpectatorsWrapper() *SpectatorsWrapper {
	def := spectators.DefaultConfig()

	con := SpectatorsConfig{}
	con.Particle = def.Particle
	con.Particles = def.Particles
	con.ImpactParameter = def.ImpactParameter
	con.Momentum = def.Momentum
	con.CosX, con.CosY, con.CosZ = def.CosX, def.CosY, def.CosZ
	con.NucleusA, con.NucleusZ = def.NucleusA, def.NucleusZ
	con.CrossingPlane = def.CrossingPlane
	con.BMax = def.Calibration.BMax
	con.Source = "PCG"
	return &SpectatorsWrapper{con}
}

func (con *SpectatorsConfig) ValidEvents() bool {
	return con.Events > 0
}
func (con *SpectatorsConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SpectatorsConfig) ValidMomentum() bool {
	return con.Momentum > 0
}
func (con *SpectatorsConfig) ValidNucleus() bool {
	return con.NucleusA >= 2 && con.NucleusZ > 0 && con.NucleusZ < con.NucleusA
}
func (con *SpectatorsConfig) ValidDivergence() bool {
	return con.Divergence >= 0
}
func (con *SpectatorsConfig) ValidBMax() bool {
	return con.BMax > 0
}
func (con *SpectatorsConfig) ValidCalibration() bool {
	return con.Calibration != ""
}
func (con *SpectatorsConfig) ValidSeed() bool {
	return con.Seed >= 0
}
func (con *SpectatorsConfig) ValidSource() bool {
	_, ok := randomSources[con.Source]
	return ok
}

var randomSources = map[string]rand.GeneratorType{
	"PCG":     rand.PCG,
	"ChaCha8": rand.ChaCha8,
}

// RandomSource returns the random number algorithm named by Source.
func (con *SpectatorsConfig) RandomSource() (rand.GeneratorType, error) {
	gt, ok := randomSources[con.Source]
	if !ok {
		return 0, fmt.Errorf("Source '%s' is not PCG or ChaCha8.", con.Source)
	}
	return gt, nil
}

// GeneratorConfig converts the file's parameters into a generator
// configuration, reading the calibration file if one was given. Unsupported
// species and crossing planes are passed through so that the generator can
// substitute its defaults.
func (con *SpectatorsConfig) GeneratorConfig() (spectators.Config, error) {
	cfg := spectators.DefaultConfig()

	if !con.ValidMomentum() {
		return cfg, fmt.Errorf(
			"Need to specify a positive Momentum, but it is %g.", con.Momentum,
		)
	} else if !con.ValidNucleus() {
		return cfg, fmt.Errorf(
			"NucleusZ must be in range (0, NucleusA) with NucleusA >= 2, but "+
				"they are %g and %g.", con.NucleusZ, con.NucleusA,
		)
	} else if !con.ValidDivergence() {
		return cfg, fmt.Errorf(
			"Divergence cannot be negative, but is %g.", con.Divergence,
		)
	} else if !con.ValidBMax() {
		return cfg, fmt.Errorf(
			"Need to specify a positive BMax, but it is %g.", con.BMax,
		)
	}

	cfg.Particle = con.Particle
	cfg.Particles = con.Particles
	cfg.ImpactParameter = con.ImpactParameter
	cfg.Fluctuation = con.Fluctuation

	cfg.Momentum = con.Momentum
	cfg.PseudoRapidity = con.PseudoRapidity
	cfg.CosX, cfg.CosY, cfg.CosZ = con.CosX, con.CosY, con.CosZ

	cfg.Fermi = con.Fermi
	cfg.NucleusA, cfg.NucleusZ = con.NucleusA, con.NucleusZ

	cfg.Divergence = con.Divergence
	cfg.CrossingAngle = con.CrossingAngle
	cfg.CrossingPlane = con.CrossingPlane
	cfg.Debug = con.Debug

	if con.ValidCalibration() {
		cal, err := ReadCalibration(con.Calibration, con.BMax)
		if err != nil {
			return cfg, err
		}
		cfg.Calibration = cal
	} else {
		cfg.Calibration = param.DefaultCalibration()
		cfg.Calibration.BMax = con.BMax
	}

	return cfg, nil
}
