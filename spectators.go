/*package spectators generates spectator nucleons for heavy-ion collision
simulations.

A Generator is configured, initialized once with Init, and then asked for one
event at a time with GenerateEvent. Each event samples an impact parameter,
converts it into a number of spectators and gives every spectator a momentum
built from the beam momentum, Fermi motion, beam divergence and the beam
crossing angle. ImportParticles copies the event into a host's particle
array.
*/
package spectators

import (
	"math"

	"go-hep.org/x/hep/fmom"

	"github.com/phil-mansfield/spectators/fermi"
	"github.com/phil-mansfield/spectators/geom"
	"github.com/phil-mansfield/spectators/math/mat"
	"github.com/phil-mansfield/spectators/math/rand"
	"github.com/phil-mansfield/spectators/param"
	"github.com/phil-mansfield/spectators/pdg"
)

// EventSource is the set of calls a host event loop makes on a generator.
type EventSource interface {
	Init() bool
	GenerateEvent()
	ImportParticles(dst *[]HostParticle, option string) int
	UpdateHeader(hd *EventHeader)
}

var _ EventSource = &Generator{}

// Generator produces events of spectator nucleons. It is not safe for
// concurrent use.
type Generator struct {
	cfg Config
	gen *rand.Generator

	ready    bool
	mass     float64
	dir      geom.Vec
	frame    *mat.Matrix
	crossPhi float64

	model  *param.Model
	impact param.ImpactSampler
	mult   *param.MultiplicitySampler
	fermi  *fermi.Model

	// Results of the last event.
	b         float64
	particles []Particle
}

// New creates a Generator which draws random numbers from gen. gen is shared,
// not owned: the caller seeds it once before the first event. If gen is nil a
// generator seeded with zero is used.
func New(cfg Config, gen *rand.Generator) *Generator {
	if gen == nil {
		gen = rand.NewGenerator(rand.PCG, 0)
	}
	return &Generator{cfg: cfg, gen: gen, b: -1}
}

// Config returns the generator's configuration. After Init this includes any
// defaults substituted for unsupported values.
func (g *Generator) Config() Config { return g.cfg }

// SetImpactSampler replaces the sampler impact parameters are drawn from. It
// must be called before Init and takes precedence over the configuration.
func (g *Generator) SetImpactSampler(s param.ImpactSampler) { g.impact = s }

// Init builds the parameterizations and Fermi tables. Unsupported settings are
// replaced by their defaults with a warning. Init returns false if the
// generator cannot be used, in which case GenerateEvent will panic.
func (g *Generator) Init() bool {
	g.ready = false

	if !pdg.IsNucleon(g.cfg.Particle) {
		log.Warnf(
			"Particle code %d is not supported. Generating %ss instead.",
			g.cfg.Particle, pdg.Name(pdg.Neutron),
		)
		g.cfg.Particle = pdg.Neutron
	}
	g.mass, _ = pdg.Mass(g.cfg.Particle)

	switch g.cfg.CrossingPlane {
	case HorizontalPlane:
		g.crossPhi = 0
	case VerticalPlane:
		g.crossPhi = math.Pi / 2
	default:
		log.Warnf(
			"Crossing plane %d is not supported. Using the vertical plane.",
			g.cfg.CrossingPlane,
		)
		g.cfg.CrossingPlane = VerticalPlane
		g.crossPhi = math.Pi / 2
	}

	g.dir = g.cfg.Direction()
	g.frame = geom.FrameMatrix(g.dir.Angles())

	if err := g.cfg.Calibration.Validate(); err != nil {
		log.Errorf("Invalid calibration: %s", err.Error())
		return false
	}
	g.model = param.NewModel(g.cfg.Calibration)

	if g.cfg.Particle == pdg.Proton && g.cfg.Particles < 0 {
		log.Debugf("Protons are sampled with the neutron parameterization.")
	}

	if g.impact == nil {
		if g.cfg.ImpactParameter > 0 {
			g.impact = &param.FixedImpactSampler{B: g.cfg.ImpactParameter}
		} else {
			impact, err := param.NewTableImpactSampler(g.model, g.gen)
			if err != nil {
				log.Errorf("Invalid calibration: %s", err.Error())
				return false
			}
			g.impact = impact
		}
	}
	g.mult = param.NewMultiplicitySampler(
		g.model, g.gen, g.cfg.Fluctuation, g.cfg.Particles,
	)

	var err error
	g.fermi, err = fermi.New(g.cfg.NucleusA, g.cfg.NucleusZ, g.gen)
	if err != nil {
		log.Errorf("Could not build Fermi tables: %s", err.Error())
		return false
	}

	g.particles = g.particles[:0]
	g.b = -1
	g.ready = true
	return true
}

// GenerateEvent replaces the particle buffer with a new event.
//
// GenerateEvent panics if Init has not succeeded.
func (g *Generator) GenerateEvent() {
	if !g.ready {
		panic("GenerateEvent() called on a Generator which has not been " +
			"successfully initialized with Init().")
	}

	n, fixed := g.mult.Fixed()
	if fixed {
		g.b = -1
	} else {
		g.b = g.impact.Sample()
		n = g.mult.Sample(g.b)
	}

	base := g.dir
	base.ScaleSelf(g.cfg.Momentum)
	eBase := math.Sqrt(base.Dot(&base) + g.mass*g.mass)
	beta, gamma := geom.BoostParams(base, eBase, g.mass)

	g.particles = g.particles[:0]
	for i := 0; i < n; i++ {
		p := base
		if g.cfg.Fermi {
			dp := g.fermi.SampleDeviation(g.cfg.Particle)
			p, _ = geom.Boost(dp, math.Sqrt(dp.Dot(&dp)+g.mass*g.mass), beta, gamma)
		}
		g.tilt(&p)

		e := math.Sqrt(p.Dot(&p) + g.mass*g.mass)
		g.particles = append(g.particles, Particle{
			PdgCode:       g.cfg.Particle,
			Status:        StatusFinal,
			FirstMother:   NoLink,
			LastMother:    NoLink,
			FirstDaughter: NoLink,
			LastDaughter:  NoLink,
			P:             fmom.NewPxPyPzE(p[0], p[1], p[2], e),
		})
	}
}

// tilt rotates p by the beam crossing angle combined with a random beam
// divergence. Both are measured from the beam direction, with the crossing
// planes spanned by it and the frame's x or y axis.
func (g *Generator) tilt(p *geom.Vec) {
	thetaDiv, phiDiv := 0.0, 0.0
	if g.cfg.Divergence > 0 {
		thetaDiv = g.cfg.Divergence * math.Abs(g.gen.Gaussian(0, 1))
		phiDiv = g.gen.Uniform(0, 2*math.Pi)
	}

	theta, phi := geom.Compose(g.cfg.CrossingAngle, g.crossPhi, thetaDiv, phiDiv)
	if theta == 0 {
		return
	}
	p.Rotate(geom.TiltMatrix(g.frame, theta, phi))
}

// ImpactParameter returns the impact parameter of the last event, or -1 if
// the event had a fixed number of particles.
func (g *Generator) ImpactParameter() float64 { return g.b }

// Particles returns a copy of the last event's particles.
func (g *Generator) Particles() []Particle {
	out := make([]Particle, len(g.particles))
	copy(out, g.particles)
	return out
}

// FermiTable returns the cumulative Fermi momentum table for a species. The
// generator must be initialized.
func (g *Generator) FermiTable(code int) fermi.Table {
	if g.fermi == nil {
		panic("FermiTable() called before Init().")
	}
	return g.fermi.Table(code)
}

// FermiMomenta returns the momentum (GeV/c) of every entry of the Fermi
// tables. The generator must be initialized.
func (g *Generator) FermiMomenta() fermi.Table {
	if g.fermi == nil {
		panic("FermiMomenta() called before Init().")
	}
	return g.fermi.Momenta()
}

// ImportParticles overwrites dst with copies of the last event's particles,
// in order, and returns how many were written. option is accepted for host
// compatibility and ignored.
func (g *Generator) ImportParticles(dst *[]HostParticle, option string) int {
	*dst = (*dst)[:0]
	for i := range g.particles {
		*dst = append(*dst, g.particles[i].Host())
	}
	return len(g.particles)
}

// UpdateHeader leaves the header untouched. It prints the last event when the
// generator is in debug mode.
func (g *Generator) UpdateHeader(hd *EventHeader) {
	logf := log.Debugf
	if g.cfg.Debug {
		logf = log.Infof
	}

	logf("--- Number of particles: %d ---", len(g.particles))
	for i := range g.particles {
		p := &g.particles[i]
		logf(
			"PdgCode: %d, FirstMother: %d, FirstDaughter: %d, LastDaughter: %d",
			p.PdgCode, p.FirstMother, p.FirstDaughter, p.LastDaughter,
		)
	}
}
