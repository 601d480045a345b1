/*package rand provides the seeded random source shared by every sampler in a
generation run. A single Generator is created and seeded by the driver and
handed to the samplers by reference, so a run is reproducible from its seed.
*/
package rand

import (
	"encoding/binary"
	mrand "math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

type GeneratorType int

const (
	PCG GeneratorType = iota
	ChaCha8
)

// The second PCG word is derived from the seed so that a single uint64 is
// enough to describe a run.
const pcgIncrement = 0xda3e39cb94b95bdb

// Generator is a seeded random number generator. It is not safe for
// concurrent use.
type Generator struct {
	gt   GeneratorType
	seed uint64
	rng  *mrand.Rand
}

// NewGenerator creates a generator of the given type seeded with seed.
func NewGenerator(gt GeneratorType, seed uint64) *Generator {
	gen := &Generator{gt: gt}
	gen.Reseed(seed)
	return gen
}

// NewTimeSeed creates a generator seeded from the wall clock.
func NewTimeSeed(gt GeneratorType) *Generator {
	return NewGenerator(gt, uint64(time.Now().UnixNano()))
}

// Reseed restarts the generator's stream from seed. Replaying a run means
// reseeding with the seed it was started with.
func (gen *Generator) Reseed(seed uint64) {
	gen.seed = seed

	switch gen.gt {
	case PCG:
		gen.rng = mrand.New(mrand.NewPCG(seed, seed^pcgIncrement))
	case ChaCha8:
		var key [32]byte
		for i := 0; i < 4; i++ {
			binary.LittleEndian.PutUint64(key[8*i:], seed+uint64(i))
		}
		gen.rng = mrand.New(mrand.NewChaCha8(key))
	default:
		panic("Unrecognized GeneratorType.")
	}
}

// Seed returns the seed the current stream was started from.
func (gen *Generator) Seed() uint64 { return gen.seed }

// Uniform returns a uniform random value in [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	return low + (high-low)*gen.rng.Float64()
}

// Gaussian returns a normally distributed value with mean mu and standard
// deviation sigma.
func (gen *Generator) Gaussian(mu, sigma float64) float64 {
	norm := distuv.Normal{Mu: mu, Sigma: sigma, Src: gen.rng}
	return norm.Rand()
}
