package geom

import (
	"math"
)

// BoostParams returns the velocity (in units of c) and Lorentz factor of a
// frame which moves with a particle of momentum p, energy e and mass m.
// Computing gamma as e/m rather than from beta keeps full precision for
// ultra-relativistic frames.
func BoostParams(p Vec, e, m float64) (beta Vec, gamma float64) {
	beta = Vec{p[0] / e, p[1] / e, p[2] / e}
	return beta, e / m
}

// Boost transforms the momentum p of a particle with energy e from a frame
// moving with velocity beta and Lorentz factor gamma into the lab frame. It
// returns the lab momentum and energy. A gamma of zero is computed from beta.
//
// Boost panics if |beta| >= 1.
func Boost(p Vec, e float64, beta Vec, gamma float64) (Vec, float64) {
	b2 := beta.Dot(&beta)
	if b2 == 0 {
		return p, e
	} else if b2 >= 1 {
		panic("Boost() given a superluminal velocity.")
	}

	if gamma == 0 {
		gamma = 1 / math.Sqrt(1-b2)
	}
	bp := beta.Dot(&p)
	k := (gamma-1)*bp/b2 + gamma*e

	out := Vec{p[0] + k*beta[0], p[1] + k*beta[1], p[2] + k*beta[2]}
	return out, gamma * (e + bp)
}
