/*package geom contains the vector and angle routines used to build particle
momenta: spherical angle composition, axis rotations and Lorentz boosts.

Angles follow the usual physics convention. Theta is the polar angle measured
from the +z (beam) axis and phi is the azimuth measured from +x towards +y.
*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector. (Duh!)
type Vec [3]float64

// Norm returns the length of the vector.
func (v *Vec) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Dot returns the dot product of two vectors.
func (v *Vec) Dot(u *Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// ScaleSelf multiplies v by k in place.
func (v *Vec) ScaleSelf(k float64) *Vec {
	v[0], v[1], v[2] = v[0]*k, v[1]*k, v[2]*k
	return v
}

// Angles returns the polar and azimuthal angles of v. phi is in [0, 2 pi) and
// is zero for vectors along the z axis (including the zero vector).
func (v *Vec) Angles() (theta, phi float64) {
	r := v.Norm()
	if r == 0 {
		return 0, 0
	}

	theta = math.Atan2(math.Hypot(v[0], v[1]), v[2])

	if v[0] == 0 && v[1] == 0 {
		return theta, 0
	}
	return theta, wrapPhi(math.Atan2(v[1], v[0]))
}

// Direction returns the unit vector pointing along (theta, phi).
func Direction(theta, phi float64) Vec {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return Vec{st * cp, st * sp, ct}
}

// wrapPhi maps an azimuth onto [0, 2 pi).
func wrapPhi(phi float64) float64 {
	phi = math.Mod(phi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	if phi >= 2*math.Pi {
		phi = 0
	}
	return phi
}
