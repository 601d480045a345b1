package geom

import (
	"math"
)

// sinEps is the size of sin(theta) below which a direction is treated as lying
// on the z axis and its azimuth is dropped.
const sinEps = 1e-15

// Compose returns the direction reached by starting from the axis
// (theta1, phi1) and tilting away from it by theta2 at azimuth phi2, where phi2
// is measured in the frame carried along with the axis (see AxisMatrix).
//
// The result is exact for large angles, unlike a sum of the angles. theta is
// in [0, pi] and phi is in [0, 2 pi). phi is 0 whenever the result lies on the
// z axis.
func Compose(theta1, phi1, theta2, phi2 float64) (theta, phi float64) {
	st1, ct1 := math.Sincos(theta1)
	sp1, cp1 := math.Sincos(phi1)
	st2, ct2 := math.Sincos(theta2)
	sp2, cp2 := math.Sincos(phi2)

	cx := ct1*cp1*st2*cp2 + st1*cp1*ct2 - sp1*st2*sp2
	cy := ct1*sp1*st2*cp2 + st1*sp1*ct2 + cp1*st2*sp2
	cz := ct1*ct2 - st1*st2*cp2

	// Precise down to microradian tilts, unlike acos(cz).
	st := math.Hypot(cx, cy)
	theta = math.Atan2(st, cz)

	if st < sinEps {
		return theta, 0
	}
	return theta, wrapPhi(math.Atan2(cy, cx))
}
