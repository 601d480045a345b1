package geom

import (
	"math"

	"github.com/phil-mansfield/spectators/math/mat"
)

// AxisMatrix creates the rotation matrix which carries the z axis onto the
// direction (theta, phi). The columns are the rotated x, y and z axes:
//
//	x' = (cos theta cos phi, cos theta sin phi, -sin theta)
//	y' = (-sin phi, cos phi, 0)
//	z' = (sin theta cos phi, sin theta sin phi, cos theta)
//
// This is the frame Compose measures its second angle in, so
// AxisMatrix(theta1, phi1) applied to Direction(theta2, phi2) points along
// Compose(theta1, phi1, theta2, phi2).
func AxisMatrix(theta, phi float64) *mat.Matrix {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	A := []float64{
		ct * cp, -sp, st * cp,
		ct * sp, cp, st * sp,
		-st, 0, ct,
	}

	return mat.NewMatrix(A, 3, 3)
}

// FrameMatrix creates the rotation which carries the z axis onto the direction
// (theta, phi) along the great circle between them. Unlike AxisMatrix, it
// does not spin vectors around the z axis: for small theta the rotated x and
// y axes stay close to x and y.
func FrameMatrix(theta, phi float64) *mat.Matrix {
	return AxisMatrix(theta, phi).Mult(AxisMatrix(0, -phi))
}

// TiltMatrix creates the rotation which tilts the z axis of frame by theta at
// azimuth phi, with both angles measured in frame. frame must be a rotation.
func TiltMatrix(frame *mat.Matrix, theta, phi float64) *mat.Matrix {
	return frame.Mult(FrameMatrix(theta, phi)).Mult(frame.Transpose())
}

// Rotate rotates a vector by the given rotation matrix.
func (v *Vec) Rotate(m *mat.Matrix) {
	m.VecMultAt(v[:], v[:])
}
