/*mat contains routines for executing operations on small dense matrices.
These are used for the rotations applied to particle momenta, so everything
is written with 3x3 matrices in mind, although most routines work for any
compatible sizes.
*/
package mat

// Matrix represents a matrix of float64 values stored in row-major order.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// MultAt multiplies to matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	} else if out.Height != m1.Height || out.Width != m2.Width {
		panic("Output matrix has the wrong size.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < m1.Height; i++ {
		off := i * m1.Width
		for j := 0; j < m2.Width; j++ {
			outIdx := i*out.Width + j
			for k := 0; k < m1.Width; k++ {
				out.Vals[outIdx] += m1.Vals[off+k] * m2.Vals[k*m2.Width+j]
			}
		}
	}

	return out
}

// VecMultAt multiplies the column vector v by the matrix and writes the
// result to out. v and out may be the same slice.
func (m *Matrix) VecMultAt(v, out []float64) []float64 {
	if len(v) != m.Width || len(out) != m.Height {
		panic("Vector has the wrong length for multiplication.")
	}

	var buf [3]float64
	tmp := buf[:0]
	if m.Height > len(buf) {
		tmp = make([]float64, 0, m.Height)
	}
	for i := 0; i < m.Height; i++ {
		sum := 0.0
		for k := 0; k < m.Width; k++ {
			sum += m.Vals[i*m.Width+k] * v[k]
		}
		tmp = append(tmp, sum)
	}
	copy(out, tmp)
	return out
}

// Transpose returns the transpose of the matrix. For rotation matrices this is
// the inverse.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(make([]float64, len(m.Vals)), m.Height, m.Width)
	for i := 0; i < m.Height; i++ {
		for j := 0; j < m.Width; j++ {
			out.Vals[j*out.Width+i] = m.Vals[i*m.Width+j]
		}
	}
	return out
}
