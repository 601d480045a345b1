package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMult(t *testing.T) {
	m1 := NewMatrix([]float64{
		1, 3, 5,
		2, 4, 7,
		1, 1, 0,
	}, 3, 3)

	id := NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, 3, 3)
	assert.Equal(t, m1.Vals, m1.Mult(id).Vals)
	assert.Equal(t, m1.Vals, id.Mult(m1).Vals)

	out := NewMatrix(make([]float64, 9), 3, 3)
	assert.Panics(t, func() { m1.MultAt(NewMatrix([]float64{1, 0, 2}, 1, 3), out) })

	m2 := NewMatrix([]float64{1, 0, 2}, 1, 3)
	assert.Equal(t, []float64{11, 16, 1}, m1.Mult(m2).Vals)
}

func TestVecMultAt(t *testing.T) {
	m := NewMatrix([]float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}, 3, 3)

	v := []float64{1, 2, 3}
	m.VecMultAt(v, v)
	assert.Equal(t, []float64{-2, 1, 3}, v)
}

func TestTranspose(t *testing.T) {
	m := NewMatrix([]float64{
		1, 3, 5,
		2, 4, 7,
		1, 1, 0,
	}, 3, 3)

	assert.Equal(t, []float64{1, 2, 1, 3, 4, 1, 5, 7, 0}, m.Transpose().Vals)
	assert.Equal(t, m.Vals, m.Transpose().Transpose().Vals)

	col := NewMatrix([]float64{1, 2, 3}, 1, 3)
	assert.Equal(t, 3, col.Transpose().Width)
	assert.Equal(t, 1, col.Transpose().Height)
}

func TestNewMatrixPanics(t *testing.T) {
	assert.Panics(t, func() { NewMatrix([]float64{1, 2, 3}, 2, 2) })
	assert.Panics(t, func() { NewMatrix(nil, 0, 1) })
}
