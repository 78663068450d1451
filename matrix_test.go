package needlework

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMatrixInDelta(t *testing.T, expected, actual Matrix, delta float64) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "cell %d", i)
	}
}

func TestMatrix_Identity(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	assert.True(m.IsIdentity())

	for _, pt := range [][2]float64{{0, 0}, {1.5, -2.25}, {-1e6, 3e5}, {123.456, 789}} {
		x, y := m.TransformPoint(pt[0], pt[1])
		assert.Equal(pt[0], x)
		assert.Equal(pt[1], y)
	}

	m.PostTranslate(1, 0)
	assert.False(m.IsIdentity())
	m.Reset()
	assert.True(m.IsIdentity())
}

func TestMatrix_Translate(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	m.PostTranslate(10, -5)
	x, y := m.TransformPoint(1, 1)
	assert.Equal(11.0, x)
	assert.Equal(-4.0, y)
}

func TestMatrix_ScaleAboutPivot(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	m.PostScale(2, 3, 10, 10)

	x, y := m.TransformPoint(10, 10)
	assert.InDelta(10.0, x, 1e-9)
	assert.InDelta(10.0, y, 1e-9)

	x, y = m.TransformPoint(11, 11)
	assert.InDelta(12.0, x, 1e-9)
	assert.InDelta(13.0, y, 1e-9)
}

func TestMatrix_RotateAboutPivot(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	m.PostRotate(90, 0, 0)
	x, y := m.TransformPoint(1, 0)
	assert.InDelta(0.0, x, 1e-9)
	assert.InDelta(1.0, y, 1e-9)

	m = NewMatrix()
	m.PostRotate(180, 5, 5)
	x, y = m.TransformPoint(5, 5)
	assert.InDelta(5.0, x, 1e-9)
	assert.InDelta(5.0, y, 1e-9)

	x, y = m.TransformPoint(6, 5)
	assert.InDelta(4.0, x, 1e-9)
	assert.InDelta(5.0, y, 1e-9)
}

func TestMatrix_Inverse(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	m.PostScale(2, 0.5, 3, 4)
	m.PostRotate(33, -7, 2)
	m.PostTranslate(12.5, -3)
	orig := m

	inv := m
	inv.Inverse()
	assert.NotEqual(orig, inv)

	assertMatrixInDelta(t, NewMatrix(), Multiply(orig, inv), 1e-9)

	back := inv
	back.Inverse()
	assertMatrixInDelta(t, orig, back, 1e-9)

	x, y := orig.TransformPoint(17, -4)
	x, y = inv.TransformPoint(x, y)
	assert.InDelta(17.0, x, 1e-9)
	assert.InDelta(-4.0, y, 1e-9)
}

func TestMatrix_SingularInverse(t *testing.T) {
	assert := assert.New(t)

	m := Matrix{1, 2, 0, 2, 4, 0, 0, 0, 1}
	orig := m
	m.Inverse()
	assert.Equal(orig, m)

	m = Scaling(0, 0)
	orig = m
	m.Inverse()
	assert.Equal(orig, m)

	m = Matrix{math.NaN(), 0, 0, 0, 1, 0, 0, 0, 1}
	m.Inverse()
	assert.True(math.IsNaN(m[0]))
	assert.Equal(1.0, m[4])
}

func TestMatrix_Determinant(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	assert.Equal(1.0, m.Determinant())
	m = Scaling(2, 3)
	assert.Equal(6.0, m.Determinant())
}
