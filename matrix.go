package needlework

import "math"

const matrixEpsilon = 1e-10

// Matrix is a 3x3 affine transform stored row-major. Points are treated as row vectors,
// so a point is transformed as [x y 1]·M and the translation lives in the last row.
// The zero value is not usable, use NewMatrix to get the identity.
type Matrix [9]float64

// NewMatrix returns the identity matrix.
func NewMatrix() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translation returns a translation matrix.
func Translation(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, tx, ty, 1}
}

// Scaling returns a scale matrix about the origin.
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Rotation returns a rotation matrix about the origin. The angle is in degrees.
func Rotation(deg float64) Matrix {
	rad := deg * math.Pi / 180
	ct, st := math.Cos(rad), math.Sin(rad)
	return Matrix{ct, st, 0, -st, ct, 0, 0, 0, 1}
}

// Values returns a copy of the matrix cells.
func (m *Matrix) Values() [9]float64 {
	return *m
}

// Reset sets the matrix back to the identity.
func (m *Matrix) Reset() {
	*m = NewMatrix()
}

// IsIdentity reports whether the matrix equals the identity within a small epsilon.
func (m *Matrix) IsIdentity() bool {
	id := NewMatrix()
	for i := range m {
		if math.Abs(m[i]-id[i]) > matrixEpsilon {
			return false
		}
	}
	return true
}

// TransformPoint applies the matrix to the point (x, y).
func (m *Matrix) TransformPoint(x, y float64) (float64, float64) {
	return x*m[0] + y*m[3] + m[6], x*m[1] + y*m[4] + m[7]
}

// Multiply returns a·b.
func Multiply(a, b Matrix) Matrix {
	return Matrix{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],
		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],
		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

// PostMultiply right-multiplies the matrix by n.
func (m *Matrix) PostMultiply(n Matrix) {
	*m = Multiply(*m, n)
}

// PostTranslate appends a translation.
func (m *Matrix) PostTranslate(tx, ty float64) {
	m.PostMultiply(Translation(tx, ty))
}

// PostScale appends a scale about the pivot (px, py).
func (m *Matrix) PostScale(sx, sy, px, py float64) {
	m.aboutPivot(Scaling(sx, sy), px, py)
}

// PostRotate appends a rotation in degrees about the pivot (px, py).
func (m *Matrix) PostRotate(deg, px, py float64) {
	m.aboutPivot(Rotation(deg), px, py)
}

// aboutPivot composes translate(px,py) ∘ op ∘ translate(-px,-py): the pivot is moved
// to the origin, the operation applied and the pivot moved back.
func (m *Matrix) aboutPivot(op Matrix, px, py float64) {
	if px == 0 && py == 0 {
		m.PostMultiply(op)
		return
	}
	m.PostTranslate(-px, -py)
	m.PostMultiply(op)
	m.PostTranslate(px, py)
}

// Determinant returns the determinant of the matrix.
func (m *Matrix) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) +
		m[1]*(m[5]*m[6]-m[3]*m[8]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse inverts the matrix in place using the adjugate.
// A singular or non-finite matrix is left untouched.
func (m *Matrix) Inverse() {
	m48s75 := m[4]*m[8] - m[7]*m[5]
	m38s56 := m[5]*m[6] - m[3]*m[8]
	m37s46 := m[3]*m[7] - m[4]*m[6]

	det := m[0]*m48s75 + m[1]*m38s56 + m[2]*m37s46
	if math.IsNaN(det) || math.IsInf(det, 0) || math.Abs(det) < matrixEpsilon {
		return
	}
	inv := 1 / det

	*m = Matrix{
		m48s75 * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		m38s56 * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[3]*m[2] - m[0]*m[5]) * inv,
		m37s46 * inv,
		(m[6]*m[1] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[3]*m[1]) * inv,
	}
}
