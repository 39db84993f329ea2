package herocanvas

import "math"

// Matrix is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// Identity is the identity affine matrix.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Mul returns m * n (n is applied first).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Translate returns m followed by a translation in local space.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{1, 0, 0, 1, x, y})
}

// Rotate returns m followed by a rotation of angle radians in local space.
func (m Matrix) Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return m.Mul(Matrix{cos, sin, -sin, cos, 0, 0})
}

// Scale returns m followed by a scale in local space.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{sx, 0, 0, sy, 0, 0})
}

// Invert computes the inverse of m.
// Returns the identity matrix if m is singular.
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ScaleFactor returns the geometric mean of the axis scales, used to convert
// user-space stroke widths and arc tolerances to device pixels.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}
