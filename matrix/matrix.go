// Package matrix implements the 2D affine transform used for every
// item-to-parent and item-to-canvas coordinate change in gocanvas.
// The convention matches common 2D graphics pipelines:
//
//	[x']   [a c tx]   [x]
//	[y'] = [b d ty] * [y]
//	[1 ]   [0 0 1 ]   [1]
package matrix

import (
	"math"

	"github.com/cpmech/gocanvas/errs"
)

// SingularTolerance is the minimum determinant magnitude below which
// Invert fails with a SingularMatrixError.
const SingularTolerance = 1e-12

// Matrix is an immutable-shaped 2D affine transform.
type Matrix struct {
	A, B, C, D, Tx, Ty float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// New builds a Matrix from its six components.
func New(a, b, c, d, tx, ty float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}
}

// Translate returns a pure translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, Tx: tx, Ty: ty}
}

// Scale returns a pure scale matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a pure rotation matrix, angle in radians.
func Rotate(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Multiply post-multiplies other onto m: composing child-onto-parent,
// the result first applies m then other, i.e. result = other * m in
// matrix-algebra terms for column vectors. Concretely: if m is an
// item's local matrix and other is the parent's item-to-canvas
// matrix, m.Multiply(other) is the item's item-to-canvas matrix.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.B*other.C,
		B:  m.A*other.B + m.B*other.D,
		C:  m.C*other.A + m.D*other.C,
		D:  m.C*other.B + m.D*other.D,
		Tx: m.Tx*other.A + m.Ty*other.C + other.Tx,
		Ty: m.Tx*other.B + m.Ty*other.D + other.Ty,
	}
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform, or a *errs.SingularMatrixError
// if the determinant's magnitude is below SingularTolerance.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < SingularTolerance {
		return Matrix{}, &errs.SingularMatrixError{Det: det}
	}
	id := 1 / det
	a := m.D * id
	b := -m.B * id
	c := -m.C * id
	d := m.A * id
	tx := -(m.Tx*a + m.Ty*c)
	ty := -(m.Tx*b + m.Ty*d)
	return Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}, nil
}

// TransformPoint applies the transform to (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.Tx, m.B*x + m.D*y + m.Ty
}

// TransformDistance applies only the linear part of the transform
// (no translation) -- used for vectors/deltas rather than points.
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	return m.A*dx + m.C*dy, m.B*dx + m.D*dy
}

// ApproxEqual reports whether m and other agree within tol on every
// component -- used by round-trip property tests.
func (m Matrix) ApproxEqual(other Matrix, tol float64) bool {
	return math.Abs(m.A-other.A) <= tol &&
		math.Abs(m.B-other.B) <= tol &&
		math.Abs(m.C-other.C) <= tol &&
		math.Abs(m.D-other.D) <= tol &&
		math.Abs(m.Tx-other.Tx) <= tol &&
		math.Abs(m.Ty-other.Ty) <= tol
}
