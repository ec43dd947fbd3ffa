package matrix

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

func Test_matrix01(tst *testing.T) {

	chk.PrintTitle("matrix01. translate composition")

	a := Translate(5, 0)
	b := Translate(0, 8)
	i2cA := a // A has no parent
	i2cB := b.Multiply(i2cA)

	chk.Scalar(tst, "i2cA.tx", 1e-15, i2cA.Tx, 5)
	chk.Scalar(tst, "i2cA.ty", 1e-15, i2cA.Ty, 0)
	chk.Scalar(tst, "i2cB.tx", 1e-15, i2cB.Tx, 5)
	chk.Scalar(tst, "i2cB.ty", 1e-15, i2cB.Ty, 8)
}

func Test_matrix02(tst *testing.T) {

	chk.PrintTitle("matrix02. invert round-trip on random non-singular matrices")

	rnd.Init(0)
	for i := 0; i < 200; i++ {
		m := New(
			rnd.Float64(-5, 5), rnd.Float64(-5, 5),
			rnd.Float64(-5, 5), rnd.Float64(-5, 5),
			rnd.Float64(-10, 10), rnd.Float64(-10, 10),
		)
		if math.Abs(m.Determinant()) < 1e-6 {
			continue // skip near-singular draws
		}
		inv, err := m.Invert()
		if err != nil {
			tst.Errorf("unexpected singular matrix error: %v", err)
			continue
		}
		px, py := rnd.Float64(-100, 100), rnd.Float64(-100, 100)
		tx, ty := m.TransformPoint(px, py)
		bx, by := inv.TransformPoint(tx, ty)
		chk.Scalar(tst, "round-trip x", 1e-9, bx, px)
		chk.Scalar(tst, "round-trip y", 1e-9, by, py)
	}
}

func Test_matrix03(tst *testing.T) {

	chk.PrintTitle("matrix03. singular matrix rejected")

	m := New(1, 2, 2, 4, 0, 0) // det = 1*4 - 2*2 = 0
	_, err := m.Invert()
	if err == nil {
		tst.Errorf("expected SingularMatrixError, got nil")
	}
}

func Test_matrix04(tst *testing.T) {

	chk.PrintTitle("matrix04. identity is neutral under Multiply")

	m := New(2, 0, 0, 3, 1, 1)
	id := Identity()
	chk.Scalar(tst, "m*id a", 1e-15, m.Multiply(id).A, m.A)
	chk.Scalar(tst, "id*m a", 1e-15, id.Multiply(m).A, m.A)
}
