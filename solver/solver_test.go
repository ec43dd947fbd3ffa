package solver

import (
	"testing"

	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gocanvas/variable"
	"github.com/cpmech/gosl/chk"
)

func Test_solver01(tst *testing.T) {

	chk.PrintTitle("solver01. equal-strength equals constraint converges to a shared value")

	a := variable.New(3, variable.Normal)
	b := variable.New(0, variable.Normal)
	s := New()
	s.AddConstraint(constraint.NewEquals(a, b))

	if err := s.Solve(); err != nil {
		tst.Fatalf("solve failed: %v", err)
	}
	if a.Value() != b.Value() {
		tst.Errorf("a=%g b=%g, want equal", a.Value(), b.Value())
	}
}

func Test_solver02(tst *testing.T) {

	chk.PrintTitle("solver02. strength is respected: the weak variable yields")

	a := variable.New(3, variable.Strong)
	b := variable.New(0, variable.Weak)
	s := New()
	s.AddConstraint(constraint.NewEquals(a, b))

	if err := s.Solve(); err != nil {
		tst.Fatalf("solve failed: %v", err)
	}
	chk.Scalar(tst, "a", 1e-15, a.Value(), 3)
	chk.Scalar(tst, "b", 1e-15, b.Value(), 3)
}

func Test_solver03(tst *testing.T) {

	chk.PrintTitle("solver03. fixpoint: marked set is empty and re-solving is a no-op")

	a := variable.New(3, variable.Strong)
	b := variable.New(0, variable.Weak)
	c := variable.New(10, variable.Weak)
	s := New()
	s.AddConstraint(constraint.NewEquals(a, b))
	s.AddConstraint(constraint.NewEquals(b, c))

	if err := s.Solve(); err != nil {
		tst.Fatalf("solve failed: %v", err)
	}
	if len(s.markedOrder) != 0 {
		tst.Errorf("markedOrder not empty after solve: %v", s.markedOrder)
	}
	chk.Scalar(tst, "a", 1e-15, a.Value(), 3)
	chk.Scalar(tst, "b", 1e-15, b.Value(), 3)
	chk.Scalar(tst, "c", 1e-15, c.Value(), 3)

	before := []float64{a.Value(), b.Value(), c.Value()}
	if err := s.Solve(); err != nil {
		tst.Fatalf("re-solve failed: %v", err)
	}
	after := []float64{a.Value(), b.Value(), c.Value()}
	for i := range before {
		if before[i] != after[i] {
			tst.Errorf("re-solving a settled system changed values: %v -> %v", before, after)
		}
	}
}

func Test_solver04(tst *testing.T) {

	chk.PrintTitle("solver04. remove_constraint unsubscribes and stops future resolution")

	a := variable.New(1, variable.Normal)
	b := variable.New(2, variable.Normal)
	s := New()
	c := constraint.NewEquals(a, b)
	s.AddConstraint(c)
	s.RemoveConstraint(c)

	if s.Has(c) {
		tst.Errorf("constraint still registered after removal")
	}
	a.SetValue(42) // should not re-mark the removed constraint
	if len(s.markedOrder) != 0 {
		tst.Errorf("removed constraint was re-marked: %v", s.markedOrder)
	}
}

// bumpConstraint reads one variable and writes another, always
// changing it by a nonzero amount. Two of these wired back-to-back
// (A writes B, B writes A) re-mark each other forever and never
// settle, exercising the juggle limit.
type bumpConstraint struct {
	read, write *variable.Variable
}

func (l *bumpConstraint) Variables() []variable.Cell {
	return []variable.Cell{l.read, l.write}
}
func (l *bumpConstraint) Weakest() variable.Cell { return l.write }
func (l *bumpConstraint) Solve() error {
	l.write.SetValue(l.read.Value() + 1)
	return nil
}
func (l *bumpConstraint) String() string { return "bumpConstraint" }

func Test_solver05(tst *testing.T) {

	chk.PrintTitle("solver05. over-constrained (oscillating) system reports JuggleError")

	a := variable.New(0, variable.Normal)
	b := variable.New(0, variable.Normal)
	s := New()
	s.AddConstraint(&bumpConstraint{read: a, write: b})
	s.AddConstraint(&bumpConstraint{read: b, write: a})

	err := s.Solve()
	if err == nil {
		tst.Errorf("expected JuggleError, got nil")
	}
}
