package variable

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

type countingHandler struct{ n int }

func (h *countingHandler) VariableChanged(Cell) { h.n++ }

func Test_variable01(tst *testing.T) {

	chk.PrintTitle("variable01. write notifies subscribers exactly once")

	v := New(1, Normal)
	h := &countingHandler{}
	v.Subscribe(h)

	v.SetValue(2)
	if h.n != 1 {
		tst.Errorf("handler called %d times, want 1", h.n)
	}

	v.SetValue(2) // bitwise-identical write may be skipped
	if h.n != 1 {
		tst.Errorf("handler called %d times after no-op write, want 1", h.n)
	}

	v.SetValue(3)
	if h.n != 2 {
		tst.Errorf("handler called %d times, want 2", h.n)
	}
}

func Test_variable02(tst *testing.T) {

	chk.PrintTitle("variable02. strength is immutable and arithmetic reads .value")

	v := New(10, Strong)
	if v.Strength() != Strong {
		tst.Errorf("strength changed")
	}
	chk.Scalar(tst, "v+5", 1e-15, v.Add(5), 15)
	chk.Scalar(tst, "v*2", 1e-15, v.Mul(2), 20)
	if v.Cmp(10) != 0 {
		tst.Errorf("Cmp(10) = %d, want 0", v.Cmp(10))
	}
}

func Test_variable03(tst *testing.T) {

	chk.PrintTitle("variable03. unsubscribe stops notification")

	v := New(0, Normal)
	h := &countingHandler{}
	v.Subscribe(h)
	v.Unsubscribe(h)
	v.SetValue(99)
	if h.n != 0 {
		tst.Errorf("handler called %d times after unsubscribe, want 0", h.n)
	}
}

func Test_projection01(tst *testing.T) {

	chk.PrintTitle("projection01. projection forwards reads/writes and re-broadcasts")

	target := New(0, Normal)
	p := NewProjection(target,
		func(v float64) float64 { return v * 2 },
		func(t Cell, v float64) { t.SetValue(v / 2) },
	)

	h := &countingHandler{}
	p.Subscribe(h)

	p.SetValue(10) // target becomes 5
	chk.Scalar(tst, "target.Value()", 1e-15, target.Value(), 5)
	chk.Scalar(tst, "p.Value()", 1e-15, p.Value(), 10)
	if h.n != 1 {
		tst.Errorf("projection subscriber called %d times, want 1", h.n)
	}

	// a direct write to the target must also re-broadcast through p
	target.SetValue(7)
	if h.n != 2 {
		tst.Errorf("projection subscriber called %d times after target write, want 2", h.n)
	}
}
