package item

import (
	"testing"

	"github.com/cpmech/gocanvas/matrix"
	"github.com/cpmech/gocanvas/variable"
	"github.com/cpmech/gosl/chk"
)

func Test_handle01(tst *testing.T) {

	chk.PrintTitle("handle01. new handle carries its position and strength on both axes")

	h := NewHandle(3, 4, variable.Strong)
	x, y := h.Pos()
	chk.Scalar(tst, "x", 1e-15, x, 3)
	chk.Scalar(tst, "y", 1e-15, y, 4)
	if h.Strength() != variable.Strong {
		tst.Errorf("strength = %v, want Strong", h.Strength())
	}
	if h.X.Strength() != variable.Strong || h.Y.Strength() != variable.Strong {
		tst.Errorf("both axes should carry the handle's strength")
	}
}

func Test_handle02(tst *testing.T) {

	chk.PrintTitle("handle02. SetPos writes both axes")

	h := NewHandle(0, 0, variable.Normal)
	h.SetPos(7, 9)
	x, y := h.Pos()
	chk.Scalar(tst, "x", 1e-15, x, 7)
	chk.Scalar(tst, "y", 1e-15, y, 9)
}

func Test_element01(tst *testing.T) {

	chk.PrintTitle("element01. new element has four handles forming a min-sized rectangle")

	e := NewElement("box", 20, 10, 5, 5)
	if len(e.Handles()) != 4 {
		tst.Fatalf("len(handles) = %d, want 4", len(e.Handles()))
	}
	chk.Scalar(tst, "width", 1e-15, e.Width(), 20)
	chk.Scalar(tst, "height", 1e-15, e.Height(), 10)
	if len(e.Ports()) != 4 {
		tst.Errorf("len(ports) = %d, want 4", len(e.Ports()))
	}
	if len(e.Constraints()) != 6 {
		tst.Errorf("len(constraints) = %d, want 6", len(e.Constraints()))
	}
}

func Test_element02(tst *testing.T) {

	chk.PrintTitle("element02. PreUpdate renormalizes the NW handle back to the local origin")

	e := NewElement("box", 20, 10, 5, 5)
	nw := e.Handles()[cornerNW]
	nw.SetPos(3, 4) // drag the top-left corner away from the origin

	if err := e.PreUpdate(nil); err != nil {
		tst.Fatalf("PreUpdate failed: %v", err)
	}

	nx, ny := nw.Pos()
	chk.Scalar(tst, "nw.x after renormalize", 1e-15, nx, 0)
	chk.Scalar(tst, "nw.y after renormalize", 1e-15, ny, 0)

	// the offset must have been folded into the item's matrix instead
	want := matrix.Translate(3, 4)
	chk.Scalar(tst, "matrix.tx", 1e-15, e.Matrix().Tx, want.Tx)
	chk.Scalar(tst, "matrix.ty", 1e-15, e.Matrix().Ty, want.Ty)
}

func Test_element03(tst *testing.T) {

	chk.PrintTitle("element03. PreUpdate is a no-op when the NW handle is already at the origin")

	e := NewElement("box", 20, 10, 5, 5)
	before := e.Matrix()
	if err := e.PreUpdate(nil); err != nil {
		tst.Fatalf("PreUpdate failed: %v", err)
	}
	if e.Matrix() != before {
		tst.Errorf("matrix changed despite handle already at origin")
	}
}

func Test_line01(tst *testing.T) {

	chk.PrintTitle("line01. new line has head/tail handles and one port")

	l := NewLine("wire", 0, 0, 10, 10)
	if l.Head() == l.Tail() {
		tst.Errorf("head and tail should be distinct handles")
	}
	if len(l.Ports()) != 1 {
		tst.Errorf("len(ports) = %d, want 1", len(l.Ports()))
	}
	if l.Constraints() != nil {
		tst.Errorf("non-orthogonal line should report no constraints")
	}
}

func Test_line02(tst *testing.T) {

	chk.PrintTitle("line02. InsertHandle adds an interior point and a second port")

	l := NewLine("wire", 0, 0, 10, 0)
	mid := NewHandle(5, 0, variable.Normal)
	l.InsertHandle(1, mid)

	if len(l.Handles()) != 3 {
		tst.Fatalf("len(handles) = %d, want 3", len(l.Handles()))
	}
	if len(l.Ports()) != 2 {
		tst.Errorf("len(ports) = %d, want 2", len(l.Ports()))
	}
}

func Test_line03(tst *testing.T) {

	chk.PrintTitle("line03. orthogonal routing builds alternating alignment constraints")

	l := NewLine("wire", 0, 0, 10, 10)
	mid := NewHandle(10, 0, variable.Normal)
	l.InsertHandle(1, mid)
	l.SetOrthogonal(true)

	if len(l.Constraints()) != 2 {
		tst.Fatalf("len(constraints) = %d, want 2 (one per segment)", len(l.Constraints()))
	}

	l.SetOrthogonal(false)
	if l.Constraints() != nil {
		tst.Errorf("disabling orthogonal routing should clear constraints")
	}
}

func Test_line04(tst *testing.T) {

	chk.PrintTitle("line04. MergeSegment removes an interior handle and its extra port")

	l := NewLine("wire", 0, 0, 10, 0)
	mid := NewHandle(5, 0, variable.Normal)
	l.InsertHandle(1, mid)
	l.MergeSegment(0)

	if len(l.Handles()) != 2 {
		tst.Fatalf("len(handles) = %d, want 2 after merge", len(l.Handles()))
	}
	if len(l.Ports()) != 1 {
		tst.Errorf("len(ports) = %d, want 1 after merge", len(l.Ports()))
	}
}

func Test_pointport01(tst *testing.T) {

	chk.PrintTitle("pointport01. PointPort glues to its handle regardless of the query point")

	h := NewHandle(3, 4, variable.Strong)
	p := NewPointPort(h)

	g, d := p.Glue(100, 100)
	chk.Scalar(tst, "glue.x", 1e-15, g.X, 3)
	chk.Scalar(tst, "glue.y", 1e-15, g.Y, 4)
	if !g.Ok {
		tst.Errorf("PointPort should always report Ok")
	}
	chk.Scalar(tst, "distance", 1e-9, d, 136.4734406395618) // hypot(97,96)
}

func Test_lineport01(tst *testing.T) {

	chk.PrintTitle("lineport01. LinePort clamps its glue projection to the segment's ends")

	start := NewHandle(0, 0, variable.Strong)
	end := NewHandle(10, 0, variable.Strong)
	p := NewLinePort(start, end)

	g, d := p.Glue(5, 3)
	chk.Scalar(tst, "mid glue.x", 1e-15, g.X, 5)
	chk.Scalar(tst, "mid glue.y", 1e-15, g.Y, 0)
	chk.Scalar(tst, "mid distance", 1e-15, d, 3)

	g2, _ := p.Glue(50, 3)
	chk.Scalar(tst, "clamped glue.x", 1e-15, g2.X, 10)
	chk.Scalar(tst, "clamped glue.y", 1e-15, g2.Y, 0)
}
