package item

import (
	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gocanvas/matrix"
	"github.com/cpmech/gocanvas/variable"
)

// Element is a rectangular item with four corner handles and the
// constraints that keep it a valid rectangle no smaller than
// (MinWidth, MinHeight). Corner order is NW, NE, SE, SW.
type Element struct {
	Base

	handles     [4]*Handle
	constraints []constraint.Constraint

	MinWidth  float64
	MinHeight float64
}

const (
	cornerNW = 0
	cornerNE = 1
	cornerSE = 2
	cornerSW = 3
)

// NewElement builds an Element of size (width, height) with its
// top-left corner at the local origin, and builds the six constraints
// (four edge equalities, two minimum-size bounds) that keep it
// rectangular and above the minimum size.
func NewElement(name string, width, height, minWidth, minHeight float64) *Element {
	e := &Element{Base: NewBase(name), MinWidth: minWidth, MinHeight: minHeight}
	e.handles[cornerNW] = NewHandle(0, 0, variable.Strong)
	e.handles[cornerNE] = NewHandle(width, 0, variable.Normal)
	e.handles[cornerSE] = NewHandle(width, height, variable.Normal)
	e.handles[cornerSW] = NewHandle(0, height, variable.Normal)

	nw, ne, se, sw := e.handles[cornerNW], e.handles[cornerNE], e.handles[cornerSE], e.handles[cornerSW]
	e.constraints = []constraint.Constraint{
		constraint.NewEquals(nw.Y, ne.Y), // top edge shares y
		constraint.NewEquals(sw.Y, se.Y), // bottom edge shares y
		constraint.NewEquals(nw.X, sw.X), // left edge shares x
		constraint.NewEquals(ne.X, se.X), // right edge shares x
		constraint.NewLessThan(minWidthVar(nw.X, minWidth), ne.X),
		constraint.NewLessThan(minHeightVar(nw.Y, minHeight), sw.Y),
	}
	return e
}

// minWidthVar/minHeightVar wrap "left + min" as a read-only projection
// so the LessThan constraint can compare against it without a
// standalone free variable that the solver might otherwise try to
// adjust independently of the left edge.
func minWidthVar(left *variable.Variable, min float64) variable.Cell {
	return variable.NewProjection(left,
		func(v float64) float64 { return v + min },
		func(target variable.Cell, v float64) { target.SetValue(v - min) },
	)
}

func minHeightVar(top *variable.Variable, min float64) variable.Cell {
	return variable.NewProjection(top,
		func(v float64) float64 { return v + min },
		func(target variable.Cell, v float64) { target.SetValue(v - min) },
	)
}

func (e *Element) Handles() []*Handle { return e.handles[:] }

func (e *Element) Ports() []Port {
	nw, ne, se, sw := e.handles[cornerNW], e.handles[cornerNE], e.handles[cornerSE], e.handles[cornerSW]
	return []Port{
		NewLinePort(nw, ne),
		NewLinePort(ne, se),
		NewLinePort(se, sw),
		NewLinePort(sw, nw),
	}
}

func (e *Element) Constraints() []constraint.Constraint { return e.constraints }

// Width/Height read the element's current size off its NE/SW corners.
func (e *Element) Width() float64  { return e.handles[cornerNE].X.Value() }
func (e *Element) Height() float64 { return e.handles[cornerSW].Y.Value() }

// PreUpdate renormalizes the top-left handle to the local origin: it
// translates the item's matrix by the NW handle's current offset and
// subtracts that offset from every handle, so handles always stay
// rooted at (0,0) in item-local coordinates regardless of how the
// corners were last dragged.
func (e *Element) PreUpdate(UpdateContext) error {
	nw := e.handles[cornerNW]
	ox, oy := nw.Pos()
	if ox == 0 && oy == 0 {
		return nil
	}
	e.SetMatrix(matrix.Translate(ox, oy).Multiply(e.Matrix()))
	for _, h := range e.handles {
		hx, hy := h.Pos()
		h.SetPos(hx-ox, hy-oy)
	}
	return nil
}
