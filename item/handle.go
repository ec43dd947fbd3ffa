// Package item implements the scene primitives: Handle, Port, the
// Item capability interface, and the built-in Element/Line variants.
// Grounded on gofem's Elem/Connector interface split (ele/element.go):
// the core dispatches on a small capability-interface contract rather
// than a class hierarchy, and Line's "interior handles connect to
// other elements" mirrors gofem's Connector elements that depend on
// other elements rather than owning their own degrees of freedom.
package item

import "github.com/cpmech/gocanvas/variable"

// Handle is a positioned grab/anchor point owned by exactly one item
// for its lifetime.
type Handle struct {
	X, Y        *variable.Variable
	Movable     bool
	Visible     bool
	Connectable bool
	strength    variable.Strength
}

// NewHandle builds a Handle at (x, y) with the given strength applied
// to both coordinate variables.
func NewHandle(x, y float64, s variable.Strength) *Handle {
	return &Handle{
		X:           variable.New(x, s),
		Y:           variable.New(y, s),
		Movable:     true,
		Visible:     true,
		Connectable: true,
		strength:    s,
	}
}

// Strength returns the role-derived strength shared by both axes.
func (h *Handle) Strength() variable.Strength { return h.strength }

// Pos returns the handle's current (x, y).
func (h *Handle) Pos() (float64, float64) { return h.X.Value(), h.Y.Value() }

// SetPos writes both axes, notifying their subscribers.
func (h *Handle) SetPos(x, y float64) {
	h.X.SetValue(x)
	h.Y.SetValue(y)
}
