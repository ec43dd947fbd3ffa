package item

import (
	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gocanvas/matrix"
)

// UpdateContext is whatever a host supplies via its update-context
// factory; the core never interprets it.
type UpdateContext interface{}

// Item is the scene primitive contract any object must satisfy to be
// added to a Canvas. Mirrors gofem's ele.Elem capability interface:
// the engine dispatches only through this surface and never assumes a
// concrete class hierarchy.
type Item interface {
	Matrix() matrix.Matrix
	SetMatrix(m matrix.Matrix)
	Handles() []*Handle
	Ports() []Port
	Constraints() []constraint.Constraint
	PreUpdate(ctx UpdateContext) error
	PostUpdate(ctx UpdateContext) error
	String() string
}

// Base provides the Matrix storage and default no-op hooks that most
// concrete items embed, matching the small-struct-embedding style
// gofem elements use to share residual/tangent plumbing (ele/auxiliary.go).
type Base struct {
	matrix matrix.Matrix
	Name   string
}

// NewBase returns a Base with the identity matrix.
func NewBase(name string) Base {
	return Base{matrix: matrix.Identity(), Name: name}
}

func (b *Base) Matrix() matrix.Matrix     { return b.matrix }
func (b *Base) SetMatrix(m matrix.Matrix) { b.matrix = m }
func (b *Base) String() string            { return b.Name }

// PreUpdate/PostUpdate default to no-ops; Element overrides
// PreUpdate, nothing currently overrides PostUpdate but the hook
// exists for host items and future built-ins alike.
func (b *Base) PreUpdate(UpdateContext) error  { return nil }
func (b *Base) PostUpdate(UpdateContext) error { return nil }
