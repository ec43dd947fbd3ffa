package item

import (
	"math"

	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gosl/utl"
)

// GluePoint is the result of projecting a candidate point onto a Port.
type GluePoint struct {
	X, Y float64
	Ok   bool
}

// Port is an abstract connectable site exposed by an item.
type Port interface {
	// Glue projects (x, y) onto the port, returning the projected
	// position and its distance to (x, y). Ok is false if the port
	// cannot accept a connection at any position (Connectable() is
	// false, or the port is degenerate).
	Glue(x, y float64) (pos GluePoint, distance float64)
	// Constraint builds the geometric relation that will hold handle
	// (owned by item) glued to this port once connected is the other
	// endpoint of the connection.
	Constraint(owner Item, handle *Handle, connected Item) constraint.Constraint
	Connectable() bool
}

// PointPort is a single connectable point, e.g. an Element's corner
// handle exposed as a connection target.
type PointPort struct {
	At          *Handle
	connectable bool
}

// NewPointPort exposes h as a connectable point port.
func NewPointPort(h *Handle) *PointPort {
	return &PointPort{At: h, connectable: true}
}

func (p *PointPort) Connectable() bool { return p.connectable }

func (p *PointPort) Glue(x, y float64) (GluePoint, float64) {
	px, py := p.At.Pos()
	d := math.Hypot(x-px, y-py)
	return GluePoint{X: px, Y: py, Ok: p.connectable}, d
}

func (p *PointPort) Constraint(owner Item, handle *Handle, connected Item) constraint.Constraint {
	return constraint.NewPosition(p.At.X, p.At.Y, handle.X, handle.Y)
}

// LinePort is a connectable segment between two handles, e.g. one
// edge of an Element's perimeter, or one segment of a Line.
type LinePort struct {
	Start, End  *Handle
	connectable bool
}

// NewLinePort exposes the segment start-end as a connectable line port.
func NewLinePort(start, end *Handle) *LinePort {
	return &LinePort{Start: start, End: end, connectable: true}
}

func (p *LinePort) Connectable() bool { return p.connectable }

func (p *LinePort) Glue(x, y float64) (GluePoint, float64) {
	ax, ay := p.Start.Pos()
	bx, by := p.End.Pos()
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	var gx, gy float64
	degenerate := lenSq < 1e-18
	if degenerate {
		gx, gy = ax, ay
	} else {
		t := ((x-ax)*dx + (y-ay)*dy) / lenSq
		t = utl.Max(0, utl.Min(1, t))
		gx, gy = ax+t*dx, ay+t*dy
	}
	return GluePoint{X: gx, Y: gy, Ok: p.connectable && !degenerate}, math.Hypot(x-gx, y-gy)
}

func (p *LinePort) Constraint(owner Item, handle *Handle, connected Item) constraint.Constraint {
	vertices := []constraint.Point2{
		{X: p.Start.X, Y: p.Start.Y},
		{X: p.End.X, Y: p.End.Y},
	}
	return constraint.NewLine(vertices, constraint.Point2{X: handle.X, Y: handle.Y})
}
