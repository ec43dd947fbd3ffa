package item

import (
	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gocanvas/variable"
)

// Line is a polyline item: head and tail handles plus any number of
// interior handles, with optional orthogonal routing and a horizontal
// routing bias. Grounded on gofem's Connector elements (ele/element.go)
// which depend on the state of other elements rather than owning
// independent degrees of freedom -- a Line's interior handles are
// likewise defined relative to their neighbors via LineAlign rather
// than free-standing.
type Line struct {
	Base

	handles    []*Handle
	Orthogonal bool
	Horizontal bool // routing bias used when Orthogonal: first segment's preferred axis

	orthoConstraints []constraint.Constraint
}

// NewLine builds a two-point line from head to tail.
func NewLine(name string, headX, headY, tailX, tailY float64) *Line {
	l := &Line{Base: NewBase(name)}
	l.handles = []*Handle{
		NewHandle(headX, headY, variable.Strong),
		NewHandle(tailX, tailY, variable.Strong),
	}
	return l
}

func (l *Line) Handles() []*Handle { return l.handles }

func (l *Line) Head() *Handle { return l.handles[0] }
func (l *Line) Tail() *Handle { return l.handles[len(l.handles)-1] }

func (l *Line) Ports() []Port {
	ports := make([]Port, 0, len(l.handles)-1)
	for i := 0; i+1 < len(l.handles); i++ {
		ports = append(ports, NewLinePort(l.handles[i], l.handles[i+1]))
	}
	return ports
}

func (l *Line) Constraints() []constraint.Constraint {
	if l.Orthogonal {
		return l.orthoConstraints
	}
	return nil
}

// InsertHandle splits the segment ending at index i by inserting h as
// the new handle at position i, shifting the old handle at i (and
// everything after) one place to the right. If l is already added to a
// Canvas, follow this with Canvas.RequestConstraintSync(l) so the
// solver picks up the rebuilt orthogonal constraints.
func (l *Line) InsertHandle(i int, h *Handle) {
	l.handles = append(l.handles, nil)
	copy(l.handles[i+1:], l.handles[i:])
	l.handles[i] = h
	l.rebuildOrthoConstraints()
}

// MergeSegment removes handle i+1, re-linking the constraints of the
// two segments that met at it into one. If l is already added to a
// Canvas, follow this with Canvas.RequestConstraintSync(l).
func (l *Line) MergeSegment(i int) {
	if i+1 >= len(l.handles) {
		return
	}
	l.handles = append(l.handles[:i+1], l.handles[i+2:]...)
	l.rebuildOrthoConstraints()
}

// SetOrthogonal enables/disables orthogonal routing and rebuilds the
// alternating horizontal/vertical alignment constraints between every
// consecutive pair of handles. If l is already added to a Canvas,
// follow this with Canvas.RequestConstraintSync(l).
func (l *Line) SetOrthogonal(on bool) {
	l.Orthogonal = on
	l.rebuildOrthoConstraints()
}

func (l *Line) rebuildOrthoConstraints() {
	if !l.Orthogonal || len(l.handles) < 2 {
		l.orthoConstraints = nil
		return
	}
	cons := make([]constraint.Constraint, 0, len(l.handles)-1)
	horizontal := l.Horizontal
	for i := 1; i < len(l.handles); i++ {
		prev := point2(l.handles[i-1])
		cur := point2(l.handles[i])
		cons = append(cons, constraint.NewLineAlign(prev, cur, horizontal))
		horizontal = !horizontal
	}
	l.orthoConstraints = cons
}

func point2(h *Handle) constraint.Point2 {
	return constraint.Point2{X: h.X, Y: h.Y}
}
