package constraint

import (
	"math"

	"github.com/cpmech/gocanvas/variable"
	"github.com/cpmech/gosl/utl"
)

// Point2 is a pair of scalar cells treated as one 2D point.
type Point2 struct {
	X, Y variable.Cell
}

func (p Point2) xy() (float64, float64) { return p.X.Value(), p.Y.Value() }

// Line glues Point onto the nearest segment of the polyline described
// by Vertices (>= 2 points), the relation used to keep a connected
// handle sitting on a Line item's path as the line's own handles move.
type Line struct {
	Vertices []Point2
	Point    Point2
}

func NewLine(vertices []Point2, point Point2) *Line {
	return &Line{Vertices: vertices, Point: point}
}

func (c *Line) Variables() []variable.Cell {
	vars := make([]variable.Cell, 0, 2*len(c.Vertices)+2)
	for _, v := range c.Vertices {
		vars = append(vars, v.X, v.Y)
	}
	vars = append(vars, c.Point.X, c.Point.Y)
	return vars
}

// Weakest is always the constrained point: the polyline's own handles
// are the independent variables here.
func (c *Line) Weakest() variable.Cell {
	if c.Point.Y.Strength() < c.Point.X.Strength() {
		return c.Point.Y
	}
	return c.Point.X
}

func (c *Line) Solve() error {
	if len(c.Vertices) < 2 {
		return nil
	}
	px, py := c.Point.xy()
	bestX, bestY := px, py
	bestDist := math.Inf(1)
	for i := 0; i+1 < len(c.Vertices); i++ {
		ax, ay := c.Vertices[i].xy()
		bx, by := c.Vertices[i+1].xy()
		cx, cy, d := closestOnSegment(ax, ay, bx, by, px, py)
		if d < bestDist {
			bestDist, bestX, bestY = d, cx, cy
		}
	}
	c.Point.X.SetValue(bestX)
	c.Point.Y.SetValue(bestY)
	return nil
}

func (c *Line) String() string { return "Line" }

// closestOnSegment projects (px,py) onto segment (ax,ay)-(bx,by),
// clamped to the segment, returning the projected point and its
// squared distance to (px,py).
func closestOnSegment(ax, ay, bx, by, px, py float64) (x, y, dist2 float64) {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-18 {
		x, y = ax, ay
	} else {
		t := ((px-ax)*dx + (py-ay)*dy) / lenSq
		t = utl.Max(0, utl.Min(1, t))
		x, y = ax+t*dx, ay+t*dy
	}
	ddx, ddy := px-x, py-y
	dist2 = ddx*ddx + ddy*ddy
	return
}
