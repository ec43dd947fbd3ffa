package constraint

import "github.com/cpmech/gocanvas/variable"

// LineAlign enforces orthogonal routing between two consecutive
// segments of a Line item: the segment from Prev to Cur is forced
// horizontal (matching Y) or vertical (matching X), alternating by
// segment parity the way Line.orthogonal routes a polyline in right
// angles.
type LineAlign struct {
	Prev, Cur  Point2
	Horizontal bool // true: force Cur.Y == Prev.Y; false: force Cur.X == Prev.X
}

func NewLineAlign(prev, cur Point2, horizontal bool) *LineAlign {
	return &LineAlign{Prev: prev, Cur: cur, Horizontal: horizontal}
}

func (c *LineAlign) Variables() []variable.Cell {
	return []variable.Cell{c.Prev.X, c.Prev.Y, c.Cur.X, c.Cur.Y}
}

func (c *LineAlign) axisVars() (anchor, point variable.Cell) {
	if c.Horizontal {
		return c.Prev.Y, c.Cur.Y
	}
	return c.Prev.X, c.Cur.X
}

func (c *LineAlign) Weakest() variable.Cell {
	_, point := c.axisVars()
	return point
}

func (c *LineAlign) Solve() error {
	anchor, point := c.axisVars()
	point.SetValue(anchor.Value())
	return nil
}

func (c *LineAlign) String() string { return "LineAlign" }
