package constraint

import "github.com/cpmech/gocanvas/variable"

// Position binds a (PointX, PointY) pair to an (OriginX, OriginY)
// pair: the canonical "this handle follows that point" relation used
// when a connection glues a handle onto a fixed location computed by
// a port (the origin is authoritative, the point yields to it).
type Position struct {
	OriginX, OriginY variable.Cell
	PointX, PointY   variable.Cell
}

func NewPosition(originX, originY, pointX, pointY variable.Cell) *Position {
	return &Position{OriginX: originX, OriginY: originY, PointX: pointX, PointY: pointY}
}

func (c *Position) Variables() []variable.Cell {
	return []variable.Cell{c.OriginX, c.OriginY, c.PointX, c.PointY}
}

// Weakest is representative only: Position always drives Point from
// Origin, so the weaker of the two point axes is reported.
func (c *Position) Weakest() variable.Cell {
	if c.PointY.Strength() < c.PointX.Strength() {
		return c.PointY
	}
	return c.PointX
}

func (c *Position) Solve() error {
	c.PointX.SetValue(c.OriginX.Value())
	c.PointY.SetValue(c.OriginY.Value())
	return nil
}

func (c *Position) String() string { return "Position" }
