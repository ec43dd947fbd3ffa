package constraint

import "github.com/cpmech/gocanvas/variable"

// Center forces Mid.Value() == (A.Value()+B.Value())/2, adjusting the
// weakest of the three. When Mid is weakest it is simply recomputed;
// when A or B is weakest it is derived from the other two.
type Center struct {
	A, B, Mid variable.Cell
}

func NewCenter(a, b, mid variable.Cell) *Center {
	return &Center{A: a, B: b, Mid: mid}
}

func (c *Center) Variables() []variable.Cell { return []variable.Cell{c.A, c.B, c.Mid} }

func (c *Center) Weakest() variable.Cell {
	return weakestOf(c.Variables())
}

func (c *Center) Solve() error {
	switch c.Weakest() {
	case c.Mid:
		c.Mid.SetValue((c.A.Value() + c.B.Value()) / 2)
	case c.A:
		c.A.SetValue(2*c.Mid.Value() - c.B.Value())
	default:
		c.B.SetValue(2*c.Mid.Value() - c.A.Value())
	}
	return nil
}

func (c *Center) String() string { return "Center" }
