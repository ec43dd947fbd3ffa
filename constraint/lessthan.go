package constraint

import "github.com/cpmech/gocanvas/variable"

// LessThan enforces Smaller.Value() <= Bigger.Value(), nudging
// whichever is weaker when the relation is violated. Used by Element
// to enforce min_width/min_height: Smaller = left edge + min_width,
// Bigger = right edge, etc.
type LessThan struct {
	Smaller, Bigger variable.Cell
}

func NewLessThan(smaller, bigger variable.Cell) *LessThan {
	return &LessThan{Smaller: smaller, Bigger: bigger}
}

func (c *LessThan) Variables() []variable.Cell { return []variable.Cell{c.Smaller, c.Bigger} }

func (c *LessThan) Weakest() variable.Cell {
	if c.Bigger.Strength() <= c.Smaller.Strength() {
		return c.Bigger
	}
	return c.Smaller
}

func (c *LessThan) Solve() error {
	if c.Smaller.Value() <= c.Bigger.Value() {
		return nil
	}
	w := c.Weakest()
	if w == c.Bigger {
		c.Bigger.SetValue(c.Smaller.Value())
	} else {
		c.Smaller.SetValue(c.Bigger.Value())
	}
	return nil
}

func (c *LessThan) String() string { return "LessThan" }
