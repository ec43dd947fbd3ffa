package constraint

import "github.com/cpmech/gocanvas/variable"

// Equals forces a.Value() == b.Value(), nudging whichever of the two
// is weaker to match the other. If both share strength, b yields to a
// (insertion order: a was declared first).
type Equals struct {
	A, B variable.Cell
}

// NewEquals constructs an Equals constraint. Subscription to its
// variables is the Solver's job (it is the sole Handler in this
// package, per solver.Solver) -- a bare constraint is plain data.
func NewEquals(a, b variable.Cell) *Equals {
	return &Equals{A: a, B: b}
}

func (c *Equals) Variables() []variable.Cell { return []variable.Cell{c.A, c.B} }

func (c *Equals) Weakest() variable.Cell {
	if c.B.Strength() <= c.A.Strength() {
		return c.B
	}
	return c.A
}

func (c *Equals) Solve() error {
	w := c.Weakest()
	if w == c.A {
		c.A.SetValue(c.B.Value())
	} else {
		c.B.SetValue(c.A.Value())
	}
	return nil
}

func (c *Equals) String() string { return "Equals" }
