package constraint

import (
	"math"

	"github.com/cpmech/gocanvas/variable"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
)

// Equation is the generic "arbitrary relation among named variables"
// constraint. f follows gofem's fun.Func callback shape (ele.Elem's
// SetEleConds/EssentialBc both take one): F(t, x) with t unused here
// (always 0) and x the ordered values of Names. Equation adjusts its
// Weakest() variable by
// root-finding f(vars)==0 with a Newton iteration whose derivative is
// estimated with gosl/num.DerivCen (central-difference numerical
// derivative), the same helper gofem's msolid drivers use to
// numerically check/derive tangent behavior when an analytical
// derivative isn't available.
type Equation struct {
	Names  []string
	Vars   map[string]variable.Cell
	F      fun.Func
	target string // name of the variable this constraint adjusts

	MaxIters int
	Tol      float64
}

// NewEquation builds an Equation constraint over vars (name -> cell),
// targeting whichever named variable has the lowest strength. names
// fixes the order in which Vars are packed into F's x argument.
func NewEquation(f fun.Func, names []string, vars map[string]variable.Cell) *Equation {
	return &Equation{Names: names, Vars: vars, F: f, MaxIters: 50, Tol: 1e-9}
}

func (c *Equation) Variables() []variable.Cell {
	vars := make([]variable.Cell, 0, len(c.Names))
	for _, n := range c.Names {
		vars = append(vars, c.Vars[n])
	}
	return vars
}

func (c *Equation) Weakest() variable.Cell {
	vars := c.Variables()
	w := weakestOf(vars)
	for n, v := range c.Vars {
		if v == w {
			c.target = n
			break
		}
	}
	return w
}

func (c *Equation) values() []float64 {
	vals := make([]float64, len(c.Names))
	for i, n := range c.Names {
		vals[i] = c.Vars[n].Value()
	}
	return vals
}

func (c *Equation) targetIndex() int {
	for i, n := range c.Names {
		if n == c.target {
			return i
		}
	}
	return -1
}

// Solve drives f(vars)==0 to zero by adjusting the weakest variable
// with a Newton iteration; it stops early once the residual or the
// step size is within tolerance, or the numerical derivative is too
// flat to trust.
func (c *Equation) Solve() error {
	c.Weakest() // populate c.target
	idx := c.targetIndex()
	if idx < 0 {
		return nil
	}
	residual := func(x float64) float64 {
		vals := c.values()
		vals[idx] = x
		return c.F.F(0, vals)
	}
	x := c.Vars[c.target].Value()
	for i := 0; i < c.MaxIters; i++ {
		r := residual(x)
		if math.Abs(r) < c.Tol {
			break
		}
		deriv := num.DerivCen(residual, x, 1e-6)
		if math.Abs(deriv) < 1e-12 {
			break
		}
		step := r / deriv
		x -= step
		if math.Abs(step) < c.Tol {
			break
		}
	}
	c.Vars[c.target].SetValue(x)
	return nil
}

func (c *Equation) String() string { return "Equation" }
