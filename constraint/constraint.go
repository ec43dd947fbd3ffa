// Package constraint implements the concrete relations the solver
// drives to a fixpoint: Equals, LessThan, Center, Equation, Line,
// LineAlign and Position. Every kind satisfies the same opaque
// Constraint contract gofem's ele.Elem/EssentialBc pattern uses for
// boundary conditions: the solver (like gofem's augmented Kb solve)
// never inspects a constraint's concrete type, only its declared
// variables and its Solve/Weakest behavior.
package constraint

import "github.com/cpmech/gocanvas/variable"

// Constraint is a relation among >= 1 Variables (or Projections, which
// share the variable.Cell surface).
type Constraint interface {
	// Variables returns every cell this constraint reads or writes.
	Variables() []variable.Cell
	// Solve mutates some subset of Variables() so the relation holds,
	// respecting strength: the weakest variable is adjusted first and
	// a stronger variable is never overwritten to satisfy a weaker one.
	Solve() error
	// Weakest identifies the variable this constraint is permitted to
	// adjust -- the one with the lowest Strength() among Variables(),
	// ties broken by insertion order.
	Weakest() variable.Cell
	// String names the constraint for JuggleError diagnostics.
	String() string
}

// weakestOf picks the lowest-strength cell among vars, breaking ties
// by insertion (slice) order for determinism.
func weakestOf(vars []variable.Cell) variable.Cell {
	if len(vars) == 0 {
		return nil
	}
	best := vars[0]
	for _, v := range vars[1:] {
		if v.Strength() < best.Strength() {
			best = v
		}
	}
	return best
}
