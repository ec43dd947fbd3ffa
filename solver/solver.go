// Package solver implements the constraint solver: a dirty-constraint
// worklist driven to a fixpoint, honoring per-variable strength and
// bounded by a juggle limit the way gofem's augmented Lagrange-
// multiplier solve (fem/essenbcs.go) iterates a bounded number of
// Newton steps before declaring non-convergence.
package solver

import (
	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gocanvas/errs"
	"github.com/cpmech/gocanvas/variable"
)

// JuggleLimit is the minimum and default number of times a single
// constraint may be re-marked within one Solve() call before the
// solver gives up and reports over-constraint.
const JuggleLimit = 100

// Solver holds the registered constraint set, a dirty worklist, and a
// reverse index from variable to the constraints that reference it.
type Solver struct {
	constraints   []constraint.Constraint
	index         map[constraint.Constraint]int // position in constraints, for O(1) removal
	marked        map[constraint.Constraint]bool
	markedOrder   []constraint.Constraint
	byVariable    map[variable.Cell][]constraint.Constraint
	juggleLimit   int
	subscriptions map[constraint.Constraint][]variable.Cell // cells we subscribed to, for clean unsubscribe
	solving       constraint.Constraint                     // constraint whose Solve() is running, nil otherwise
}

// New returns an empty Solver with the default juggle limit.
func New() *Solver {
	return &Solver{
		index:         make(map[constraint.Constraint]int),
		marked:        make(map[constraint.Constraint]bool),
		byVariable:    make(map[variable.Cell][]constraint.Constraint),
		subscriptions: make(map[constraint.Constraint][]variable.Cell),
		juggleLimit:   JuggleLimit,
	}
}

// SetJuggleLimit overrides the default juggle limit; values below
// JuggleLimit are clamped up to it.
func (s *Solver) SetJuggleLimit(n int) {
	if n < JuggleLimit {
		n = JuggleLimit
	}
	s.juggleLimit = n
}

// variableHandler subscribes the solver itself to a constraint's
// variables; VariableChanged marks every constraint that references
// the changed variable except the one the solver is currently solving
// (outside Solve, every dependent is marked).
type variableHandler struct {
	s     *Solver
	owner constraint.Constraint
}

func (h *variableHandler) VariableChanged(v variable.Cell) {
	h.s.requestResolveExcept(v, h.s.solving)
}

// AddConstraint registers c, subscribes the solver to every variable
// c references, and marks c dirty for the next Solve().
func (s *Solver) AddConstraint(c constraint.Constraint) {
	if _, ok := s.index[c]; ok {
		return
	}
	s.index[c] = len(s.constraints)
	s.constraints = append(s.constraints, c)
	h := &variableHandler{s: s, owner: c}
	var subs []variable.Cell
	for _, v := range c.Variables() {
		v.Subscribe(h)
		subs = append(subs, v)
		s.byVariable[v] = append(s.byVariable[v], c)
	}
	s.subscriptions[c] = subs
	s.mark(c)
}

// RemoveConstraint unsubscribes c from its variables and drops it
// from the constraint set and dirty worklist.
func (s *Solver) RemoveConstraint(c constraint.Constraint) {
	idx, ok := s.index[c]
	if !ok {
		return
	}
	last := len(s.constraints) - 1
	s.constraints[idx] = s.constraints[last]
	s.index[s.constraints[idx]] = idx
	s.constraints = s.constraints[:last]
	delete(s.index, c)

	for _, v := range c.Variables() {
		lst := s.byVariable[v]
		for i, other := range lst {
			if other == c {
				s.byVariable[v] = append(lst[:i], lst[i+1:]...)
				break
			}
		}
	}
	for _, v := range s.subscriptions[c] {
		for _, h := range v.Handlers() {
			if vh, ok := h.(*variableHandler); ok && vh.s == s && vh.owner == c {
				v.Unsubscribe(vh)
			}
		}
	}
	delete(s.subscriptions, c)
	delete(s.marked, c)
	for i, m := range s.markedOrder {
		if m == c {
			s.markedOrder = append(s.markedOrder[:i], s.markedOrder[i+1:]...)
			break
		}
	}
}

// Has reports whether c is currently registered.
func (s *Solver) Has(c constraint.Constraint) bool {
	_, ok := s.index[c]
	return ok
}

func (s *Solver) mark(c constraint.Constraint) {
	if s.marked[c] {
		return
	}
	s.marked[c] = true
	s.markedOrder = append(s.markedOrder, c)
}

// RequestResolve marks every constraint that depends on v as dirty.
// projectionsOnly is accepted so callers that only care about
// projection fan-out can say so (a future optimization could skip
// non-projection dependents); the current implementation marks all
// dependents regardless.
func (s *Solver) RequestResolve(v variable.Cell, projectionsOnly bool) {
	for _, c := range s.byVariable[v] {
		s.mark(c)
	}
}

func (s *Solver) requestResolveExcept(v variable.Cell, except constraint.Constraint) {
	for _, c := range s.byVariable[v] {
		if c == except {
			continue
		}
		s.mark(c)
	}
}

// Solve iterates the marked-constraint worklist to a fixpoint: pop a
// constraint, snapshot its variables, solve it, re-mark every OTHER
// constraint whose variable changed. Returns a *errs.JuggleError if
// any single constraint is popped (re-marked) more than the juggle
// limit times within this call, converged or not: a relation that is
// still being re-marked after that many visits is over-constrained,
// whether it is stuck or oscillating.
func (s *Solver) Solve() error {
	visits := make(map[constraint.Constraint]int)

	for len(s.markedOrder) > 0 {
		c := s.markedOrder[0]
		s.markedOrder = s.markedOrder[1:]
		delete(s.marked, c)

		visits[c]++
		if visits[c] > s.juggleLimit {
			return &errs.JuggleError{Constraint: c}
		}

		before := snapshot(c.Variables())
		s.solving = c
		err := c.Solve()
		s.solving = nil
		if err != nil {
			return err
		}
		changed := diff(c.Variables(), before)

		for _, v := range changed {
			s.requestResolveExcept(v, c)
		}
	}
	return nil
}

func snapshot(vars []variable.Cell) []float64 {
	out := make([]float64, len(vars))
	for i, v := range vars {
		out[i] = v.Value()
	}
	return out
}

func diff(vars []variable.Cell, before []float64) []variable.Cell {
	var changed []variable.Cell
	for i, v := range vars {
		if v.Value() != before[i] {
			changed = append(changed, v)
		}
	}
	return changed
}
