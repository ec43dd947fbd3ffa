// Package canvas implements the update engine: the container owning
// the item tree, solver, connection registry, and the non-reentrant
// dirty-tracking update pipeline. Grounded on gofem's Domain
// (fem/domain.go), which likewise owns the active
// node/element set, the linear solver, and drives one pass (assemble,
// solve, update internal state) per time step -- update_now is this
// core's analogue of Domain's per-iteration residual/Jacobian pass,
// generalized from a single linear solve to the constraint solver's
// fixpoint iteration and run on every scheduled update instead of
// every time step.
package canvas

import (
	"github.com/cpmech/gocanvas/connections"
	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gocanvas/errs"
	"github.com/cpmech/gocanvas/item"
	"github.com/cpmech/gocanvas/matrix"
	"github.com/cpmech/gocanvas/solver"
	"github.com/cpmech/gocanvas/tree"
)

// View is notified once per update_now with the sets of items whose
// geometry or matrix changed, plus anything removed in that cycle.
type View interface {
	RequestUpdate(dirtyItems, dirtyMatrixItems, removedItems []item.Item)
}

// Scheduler is the single-slot coalescing deferral hook: it should
// arrange to call run at some later point (the default runs it
// immediately, appropriate for tests and non-UI hosts).
type Scheduler func(run func())

// ContextFactory supplies whatever renderer/measurement handle items
// expect in their pre/post-update hooks. The core never interprets it.
type ContextFactory func(it item.Item) item.UpdateContext

// Observer receives (opName, args, inverseArgs) for every "observed"
// mutation, for an external undo/redo recorder to consume. args and
// inverseArgs carry just enough to reconstruct the forward/inverse
// call; the default Observer is a no-op.
type Observer func(opName string, args, inverseArgs map[string]any)

func defaultScheduler(run func()) { run() }
func defaultObserver(string, map[string]any, map[string]any) {}
func defaultContextFactory(item.Item) item.UpdateContext { return nil }

// Canvas owns the item tree, solver, connection registry, and drives
// the update pipeline. The zero value is not usable; use New.
type Canvas struct {
	tree        *tree.Tree
	items       map[item.Item]bool
	solver      *solver.Solver
	connections *connections.Connections

	views     []View
	scheduler Scheduler
	ctxFac    ContextFactory
	observe   Observer

	dirtyItems       map[item.Item]bool
	dirtyMatrixItems map[item.Item]bool
	removedItems     map[item.Item]bool
	i2c              map[item.Item]matrix.Matrix
	matrixCells      map[any]*matrixCell

	// constraintsOf is the set of constraints currently registered with
	// the solver on an item's behalf, as of the last Add or
	// RequestConstraintSync -- Add reads it.Constraints() exactly once,
	// so this is what removeOne/RequestConstraintSync diff against
	// after a topology edit (Line.InsertHandle, MergeSegment,
	// SetOrthogonal) changes what Constraints() would return.
	constraintsOf map[item.Item][]constraint.Constraint

	updateScheduled bool
	running         bool
}

// Option configures a Canvas at construction time.
type Option func(*Canvas)

// WithScheduler overrides the default immediate-invocation scheduler.
func WithScheduler(s Scheduler) Option { return func(c *Canvas) { c.scheduler = s } }

// WithContextFactory overrides the default (nil-returning) context factory.
func WithContextFactory(f ContextFactory) Option { return func(c *Canvas) { c.ctxFac = f } }

// WithObserver overrides the default no-op observed-mutation sink.
func WithObserver(o Observer) Option { return func(c *Canvas) { c.observe = o } }

// New returns an empty Canvas.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		tree:             tree.New(),
		items:            make(map[item.Item]bool),
		solver:           solver.New(),
		dirtyItems:       make(map[item.Item]bool),
		dirtyMatrixItems: make(map[item.Item]bool),
		removedItems:     make(map[item.Item]bool),
		i2c:              make(map[item.Item]matrix.Matrix),
		constraintsOf:    make(map[item.Item][]constraint.Constraint),
		scheduler:        defaultScheduler,
		ctxFac:           defaultContextFactory,
		observe:          defaultObserver,
	}
	c.connections = connections.New(c.solver)
	return c
}

// Connections exposes the registry for Connect/Disconnect calls; kept
// as a separate object so connection bookkeeping is routed through a
// dedicated Connections type rather than a canvas-owned side table.
func (c *Canvas) Connections() *connections.Connections { return c.connections }

// Solver exposes the shared Solver -- Connections and intra-item
// constraints register against it directly; only Canvas ever calls
// Solve().
func (c *Canvas) Solver() *solver.Solver { return c.solver }

func itemKey(it item.Item) any {
	// tree.Node is `any`; item.Item is stored by its own identity
	// (pointer equality for the concrete types built-in items use).
	return it
}

// Add inserts it into the tree under parent at index, registers its
// intra-item constraints with the Solver, and marks it dirty for both
// update and matrix recomputation.
func (c *Canvas) Add(it item.Item, parent item.Item, index int) error {
	if c.items[it] {
		return &errs.AlreadyPresent{Item: it}
	}
	c.items[it] = true
	c.tree.Add(itemKey(it), itemKey(parent), index)
	cons := it.Constraints()
	for _, con := range cons {
		c.solver.AddConstraint(con)
	}
	c.constraintsOf[it] = cons
	c.requestUpdate(it, true, true)
	c.observe("add", map[string]any{"item": it, "parent": parent, "index": index},
		map[string]any{"item": it})
	c.scheduleUpdate()
	return nil
}

// Remove depth-first removes it and its descendants (children first),
// clearing every connection that touches them on either side and
// unregistering their intra-item constraints.
func (c *Canvas) Remove(it item.Item) error {
	if !c.items[it] {
		return &errs.NotPresent{Item: it}
	}
	descendants := c.tree.GetAllChildren(itemKey(it))
	// Deepest-first: it followed by its pre-order descendants, walked in
	// reverse, gives a children-before-parent removal sequence.
	all := append([]tree.Node{itemKey(it)}, descendants...)
	for i := len(all) - 1; i >= 0; i-- {
		node := all[i]
		victim, ok := node.(item.Item)
		if !ok || !c.items[victim] {
			continue
		}
		c.removeOne(victim)
	}
	c.observe("remove", map[string]any{"item": it}, map[string]any{"item": it})
	c.scheduleUpdate()
	return nil
}

func (c *Canvas) removeOne(it item.Item) {
	c.connections.DisconnectItem(it, nil)
	c.connections.RemoveConnectionsToItem(it)
	for _, con := range c.constraintsOf[it] {
		c.solver.RemoveConstraint(con)
	}
	c.tree.Remove(itemKey(it))
	delete(c.items, it)
	delete(c.dirtyItems, it)
	delete(c.dirtyMatrixItems, it)
	delete(c.i2c, it)
	delete(c.matrixCells, it)
	delete(c.constraintsOf, it)
	c.removedItems[it] = true
}

// Reparent moves it to a new parent at index, preserving its subtree.
func (c *Canvas) Reparent(it item.Item, parent item.Item, index int) error {
	if !c.items[it] {
		return &errs.NotPresent{Item: it}
	}
	c.tree.Move(itemKey(it), itemKey(parent), index)
	c.requestUpdate(it, false, true)
	c.observe("reparent", map[string]any{"item": it, "parent": parent, "index": index}, nil)
	c.scheduleUpdate()
	return nil
}

// RequestConstraintSync re-reads it.Constraints() and diffs it against
// what Add (or the previous RequestConstraintSync) registered with the
// solver, unregistering constraints that are gone and registering ones
// that are new. Add only reads Constraints() once at insertion time, so
// an item whose constraint set changes afterward -- a Line whose
// InsertHandle/MergeSegment/SetOrthogonal rebuilds its orthogonal
// routing constraints -- needs this called after the edit or the
// solver keeps solving stale constraints and never sees the new ones.
func (c *Canvas) RequestConstraintSync(it item.Item) error {
	if !c.items[it] {
		return &errs.NotPresent{Item: it}
	}
	old := c.constraintsOf[it]
	next := it.Constraints()

	oldSet := make(map[constraint.Constraint]bool, len(old))
	for _, con := range old {
		oldSet[con] = true
	}
	nextSet := make(map[constraint.Constraint]bool, len(next))
	for _, con := range next {
		nextSet[con] = true
	}

	for _, con := range old {
		if !nextSet[con] {
			c.solver.RemoveConstraint(con)
		}
	}
	for _, con := range next {
		if !oldSet[con] {
			c.solver.AddConstraint(con)
		}
	}
	c.constraintsOf[it] = next

	c.requestUpdate(it, true, false)
	c.observe("constraint_sync", map[string]any{"item": it}, nil)
	c.scheduleUpdate()
	return nil
}

// RequestUpdate marks it dirty for update and/or matrix recomputation
// and asks the scheduler to eventually call Update.
func (c *Canvas) RequestUpdate(it item.Item, update, matrixUpdate bool) {
	c.requestUpdate(it, update, matrixUpdate)
	c.observe("request_update", map[string]any{"item": it, "update": update, "matrix": matrixUpdate}, nil)
	c.scheduleUpdate()
}

func (c *Canvas) requestUpdate(it item.Item, update, matrixUpdate bool) {
	if update {
		c.dirtyItems[it] = true
	}
	if matrixUpdate {
		c.dirtyMatrixItems[it] = true
	}
}

// RequestMatrixUpdate is RequestUpdate(it, false, true).
func (c *Canvas) RequestMatrixUpdate(it item.Item) {
	c.RequestUpdate(it, false, true)
}

// RegisterView/UnregisterView manage the set of views notified at the
// end of every update_now cycle.
func (c *Canvas) RegisterView(v View) {
	for _, existing := range c.views {
		if existing == v {
			return
		}
	}
	c.views = append(c.views, v)
}

func (c *Canvas) UnregisterView(v View) {
	for i, existing := range c.views {
		if existing == v {
			c.views = append(c.views[:i], c.views[i+1:]...)
			return
		}
	}
}

// Sort returns items in depth-first pre-order.
func (c *Canvas) Sort(items []item.Item) []item.Item {
	nodes := make([]tree.Node, len(items))
	for i, it := range items {
		nodes[i] = itemKey(it)
	}
	ordered := c.tree.Order(nodes)
	out := make([]item.Item, len(ordered))
	for i, n := range ordered {
		out[i] = n.(item.Item)
	}
	return out
}

// GetMatrixI2C composes it.Matrix() with every ancestor's matrix, root
// last -- if an update_now has recomputed it, the value cached by that
// cycle is returned, otherwise it is computed fresh by walking the tree.
func (c *Canvas) GetMatrixI2C(it item.Item) matrix.Matrix {
	if m, ok := c.i2c[it]; ok {
		return m
	}
	return c.computeI2C(it)
}

func (c *Canvas) computeI2C(it item.Item) matrix.Matrix {
	parentNode := c.tree.GetParent(itemKey(it))
	m := it.Matrix()
	if parentNode == nil {
		return m
	}
	parent, ok := parentNode.(item.Item)
	if !ok {
		return m
	}
	return m.Multiply(c.GetMatrixI2C(parent))
}

// scheduleUpdate coalesces: repeated calls before the scheduler fires
// collapse into a single Update invocation.
func (c *Canvas) scheduleUpdate() {
	if c.updateScheduled {
		return
	}
	c.updateScheduled = true
	c.scheduler(func() {
		c.updateScheduled = false
		c.UpdateNow()
	})
}

// Update is the public scheduling entry point: idempotent if called
// repeatedly before the scheduler fires.
func (c *Canvas) Update() {
	c.scheduleUpdate()
}
