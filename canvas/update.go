package canvas

import (
	"github.com/cpmech/gocanvas/errs"
	"github.com/cpmech/gocanvas/item"
	"github.com/cpmech/gocanvas/tree"
)

// UpdateNow runs the dirty-tracking update pipeline: expand the dirty
// set to closure, solve constraints, recompute matrices, solve again,
// then notify views exactly once. It is non-reentrant: a call made
// while already running returns
// immediately without touching the dirty sets, matching gofem's
// Domain which refuses a nested assemble-and-solve pass mid-iteration.
func (c *Canvas) UpdateNow() error {
	if c.running {
		return nil
	}
	c.running = true
	defer func() { c.running = false }()

	// Steps 2-3: expand D_u to ancestors, pre-update leaves-first.
	items := c.sortDirtyReversed()
	preErrs := c.runHook(items, "pre", func(it item.Item, ctx item.UpdateContext) error {
		return it.PreUpdate(ctx)
	})

	// Step 4: snapshot M = D_m ∪ items touched by pre_update, clear D_m.
	touched := c.collectDirty(c.dirtyItems)
	matrixSet := c.unionItems(c.dirtyMatrixItems, touched)
	c.dirtyMatrixItems = make(map[item.Item]bool)

	// Step 5: first solve.
	if err := c.solver.Solve(); err != nil {
		c.notifyViews(items, matrixSet, c.collectDirty(c.removedItems))
		c.removedItems = make(map[item.Item]bool)
		return err
	}

	// Step 6: solving must not dirty matrices.
	if len(c.dirtyMatrixItems) > 0 {
		errs.Fatalf("solver.Solve() dirtied matrices: %d items", len(c.dirtyMatrixItems))
	}

	// Step 7: if D_u grew, recompute items.
	if c.dirtySetGrew(items) {
		items = c.sortDirtyReversed()
	}

	// Step 8: recompute and publish item-to-canvas matrices for M.
	c.recomputeMatrices(matrixSet)

	// Step 9: second solve, absorbing matrix-propagation effects.
	if err := c.solver.Solve(); err != nil {
		c.notifyViews(items, matrixSet, c.collectDirty(c.removedItems))
		c.removedItems = make(map[item.Item]bool)
		return err
	}

	// Step 10: if D_u grew again, re-sort.
	if c.dirtySetGrew(items) {
		items = c.sortDirtyReversed()
	}

	// Step 11: clear D_u.
	c.dirtyItems = make(map[item.Item]bool)

	// Step 12: post_update, leaves-first (same order as pre_update).
	postErrs := c.runHook(items, "post", func(it item.Item, ctx item.UpdateContext) error {
		return it.PostUpdate(ctx)
	})
	for _, e := range append(preErrs, postErrs...) {
		errs.Log("%v\n", e)
	}

	// Step 13: both dirty sets must now be empty.
	if len(c.dirtyItems) != 0 || len(c.dirtyMatrixItems) != 0 {
		errs.Fatalf("dirty sets not empty at end of update_now")
	}

	// Step 14: notify views exactly once, with the final post-update state.
	removed := c.collectDirty(c.removedItems)
	c.notifyViews(items, matrixSet, removed)
	c.removedItems = make(map[item.Item]bool)
	return nil
}

// sortDirtyReversed expands dirtyItems to include ancestors, then
// returns the sorted set reversed (leaves first).
func (c *Canvas) sortDirtyReversed() []item.Item {
	expanded := make(map[item.Item]bool, len(c.dirtyItems))
	for it := range c.dirtyItems {
		expanded[it] = true
		for _, anc := range c.tree.GetAncestors(itemKey(it)) {
			if ancItem, ok := anc.(item.Item); ok {
				expanded[ancItem] = true
			}
		}
	}
	c.dirtyItems = expanded

	list := c.collectDirty(c.dirtyItems)
	sorted := c.Sort(list)
	reversed := make([]item.Item, len(sorted))
	for i, it := range sorted {
		reversed[len(sorted)-1-i] = it
	}
	return reversed
}

func (c *Canvas) collectDirty(set map[item.Item]bool) []item.Item {
	out := make([]item.Item, 0, len(set))
	for it := range set {
		out = append(out, it)
	}
	return out
}

func (c *Canvas) unionItems(set map[item.Item]bool, extra []item.Item) []item.Item {
	seen := make(map[item.Item]bool, len(set)+len(extra))
	out := make([]item.Item, 0, len(set)+len(extra))
	for it := range set {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	for _, it := range extra {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

// dirtySetGrew reports whether dirtyItems now contains an item not in
// the previously-computed items slice.
func (c *Canvas) dirtySetGrew(items []item.Item) bool {
	known := make(map[item.Item]bool, len(items))
	for _, it := range items {
		known[it] = true
	}
	for it := range c.dirtyItems {
		if !known[it] {
			return true
		}
	}
	return false
}

// runHook invokes fn on every item, recovering and wrapping any panic
// or returned error as an *errs.ItemUpdateError so one misbehaving
// item cannot stall the rest of the pipeline.
func (c *Canvas) runHook(items []item.Item, phase string, fn func(item.Item, item.UpdateContext) error) []error {
	var collected []error
	for _, it := range items {
		ctx := c.ctxFac(it)
		func() {
			defer func() {
				if r := recover(); r != nil {
					collected = append(collected, &errs.ItemUpdateError{Item: it, Phase: phase, Cause: panicAsError(r)})
				}
			}()
			if err := fn(it, ctx); err != nil {
				collected = append(collected, &errs.ItemUpdateError{Item: it, Phase: phase, Cause: err})
			}
		}()
	}
	return collected
}

func panicAsError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &panicError{v: r}
}

type panicError struct{ v any }

func (p *panicError) Error() string { return "panic: " + itemStringer(p.v) }

func itemStringer(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if st, ok := v.(interface{ String() string }); ok {
		return st.String()
	}
	return "unknown panic value"
}

// recomputeMatrices composes and publishes the item-to-canvas matrix
// for every item in set and every descendant of those items, parents
// before children, writing through each item's exported matrix cell
// (matrixcell.go) so any matrix-derived projection observers fire
// exactly once.
func (c *Canvas) recomputeMatrices(set []item.Item) {
	seen := make(map[item.Item]bool, len(set))
	var all []item.Item
	for _, it := range set {
		nodes := append([]tree.Node{itemKey(it)}, c.tree.GetAllChildren(itemKey(it))...)
		for _, n := range nodes {
			if x, ok := n.(item.Item); ok && !seen[x] {
				seen[x] = true
				all = append(all, x)
			}
		}
	}
	for _, it := range c.Sort(all) {
		m := c.computeI2C(it)
		c.i2c[it] = m
		c.matrixCellFor(it).set(m)
	}
}

func (c *Canvas) notifyViews(dirty, dirtyMatrix, removed []item.Item) {
	for _, v := range c.views {
		v.RequestUpdate(dirty, dirtyMatrix, removed)
	}
}
