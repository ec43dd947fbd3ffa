package canvas

import "github.com/cpmech/gocanvas/matrix"

// MatrixObserver is notified when an item's published item-to-canvas
// matrix changes: a Projection-shaped wrapper around a computed
// representation (here, a composed affine transform) rather than a
// plain Variable, so a port can express "this handle's canvas-space
// position" without duplicating the matrix-composition logic.
type MatrixObserver interface {
	MatrixChanged(m matrix.Matrix)
}

// matrixCell is the exported matrix storage slot recomputeMatrices
// writes through in update_now step 8: any MatrixObserver subscribed
// to an item's cell fires exactly once per cycle, even though the
// underlying matrix may have been recomputed multiple times upstream
// during the same update_now call.
type matrixCell struct {
	value     matrix.Matrix
	observers []MatrixObserver
}

func (mc *matrixCell) set(m matrix.Matrix) {
	mc.value = m
	for _, o := range mc.observers {
		o.MatrixChanged(m)
	}
}

func (mc *matrixCell) subscribe(o MatrixObserver) {
	for _, existing := range mc.observers {
		if existing == o {
			return
		}
	}
	mc.observers = append(mc.observers, o)
}

func (mc *matrixCell) unsubscribe(o MatrixObserver) {
	for i, existing := range mc.observers {
		if existing == o {
			mc.observers = append(mc.observers[:i], mc.observers[i+1:]...)
			return
		}
	}
}

// SubscribeMatrix registers o to be notified whenever it's published
// item-to-canvas matrix is recomputed by update_now.
func (c *Canvas) SubscribeMatrix(it any, o MatrixObserver) {
	c.matrixCellFor(it).subscribe(o)
}

// UnsubscribeMatrix removes a prior SubscribeMatrix registration.
func (c *Canvas) UnsubscribeMatrix(it any, o MatrixObserver) {
	if cell, ok := c.matrixCells[it]; ok {
		cell.unsubscribe(o)
	}
}

func (c *Canvas) matrixCellFor(it any) *matrixCell {
	if c.matrixCells == nil {
		c.matrixCells = make(map[any]*matrixCell)
	}
	cell, ok := c.matrixCells[it]
	if !ok {
		cell = &matrixCell{}
		c.matrixCells[it] = cell
	}
	return cell
}
