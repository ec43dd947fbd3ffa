// Package errs defines the error kinds surfaced by gocanvas, following
// the fatal-fast-vs-recoverable split gofem draws between chk.Panic
// (programmer errors) and returned/logged errors (everything else).
package errs

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SingularMatrixError is returned by matrix.Matrix.Invert when the
// determinant's magnitude falls below the invertibility tolerance.
type SingularMatrixError struct {
	Det float64
}

func (e *SingularMatrixError) Error() string {
	return io.Sf("singular matrix: determinant %g below tolerance", e.Det)
}

// JuggleError reports a constraint that failed to settle within the
// solver's juggle limit -- the system is over-constrained.
type JuggleError struct {
	Constraint fmt.Stringer
}

func (e *JuggleError) Error() string {
	if e.Constraint == nil {
		return "juggle limit exceeded"
	}
	return io.Sf("juggle limit exceeded on constraint %s", e.Constraint.String())
}

// AlreadyPresent is a caller programming error: an item was added to
// a canvas it is already a member of. Canvas.Add returns it at once,
// leaving the canvas unchanged.
type AlreadyPresent struct {
	Item fmt.Stringer
}

func (e *AlreadyPresent) Error() string {
	return io.Sf("item already present: %v", e.Item)
}

// NotPresent is a caller programming error: an operation targeted an
// item that is not a member of the canvas/tree it was invoked on.
type NotPresent struct {
	Item fmt.Stringer
}

func (e *NotPresent) Error() string {
	return io.Sf("item not present: %v", e.Item)
}

// ItemUpdateError wraps a panic/error raised from an item's
// PreUpdate/PostUpdate hook. It is logged and swallowed by the
// canvas update pipeline so one misbehaving item cannot stall it.
type ItemUpdateError struct {
	Item  fmt.Stringer
	Phase string // "pre" or "post"
	Cause error
}

func (e *ItemUpdateError) Error() string {
	return io.Sf("%s-update failed on item %v: %v", e.Phase, e.Item, e.Cause)
}

func (e *ItemUpdateError) Unwrap() error { return e.Cause }

// Fatalf mirrors chk.Panic: it is used for internal invariant
// violations that must never be recovered from (the dirty-set checks
// in canvas/update.go). AlreadyPresent and NotPresent are returned as
// errors, not raised through Fatalf.
func Fatalf(format string, args ...interface{}) {
	chk.Panic(format, args...)
}

// Log routes recoverable-error diagnostics through gosl/io the way
// gofem's fem package logs to its simulation log file instead of the
// standard library's log package.
func Log(format string, args ...interface{}) {
	io.Pfred(format, args...)
}
