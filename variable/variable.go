// Package variable implements the weighted scalar cell the solver
// operates on, and the Projection wrapper used to express the same
// point in another coordinate frame without duplicating state.
package variable

// Strength is an ordered weight determining which variable a
// constraint is allowed to adjust. Higher is stronger.
type Strength int

const (
	VeryWeak   Strength = 0
	Weak       Strength = 10
	Normal     Strength = 20
	Strong     Strength = 30
	VeryStrong Strength = 40
	Required   Strength = 100
)

// Handler is notified exactly once per value-changing write to a
// Variable it is subscribed to. Concrete handlers are the solver's
// per-constraint subscription (solver.variableHandler) and Projection,
// which re-broadcasts its target's changes.
type Handler interface {
	VariableChanged(v Cell)
}

// Cell is the shared read/write/subscribe surface of Variable and
// Projection. The solver and constraints only ever depend on Cell,
// never on the concrete type, so a Projection can stand in anywhere a
// Variable is expected.
type Cell interface {
	Value() float64
	SetValue(v float64)
	Strength() Strength
	Subscribe(h Handler)
	Unsubscribe(h Handler)
	Handlers() []Handler
}

// Variable is a scalar numeric cell with a fixed strength and a set
// of subscribed handlers. Identity is by pointer, never by value.
type Variable struct {
	value    float64
	strength Strength
	handlers []Handler
}

// New returns a Variable initialized to v with the given strength.
// Strength is immutable for the variable's lifetime.
func New(v float64, s Strength) *Variable {
	return &Variable{value: v, strength: s}
}

func (v *Variable) Value() float64     { return v.value }
func (v *Variable) Strength() Strength { return v.strength }

// SetValue writes value and notifies every subscribed handler exactly
// once, unless the new value compares equal (==) to the old one.
func (v *Variable) SetValue(nv float64) {
	if nv == v.value {
		return
	}
	v.value = nv
	v.notify()
}

func (v *Variable) notify() {
	// Copy so a handler that subscribes/unsubscribes mid-notification
	// cannot corrupt this iteration.
	hs := append([]Handler(nil), v.handlers...)
	for _, h := range hs {
		h.VariableChanged(v)
	}
}

func (v *Variable) Subscribe(h Handler) {
	for _, existing := range v.handlers {
		if existing == h {
			return
		}
	}
	v.handlers = append(v.handlers, h)
}

func (v *Variable) Unsubscribe(h Handler) {
	for i, existing := range v.handlers {
		if existing == h {
			v.handlers = append(v.handlers[:i], v.handlers[i+1:]...)
			return
		}
	}
}

func (v *Variable) Handlers() []Handler { return append([]Handler(nil), v.handlers...) }

// Arithmetic convenience, so a *Variable reads like a plain float64 in
// constraint bodies (EquationConstraint callbacks, glue-distance math).

func (v *Variable) Add(x float64) float64 { return v.value + x }
func (v *Variable) Sub(x float64) float64 { return v.value - x }
func (v *Variable) Mul(x float64) float64 { return v.value * x }
func (v *Variable) Div(x float64) float64 { return v.value / x }

// Cmp compares the variable's value against x: -1, 0, or 1.
func (v *Variable) Cmp(x float64) int {
	switch {
	case v.value < x:
		return -1
	case v.value > x:
		return 1
	default:
		return 0
	}
}
