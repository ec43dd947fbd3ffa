package variable

// Projection wraps a target Cell and forwards reads/writes to some
// computed representation, without itself becoming a subscribable
// target the underlying Variable knows about. It shares the Variable
// surface (Value/SetValue/Strength/Subscribe) so it can stand in for
// a Variable anywhere a Handle position is expected -- the canonical
// use is "this point expressed in another coordinate frame".
//
// A Projection holds a strong reference to its target; the target
// never references the projection except via its own handler list
// (the projection subscribes to the target like any other handler).
type Projection struct {
	target Cell
	// read projects the target's raw value into this projection's frame.
	read func(target float64) float64
	// write projects a value in this projection's frame back onto the
	// target, and is responsible for actually writing it (it may also
	// have side effects beyond the plain assignment, e.g. updating a
	// cached matrix).
	write    func(target Cell, v float64)
	handlers []Handler
}

// NewProjection builds a Projection over target using read/write
// functions that convert between the target's frame and this
// projection's frame.
func NewProjection(target Cell, read func(float64) float64, write func(Cell, float64)) *Projection {
	p := &Projection{target: target, read: read, write: write}
	target.Subscribe(p)
	return p
}

func (p *Projection) Value() float64     { return p.read(p.target.Value()) }
func (p *Projection) Strength() Strength { return p.target.Strength() }

// SetValue forwards to the write function, which may have side
// effects on the underlying representation beyond a plain assignment.
func (p *Projection) SetValue(v float64) {
	p.write(p.target, v)
}

func (p *Projection) Subscribe(h Handler) {
	for _, existing := range p.handlers {
		if existing == h {
			return
		}
	}
	p.handlers = append(p.handlers, h)
}

func (p *Projection) Unsubscribe(h Handler) {
	for i, existing := range p.handlers {
		if existing == h {
			p.handlers = append(p.handlers[:i], p.handlers[i+1:]...)
			return
		}
	}
}

func (p *Projection) Handlers() []Handler { return append([]Handler(nil), p.handlers...) }

// VariableChanged implements Handler: when the target changes value,
// the projection re-broadcasts to its own subscribers so a chain of
// projections propagates notification just like a plain Variable would.
func (p *Projection) VariableChanged(Cell) {
	hs := append([]Handler(nil), p.handlers...)
	for _, h := range hs {
		h.VariableChanged(p)
	}
}
