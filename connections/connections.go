// Package connections implements the registry binding a line handle
// to another item's port via a solver constraint, grounded on gofem's
// ele.Connector interface (elements that depend on other elements
// rather than owning independent degrees of freedom) generalized from
// a single Connect(cid2elem, cell) call into a full registry with
// disconnect callbacks and atomic reconnection.
package connections

import (
	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gocanvas/item"
	"github.com/cpmech/gocanvas/solver"
)

// Callback is invoked exactly once when a connection is removed,
// whether by explicit Disconnect or by being replaced in Connect.
type Callback func()

// Info is the connection record stored per Handle.
type Info struct {
	Item       item.Item
	Handle     *item.Handle
	Connected  item.Item
	Port       item.Port
	Constraint constraint.Constraint
	Callback   Callback
}

// Connections is the handle-keyed registry of active connections. It
// shares the Solver with the owning Canvas: every constraint it
// registers is added to and removed from that same Solver instance,
// so a handle is never left constrained after its connection is gone.
type Connections struct {
	solver   *solver.Solver
	byHandle map[*item.Handle]*Info
}

// New returns a Connections registry driving s.
func New(s *solver.Solver) *Connections {
	return &Connections{solver: s, byHandle: make(map[*item.Handle]*Info)}
}

// ConnectItem binds handle (owned by it) to connected via port. If a
// connection already exists for handle, it is removed first (firing
// its callback) before the new one is registered. If constraint is
// nil, port.Constraint(it, handle, connected) builds it.
func (c *Connections) ConnectItem(it item.Item, handle *item.Handle, connected item.Item, port item.Port, con constraint.Constraint, cb Callback) {
	if existing, ok := c.byHandle[handle]; ok {
		c.removeInfo(handle, existing)
	}
	if con == nil {
		con = port.Constraint(it, handle, connected)
	}
	info := &Info{Item: it, Handle: handle, Connected: connected, Port: port, Constraint: con, Callback: cb}
	c.byHandle[handle] = info
	c.solver.AddConstraint(con)
}

// DisconnectItem removes the connection for handle, or every
// connection belonging to it if handle is nil. Each removed record's
// constraint is unregistered from the Solver and its callback is
// invoked exactly once.
func (c *Connections) DisconnectItem(it item.Item, handle *item.Handle) {
	if handle != nil {
		if info, ok := c.byHandle[handle]; ok && info.Item == it {
			c.removeInfo(handle, info)
		}
		return
	}
	for h, info := range c.byHandle {
		if info.Item == it {
			c.removeInfo(h, info)
		}
	}
}

func (c *Connections) removeInfo(h *item.Handle, info *Info) {
	delete(c.byHandle, h)
	if info.Constraint != nil {
		c.solver.RemoveConstraint(info.Constraint)
	}
	if info.Callback != nil {
		info.Callback()
	}
}

// ReconnectItem atomically swaps the port and/or constraint of an
// existing connection without firing the disconnect callback. If
// newConstraint is non-nil it replaces the registered constraint
// (old one removed from the Solver, new one added); a nil
// newConstraint leaves the constraint untouched.
func (c *Connections) ReconnectItem(it item.Item, handle *item.Handle, newPort item.Port, newConstraint constraint.Constraint) {
	info, ok := c.byHandle[handle]
	if !ok || info.Item != it {
		return
	}
	if newPort != nil {
		info.Port = newPort
	}
	if newConstraint != nil {
		if info.Constraint != nil {
			c.solver.RemoveConstraint(info.Constraint)
		}
		info.Constraint = newConstraint
		c.solver.AddConstraint(newConstraint)
	}
}

// GetConnection returns the connection record for handle, if any.
func (c *Connections) GetConnection(handle *item.Handle) (*Info, bool) {
	info, ok := c.byHandle[handle]
	return info, ok
}

// Filter narrows a GetConnections query; a nil field matches anything.
type Filter struct {
	Item      item.Item
	Handle    *item.Handle
	Connected item.Item
	Port      item.Port
}

// GetConnections returns every connection record matching f.
func (c *Connections) GetConnections(f Filter) []*Info {
	var out []*Info
	for h, info := range c.byHandle {
		if f.Handle != nil && f.Handle != h {
			continue
		}
		if f.Item != nil && f.Item != info.Item {
			continue
		}
		if f.Connected != nil && f.Connected != info.Connected {
			continue
		}
		if f.Port != nil && f.Port != info.Port {
			continue
		}
		out = append(out, info)
	}
	return out
}

// RemoveConnectionsToItem removes every connection whose Connected
// field is it -- i.e. other items' handles that point at it, not its
// own handles. Each removal fires its callback exactly once.
func (c *Connections) RemoveConnectionsToItem(it item.Item) {
	for h, info := range c.byHandle {
		if info.Connected == it {
			c.removeInfo(h, info)
		}
	}
}
