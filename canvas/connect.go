package canvas

import (
	"github.com/cpmech/gocanvas/connections"
	"github.com/cpmech/gocanvas/constraint"
	"github.com/cpmech/gocanvas/item"
)

// ConnectItem binds handle (owned by it) to connected via port,
// emitting an observed mutation pair so an external undo recorder can
// reconstruct the disconnect. See connections.Connections.ConnectItem
// for the underlying semantics (existing connection on handle is
// removed first, firing its callback).
func (c *Canvas) ConnectItem(it item.Item, handle *item.Handle, connected item.Item, port item.Port, con constraint.Constraint, cb connections.Callback) {
	c.connections.ConnectItem(it, handle, connected, port, con, cb)
	c.observe("connect_item",
		map[string]any{"item": it, "handle": handle, "connected": connected, "port": port},
		map[string]any{"item": it, "handle": handle})
}

// DisconnectItem removes the connection for handle (or every
// connection belonging to it if handle is nil), emitting an observed
// mutation pair for each connection removed.
func (c *Canvas) DisconnectItem(it item.Item, handle *item.Handle) {
	var removed []*connections.Info
	if handle != nil {
		if info, ok := c.connections.GetConnection(handle); ok && info.Item == it {
			removed = append(removed, info)
		}
	} else {
		removed = c.connections.GetConnections(connections.Filter{Item: it})
	}
	c.connections.DisconnectItem(it, handle)
	for _, info := range removed {
		c.observe("disconnect_item",
			map[string]any{"item": it, "handle": info.Handle},
			map[string]any{"item": it, "handle": info.Handle, "connected": info.Connected, "port": info.Port})
	}
}
