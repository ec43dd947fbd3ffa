package connections

import (
	"testing"

	"github.com/cpmech/gocanvas/item"
	"github.com/cpmech/gocanvas/solver"
	"github.com/cpmech/gosl/chk"
)

func Test_connections01(tst *testing.T) {

	chk.PrintTitle("connections01. connect registers the port constraint with the shared solver")

	s := solver.New()
	c := New(s)

	line := item.NewLine("wire", 0, 0, 100, 0)
	box := item.NewElement("box", 20, 10, 5, 5)
	port := box.Ports()[0]

	c.ConnectItem(line, line.Head(), box, port, nil, nil)

	info, ok := c.GetConnection(line.Head())
	if !ok {
		tst.Fatalf("expected a connection record for the head handle")
	}
	if info.Connected != box {
		tst.Errorf("connected item = %v, want box", info.Connected)
	}
	if !s.Has(info.Constraint) {
		tst.Errorf("connection constraint was not registered with the solver")
	}
}

func Test_connections02(tst *testing.T) {

	chk.PrintTitle("connections02. connecting the same handle twice replaces the old connection and fires its callback")

	s := solver.New()
	c := New(s)

	lineA := item.NewLine("wireA", 0, 0, 100, 0)
	lineB := item.NewLine("wireB", 0, 0, 100, 0)
	box := item.NewElement("box", 20, 10, 5, 5)
	port := box.Ports()[0]

	fired := false
	c.ConnectItem(lineA, lineA.Head(), box, port, nil, func() { fired = true })
	firstInfo, _ := c.GetConnection(lineA.Head())
	firstConstraint := firstInfo.Constraint

	c.ConnectItem(lineA, lineA.Head(), lineB, lineB.Ports()[0], nil, nil)

	if !fired {
		tst.Errorf("replacing a connection should fire the old callback")
	}
	if s.Has(firstConstraint) {
		tst.Errorf("old connection's constraint should be unregistered")
	}
	newInfo, _ := c.GetConnection(lineA.Head())
	if newInfo.Connected != lineB {
		tst.Errorf("connected item = %v, want lineB", newInfo.Connected)
	}
}

func Test_connections03(tst *testing.T) {

	chk.PrintTitle("connections03. disconnect removes the constraint and fires the callback once")

	s := solver.New()
	c := New(s)

	line := item.NewLine("wire", 0, 0, 100, 0)
	box := item.NewElement("box", 20, 10, 5, 5)
	port := box.Ports()[0]

	calls := 0
	c.ConnectItem(line, line.Head(), box, port, nil, func() { calls++ })
	con, _ := c.GetConnection(line.Head())
	cst := con.Constraint

	c.DisconnectItem(line, line.Head())

	if calls != 1 {
		tst.Errorf("callback fired %d times, want 1", calls)
	}
	if s.Has(cst) {
		tst.Errorf("constraint should be unregistered after disconnect")
	}
	if _, ok := c.GetConnection(line.Head()); ok {
		tst.Errorf("connection record should be gone after disconnect")
	}
}

func Test_connections04(tst *testing.T) {

	chk.PrintTitle("connections04. disconnect with a nil handle removes every connection belonging to the item")

	s := solver.New()
	c := New(s)

	line := item.NewLine("wire", 0, 0, 100, 0)
	box := item.NewElement("box", 20, 10, 5, 5)
	ports := box.Ports()

	c.ConnectItem(line, line.Head(), box, ports[0], nil, nil)
	c.ConnectItem(line, line.Tail(), box, ports[1], nil, nil)

	c.DisconnectItem(line, nil)

	if _, ok := c.GetConnection(line.Head()); ok {
		tst.Errorf("head connection should be gone")
	}
	if _, ok := c.GetConnection(line.Tail()); ok {
		tst.Errorf("tail connection should be gone")
	}
}

func Test_connections05(tst *testing.T) {

	chk.PrintTitle("connections05. GetConnections filters by connected item")

	s := solver.New()
	c := New(s)

	lineA := item.NewLine("wireA", 0, 0, 100, 0)
	lineB := item.NewLine("wireB", 0, 0, 100, 0)
	box := item.NewElement("box", 20, 10, 5, 5)
	ports := box.Ports()

	c.ConnectItem(lineA, lineA.Head(), box, ports[0], nil, nil)
	c.ConnectItem(lineB, lineB.Head(), box, ports[1], nil, nil)

	matches := c.GetConnections(Filter{Connected: box})
	if len(matches) != 2 {
		tst.Errorf("len(matches) = %d, want 2", len(matches))
	}
}

func Test_connections06(tst *testing.T) {

	chk.PrintTitle("connections06. RemoveConnectionsToItem drops only connections pointed at that item")

	s := solver.New()
	c := New(s)

	lineA := item.NewLine("wireA", 0, 0, 100, 0)
	box := item.NewElement("box", 20, 10, 5, 5)
	other := item.NewElement("other", 20, 10, 5, 5)
	ports := box.Ports()

	c.ConnectItem(lineA, lineA.Head(), box, ports[0], nil, nil)
	c.ConnectItem(lineA, lineA.Tail(), other, other.Ports()[0], nil, nil)

	c.RemoveConnectionsToItem(box)

	if _, ok := c.GetConnection(lineA.Head()); ok {
		tst.Errorf("connection to box should be gone")
	}
	if _, ok := c.GetConnection(lineA.Tail()); !ok {
		tst.Errorf("connection to other should survive")
	}
}
