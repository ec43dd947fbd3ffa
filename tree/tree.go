// Package tree implements the ordered n-ary tree of opaque item
// identities that backs the canvas's scene hierarchy: a parent map
// plus an ordered children-list map, the same two-map shape gofem's
// Domain uses for Vid2node/Cid2elem id-indexed lookups, generalized
// here to arbitrary comparable node identities instead of integer ids.
package tree

// Node is any comparable value used as an opaque item identity.
type Node = any

// Tree is an ordered n-ary tree. The zero value is not usable; use New.
type Tree struct {
	parent   map[Node]Node
	children map[Node][]Node
	present  map[Node]bool
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{
		parent:   make(map[Node]Node),
		children: make(map[Node][]Node),
		present:  make(map[Node]bool),
	}
}

// Contains reports whether node is in the tree.
func (t *Tree) Contains(node Node) bool { return t.present[node] }

// Add inserts node under parent (nil means root) at index (append if
// index < 0 or past the end). O(1) amortized.
func (t *Tree) Add(node Node, parent Node, index int) {
	t.present[node] = true
	t.parent[node] = parent
	siblings := t.children[parent]
	if index < 0 || index >= len(siblings) {
		t.children[parent] = append(siblings, node)
		return
	}
	siblings = append(siblings, nil)
	copy(siblings[index+1:], siblings[index:])
	siblings[index] = node
	t.children[parent] = siblings
}

// Remove removes node and all of its descendants, deepest-first, so
// a subscriber walking removals in order always sees a valid tree.
func (t *Tree) Remove(node Node) {
	if !t.present[node] {
		return
	}
	// Collect in pre-order, then remove in reverse (deepest-last child
	// first) so descendants are gone before their ancestors.
	order := t.GetAllChildren(node)
	order = append([]Node{node}, order...)
	for i := len(order) - 1; i >= 0; i-- {
		t.removeOne(order[i])
	}
}

func (t *Tree) removeOne(node Node) {
	parent := t.parent[node]
	siblings := t.children[parent]
	for i, s := range siblings {
		if s == node {
			t.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	delete(t.parent, node)
	delete(t.children, node)
	delete(t.present, node)
}

// Move reparents node under newParent at index, preserving node's own
// children subtree intact. Equivalent in effect to Remove+Add but
// does not disturb descendants.
func (t *Tree) Move(node Node, newParent Node, index int) {
	if !t.present[node] {
		return
	}
	oldParent := t.parent[node]
	siblings := t.children[oldParent]
	for i, s := range siblings {
		if s == node {
			t.children[oldParent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	t.parent[node] = newParent
	newSiblings := t.children[newParent]
	if index < 0 || index >= len(newSiblings) {
		t.children[newParent] = append(newSiblings, node)
		return
	}
	newSiblings = append(newSiblings, nil)
	copy(newSiblings[index+1:], newSiblings[index:])
	newSiblings[index] = node
	t.children[newParent] = newSiblings
}

// GetParent returns node's parent, or nil if node is a root or absent.
func (t *Tree) GetParent(node Node) Node {
	return t.parent[node]
}

// GetChildren returns node's direct children in sibling order. A nil
// node means the root sentinel.
func (t *Tree) GetChildren(node Node) []Node {
	return append([]Node(nil), t.children[node]...)
}

// GetAncestors returns node's ancestors, nearest first.
func (t *Tree) GetAncestors(node Node) []Node {
	var out []Node
	cur, ok := t.parent[node]
	for ok && cur != nil {
		out = append(out, cur)
		cur, ok = t.parent[cur]
	}
	return out
}

// GetAllChildren returns all descendants of node in depth-first
// pre-order.
func (t *Tree) GetAllChildren(node Node) []Node {
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		for _, c := range t.children[n] {
			out = append(out, c)
			walk(c)
		}
	}
	walk(node)
	return out
}

// preOrder returns every node in the tree in depth-first pre-order,
// starting from the root sentinel (nil).
func (t *Tree) preOrder() []Node {
	return t.GetAllChildren(nil)
}

// Order sorts the given nodes by their depth-first pre-order position
// in the tree. Nodes not present in the tree are omitted. Order is a
// total function on the current tree.
func (t *Tree) Order(nodes []Node) []Node {
	pos := make(map[Node]int, len(t.present))
	for i, n := range t.preOrder() {
		pos[n] = i
	}
	filtered := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if t.present[n] {
			filtered = append(filtered, n)
		}
	}
	// stable insertion sort by position; trees are small enough in
	// practice (diagram scenes) that O(n log n) via sort.Slice is fine,
	// but we keep it dependency-light and explicit here.
	for i := 1; i < len(filtered); i++ {
		j := i
		for j > 0 && pos[filtered[j-1]] > pos[filtered[j]] {
			filtered[j-1], filtered[j] = filtered[j], filtered[j-1]
			j--
		}
	}
	return filtered
}
