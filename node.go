package balltree

import "github.com/hupe1980/balltree/geometry"

// node is a tree node. Interior nodes own both children; leaves have
// nil children and carry the stored item. The parent pointer is a
// non-owning back-reference used only for upward repair walks.
//
// Only Insert creates nodes, and it creates either a zero-child leaf
// or a two-child interior, so a one-child node cannot exist.
type node[T any] struct {
	ball   geometry.Ball
	parent *node[T]
	left   *node[T]
	right  *node[T]
	item   T // set on leaves only
}

func (n *node[T]) isLeaf() bool { return n.left == nil }

// height returns the depth of the deepest leaf below n, with n itself
// at depth h.
func (n *node[T]) height(h int) int {
	if n.isLeaf() {
		return h
	}
	return max(n.left.height(h+1), n.right.height(h+1))
}
