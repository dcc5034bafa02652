package balltree

import (
	"context"
	"slices"
	"time"

	"github.com/hupe1980/balltree/geometry"
	"github.com/hupe1980/balltree/internal/queue"
)

// Insert stores item at the given location. It returns true when the
// item was inserted and false when the location is already stored (the
// tree is left unchanged). Inserting a nil item fails with ErrNilItem;
// a location whose length differs from the tree's dimension fails with
// ErrDimensionMismatch.
//
// The location slice is copied; callers may reuse it.
func (t *Tree[T]) Insert(ctx context.Context, location []float64, item T) (inserted bool, err error) {
	start := time.Now()
	defer func() {
		t.opts.metrics.RecordInsert(time.Since(start), err)
	}()

	if err = ctx.Err(); err != nil {
		return false, err
	}
	if isNilItem(item) {
		return false, ErrNilItem
	}
	if err = t.checkLocation(location); err != nil {
		return false, err
	}

	newLeaf := &node[T]{
		ball: geometry.NewPoint(slices.Clone(location)),
		item: item,
	}

	if t.root == nil {
		t.root = newLeaf
		t.size++
		t.opts.logger.Debug("inserted root leaf", "size", t.size)
		return true, nil
	}

	sibling := t.bestSibling(newLeaf)
	parentBall := geometry.BoundingBall(sibling.ball, newLeaf.ball)
	if parentBall.Volume == 0.0 {
		// A zero-volume pairing means both balls are coincident
		// zero-radius points: the location is already stored.
		t.opts.logger.Debug("duplicate location rejected", "size", t.size)
		return false, nil
	}

	// Splice the new interior node into the slot the sibling occupied.
	newParent := &node[T]{
		ball:   parentBall,
		parent: sibling.parent,
		left:   sibling,
		right:  newLeaf,
	}
	if newParent.parent == nil {
		t.root = newParent
	} else if sibling.parent.left == sibling {
		sibling.parent.left = newParent
	} else {
		sibling.parent.right = newParent
	}
	sibling.parent = newParent
	newLeaf.parent = newParent

	t.repairParents(newParent)
	t.size++
	t.opts.logger.Debug("inserted leaf", "size", t.size)
	return true, nil
}

// bestSibling returns the existing node whose pairing with newLeaf
// minimizes total volume growth: the pair's bounding-ball volume plus
// the expansion forced on every ancestor up to the root.
//
// The search keeps a min-fringe of interior nodes keyed by the
// expansion already committed on the path to them. That key is a
// non-decreasing lower bound on the cost of any deeper candidate, so
// the loop terminates as soon as the smallest key cannot beat the best
// cost found so far.
func (t *Tree[T]) bestSibling(newLeaf *node[T]) *node[T] {
	best := t.root
	bestCost := geometry.BoundingBall(t.root.ball, newLeaf.ball).Volume

	fringe := queue.NewFringe[*node[T]](16)
	if !t.root.isLeaf() {
		fringe.Push(queue.FringeItem[*node[T]]{
			AncestorExpansion: 0,
			NodeVolume:        bestCost,
			Node:              t.root,
		})
	}

	for {
		item, ok := fringe.Pop()
		if !ok || item.AncestorExpansion >= bestCost {
			break
		}

		// The increment in cost attributable to descending past this
		// node rather than stopping at it.
		expansion := item.AncestorExpansion + item.NodeVolume - item.Node.ball.Volume

		for _, child := range [2]*node[T]{item.Node.left, item.Node.right} {
			volume := geometry.BoundingBall(child.ball, newLeaf.ball).Volume
			if volume+expansion < bestCost {
				bestCost = volume + expansion
				best = child
			}
			if !child.isLeaf() {
				fringe.Push(queue.FringeItem[*node[T]]{
					AncestorExpansion: expansion,
					NodeVolume:        volume,
					Node:              child,
				})
			}
		}
	}

	return best
}

// repairParents walks from n toward the root, growing each ancestor
// ball that no longer encloses its updated child. Once an ancestor
// already strictly encloses the child, all higher ancestors do too,
// so the walk stops early.
func (t *Tree[T]) repairParents(n *node[T]) {
	for ; n.parent != nil; n = n.parent {
		if n.parent.ball.Encloses(n.ball) {
			return
		}
		n.parent.ball = geometry.BoundingBall(n.parent.ball, n.ball)
	}
}
