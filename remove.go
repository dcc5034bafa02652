package balltree

import (
	"context"
	"time"

	"github.com/hupe1980/balltree/geometry"
)

// Remove deletes the item stored at exactly the given location and
// returns it. The second return is false when the location is not
// stored; that is an ordinary outcome, not an error.
func (t *Tree[T]) Remove(ctx context.Context, location []float64) (item T, found bool, err error) {
	start := time.Now()
	defer func() {
		t.opts.metrics.RecordRemove(time.Since(start), err)
	}()

	var zero T
	if err = ctx.Err(); err != nil {
		return zero, false, err
	}
	if err = t.checkLocation(location); err != nil {
		return zero, false, err
	}

	leaf := t.nearestLeaf(location)
	if leaf == nil {
		return zero, false, nil
	}
	if geometry.SquaredDistance(leaf.ball.Centre, location) > 0.0 {
		// Nearest stored location is not an exact match.
		return zero, false, nil
	}

	item = leaf.item

	if leaf.parent == nil {
		// The root is a leaf; removing it empties the tree.
		t.root = nil
		t.size--
		t.opts.logger.Debug("removed root leaf", "size", t.size)
		return item, true, nil
	}

	// Excise the leaf and its parent in one step: the sibling takes
	// over the slot the parent occupied in the grandparent.
	oldParent := leaf.parent
	sibling := oldParent.left
	if sibling == leaf {
		sibling = oldParent.right
	}

	sibling.parent = oldParent.parent
	if oldParent.parent == nil {
		t.root = sibling
	} else if oldParent.parent.left == oldParent {
		oldParent.parent.left = sibling
	} else {
		oldParent.parent.right = sibling
	}

	if sibling.parent != nil {
		t.shrinkBalls(sibling.parent)
	}

	t.size--
	t.opts.logger.Debug("removed leaf", "size", t.size)
	return item, true, nil
}

// shrinkBalls recomputes every ball from n up to the root as the exact
// bounding ball of its children. Unlike growth repair there is no
// early exit: an ancestor that still encloses a now-smaller subtree
// may itself be able to shrink, so every ancestor is recomputed.
func (t *Tree[T]) shrinkBalls(n *node[T]) {
	for ; n != nil; n = n.parent {
		n.ball = geometry.BoundingBall(n.left.ball, n.right.ball)
	}
}
