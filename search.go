package balltree

import (
	"context"
	"time"

	"github.com/hupe1980/balltree/geometry"
)

// NearestNeighbour returns the item whose location is closest to the
// query location. The second return is false when the tree is empty.
func (t *Tree[T]) NearestNeighbour(ctx context.Context, location []float64) (item T, found bool, err error) {
	start := time.Now()
	defer func() {
		t.opts.metrics.RecordSearch(1, time.Since(start), err)
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
	return leaf.item, true, nil
}

// nearestLeaf returns the leaf closest to location, or nil when the
// tree is empty. The caller has validated the location length.
func (t *Tree[T]) nearestLeaf(location []float64) *node[T] {
	if t.root == nil {
		return nil
	}

	// The initial query radius is large enough to cover every point in
	// the tree, so at least one leaf always qualifies. It then shrinks
	// monotonically as better candidates are found.
	s := &nnSearch[T]{
		location: location,
		radius:   geometry.Distance(location, t.root.ball.Centre) + t.root.ball.Radius,
	}
	s.search(t.root)
	return s.best
}

// nnSearch carries the mutable state of a single nearest-neighbour
// descent: the shrinking query radius and the best leaf so far.
type nnSearch[T any] struct {
	location []float64
	radius   float64
	best     *node[T]
}

func (s *nnSearch[T]) search(n *node[T]) {
	if n.isLeaf() {
		distance := geometry.Distance(s.location, n.ball.Centre)
		if distance <= s.radius {
			s.radius = distance
			s.best = n
		}
		return
	}

	distLeft := n.left.ball.NearestDistanceToCentre(s.location)
	distRight := n.right.ball.NearestDistanceToCentre(s.location)

	if distLeft > s.radius && distRight > s.radius {
		// Neither subtree can contain anything closer than the
		// current best.
		return
	}

	// Descend into the nearer child first so the radius shrinks as
	// early as possible, then revisit the farther child only if its
	// lower bound still beats the updated radius.
	if distLeft < distRight {
		s.search(n.left)
		if distRight < s.radius {
			s.search(n.right)
		}
	} else {
		s.search(n.right)
		if distLeft < s.radius {
			s.search(n.left)
		}
	}
}
