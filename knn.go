package balltree

import (
	"context"
	"time"

	"github.com/hupe1980/balltree/geometry"
	"github.com/hupe1980/balltree/internal/queue"
)

// KNearestNeighbours returns the items at the min(k, Size()) locations
// closest to the query location. The order of the returned items is
// unspecified; callers requiring distance order must sort explicitly.
// An empty tree yields an empty result. k below 1 fails with
// ErrInvalidK.
func (t *Tree[T]) KNearestNeighbours(ctx context.Context, location []float64, k int) (items []T, err error) {
	start := time.Now()
	defer func() {
		t.opts.metrics.RecordSearch(k, time.Since(start), err)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	if err = t.checkLocation(location); err != nil {
		return nil, err
	}
	if t.root == nil {
		return nil, nil
	}

	s := &knnSearch[T]{
		location: location,
		radius:   geometry.Distance(location, t.root.ball.Centre) + t.root.ball.Radius,
		best:     queue.NewKBest[*node[T]](k),
	}
	s.search(t.root)

	items = make([]T, 0, s.best.Len())
	for _, c := range s.best.Items() {
		items = append(items, c.Node.item)
	}
	return items, nil
}

// knnSearch carries the state of a k-nearest-neighbour descent. The
// pruning radius stays at its covering initial value until the
// candidate queue first fills, then tracks the worst stored distance.
type knnSearch[T any] struct {
	location []float64
	radius   float64
	best     *queue.KBest[*node[T]]
}

func (s *knnSearch[T]) search(n *node[T]) {
	if n.isLeaf() {
		distance := geometry.Distance(s.location, n.ball.Centre)
		switch {
		case !s.best.Full():
			s.best.Push(queue.Candidate[*node[T]]{Node: n, Distance: distance})
			if s.best.Full() {
				worst, _ := s.best.Worst()
				s.radius = worst.Distance
			}
		case distance <= s.radius:
			// Evict the current worst and tighten the radius.
			s.best.Push(queue.Candidate[*node[T]]{Node: n, Distance: distance})
			worst, _ := s.best.Worst()
			s.radius = worst.Distance
		}
		return
	}

	distLeft := n.left.ball.NearestDistanceToCentre(s.location)
	distRight := n.right.ball.NearestDistanceToCentre(s.location)

	if distLeft > s.radius && distRight > s.radius {
		return
	}

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
