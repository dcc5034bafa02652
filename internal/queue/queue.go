// Package queue provides the priority structures used by tree search:
// a min-ordered fringe for best-sibling branch-and-bound and a bounded
// worst-first queue for k-nearest-neighbour candidates.
//
// Both are value-based binary heaps (no container/heap interface
// indirection) for cache locality and zero per-push allocations.
package queue

// FringeItem is an unexplored interior node on the best-sibling search
// frontier. AncestorExpansion is the volume growth already committed by
// descending to this node's parent chain; NodeVolume is the volume the
// node's ball would grow to if the new leaf were paired beneath it.
type FringeItem[N any] struct {
	AncestorExpansion float64
	NodeVolume        float64
	Node              N
}

// Fringe is a min-queue of FringeItems ordered by AncestorExpansion,
// with NodeVolume as the tie-break.
type Fringe[N any] struct {
	items []FringeItem[N]
}

// NewFringe returns an empty fringe with the given capacity hint.
func NewFringe[N any](capacity int) *Fringe[N] {
	return &Fringe[N]{items: make([]FringeItem[N], 0, capacity)}
}

// Len returns the number of queued items.
func (f *Fringe[N]) Len() int { return len(f.items) }

// Push inserts an item while maintaining the heap invariant.
func (f *Fringe[N]) Push(item FringeItem[N]) {
	f.items = append(f.items, item)
	f.siftUp(len(f.items) - 1)
}

// Pop removes and returns the item with the smallest ancestor
// expansion. The second return is false when the fringe is empty.
func (f *Fringe[N]) Pop() (FringeItem[N], bool) {
	n := len(f.items)
	if n == 0 {
		var zero FringeItem[N]
		return zero, false
	}
	root := f.items[0]
	last := f.items[n-1]
	f.items[n-1] = FringeItem[N]{}
	f.items = f.items[:n-1]
	if n-1 > 0 {
		f.items[0] = last
		f.siftDown(0)
	}
	return root, true
}

func (f *Fringe[N]) less(i, j int) bool {
	if f.items[i].AncestorExpansion != f.items[j].AncestorExpansion {
		return f.items[i].AncestorExpansion < f.items[j].AncestorExpansion
	}
	return f.items[i].NodeVolume < f.items[j].NodeVolume
}

func (f *Fringe[N]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !f.less(i, p) {
			return
		}
		f.items[i], f.items[p] = f.items[p], f.items[i]
		i = p
	}
}

func (f *Fringe[N]) siftDown(i int) {
	n := len(f.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && f.less(r, l) {
			best = r
		}
		if !f.less(best, i) {
			return
		}
		f.items[i], f.items[best] = f.items[best], f.items[i]
		i = best
	}
}

// Candidate is a k-nearest-neighbour candidate with its exact distance
// to the query.
type Candidate[N any] struct {
	Node     N
	Distance float64
}

// KBest holds up to k candidates ordered so the worst (largest
// distance) is at the top, ready for eviction when a better candidate
// arrives.
type KBest[N any] struct {
	k     int
	items []Candidate[N]
}

// NewKBest returns an empty bounded queue holding at most k candidates.
func NewKBest[N any](k int) *KBest[N] {
	return &KBest[N]{k: k, items: make([]Candidate[N], 0, k)}
}

// Len returns the number of stored candidates.
func (q *KBest[N]) Len() int { return len(q.items) }

// Full reports whether the queue holds k candidates.
func (q *KBest[N]) Full() bool { return len(q.items) == q.k }

// Worst returns the stored candidate with the largest distance. The
// second return is false when the queue is empty.
func (q *KBest[N]) Worst() (Candidate[N], bool) {
	if len(q.items) == 0 {
		var zero Candidate[N]
		return zero, false
	}
	return q.items[0], true
}

// Push inserts a candidate, evicting the current worst when the queue
// is already full. Callers must have checked that the candidate beats
// the current worst before pushing into a full queue.
func (q *KBest[N]) Push(c Candidate[N]) {
	if q.Full() {
		q.items[0] = c
		q.siftDown(0)
		return
	}
	q.items = append(q.items, c)
	q.siftUp(len(q.items) - 1)
}

// Items returns the stored candidates in heap order. The order is not
// sorted by distance; callers requiring sorted output must sort.
func (q *KBest[N]) Items() []Candidate[N] { return q.items }

func (q *KBest[N]) less(i, j int) bool {
	return q.items[i].Distance > q.items[j].Distance
}

func (q *KBest[N]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *KBest[N]) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
