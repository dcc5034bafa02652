package queue

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFringe(t *testing.T) {
	t.Run("PopEmpty", func(t *testing.T) {
		f := NewFringe[int](4)

		_, ok := f.Pop()
		assert.False(t, ok)
		assert.Zero(t, f.Len())
	})

	t.Run("PopsInAscendingExpansionOrder", func(t *testing.T) {
		f := NewFringe[string](4)
		f.Push(FringeItem[string]{AncestorExpansion: 3, Node: "c"})
		f.Push(FringeItem[string]{AncestorExpansion: 1, Node: "a"})
		f.Push(FringeItem[string]{AncestorExpansion: 2, Node: "b"})

		var order []string
		for {
			item, ok := f.Pop()
			if !ok {
				break
			}
			order = append(order, item.Node)
		}

		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("TieBreaksOnNodeVolume", func(t *testing.T) {
		f := NewFringe[string](4)
		f.Push(FringeItem[string]{AncestorExpansion: 1, NodeVolume: 9, Node: "large"})
		f.Push(FringeItem[string]{AncestorExpansion: 1, NodeVolume: 2, Node: "small"})

		item, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "small", item.Node)
	})

	t.Run("RandomizedOrdering", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		f := NewFringe[int](0)

		const n = 500
		keys := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			k := rng.Float64() * 100
			keys = append(keys, k)
			f.Push(FringeItem[int]{AncestorExpansion: k, Node: i})
		}

		sort.Float64s(keys)
		for i := 0; i < n; i++ {
			item, ok := f.Pop()
			require.True(t, ok)
			assert.Equal(t, keys[i], item.AncestorExpansion)
		}
	})
}

func TestKBest(t *testing.T) {
	t.Run("WorstEmpty", func(t *testing.T) {
		q := NewKBest[int](3)

		_, ok := q.Worst()
		assert.False(t, ok)
		assert.False(t, q.Full())
	})

	t.Run("FillsToCapacity", func(t *testing.T) {
		q := NewKBest[int](2)

		q.Push(Candidate[int]{Node: 1, Distance: 5})
		assert.False(t, q.Full())

		q.Push(Candidate[int]{Node: 2, Distance: 3})
		assert.True(t, q.Full())

		worst, ok := q.Worst()
		require.True(t, ok)
		assert.Equal(t, 5.0, worst.Distance)
	})

	t.Run("PushOnFullEvictsWorst", func(t *testing.T) {
		q := NewKBest[int](2)
		q.Push(Candidate[int]{Node: 1, Distance: 5})
		q.Push(Candidate[int]{Node: 2, Distance: 3})

		q.Push(Candidate[int]{Node: 3, Distance: 1})

		assert.Equal(t, 2, q.Len())
		worst, _ := q.Worst()
		assert.Equal(t, 3.0, worst.Distance)

		var nodes []int
		for _, c := range q.Items() {
			nodes = append(nodes, c.Node)
		}
		assert.ElementsMatch(t, []int{2, 3}, nodes)
	})

	t.Run("KeepsKSmallestOfRandomStream", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		const n, k = 1000, 10

		q := NewKBest[int](k)
		all := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			d := rng.Float64()
			all = append(all, d)

			if !q.Full() {
				q.Push(Candidate[int]{Node: i, Distance: d})
				continue
			}
			if worst, _ := q.Worst(); d < worst.Distance {
				q.Push(Candidate[int]{Node: i, Distance: d})
			}
		}

		sort.Float64s(all)
		kept := make([]float64, 0, k)
		for _, c := range q.Items() {
			kept = append(kept, c.Distance)
		}
		sort.Float64s(kept)

		assert.Equal(t, all[:k], kept)
	})
}
