package balltree

import (
	"github.com/hupe1980/balltree/geometry"
)

// Tree is an online ball tree storing items of type T at float64
// locations of a fixed dimension.
//
// A tree holding M items has exactly M leaves and, for M >= 2, M-1
// interior nodes. Locations are unique: inserting a location that is
// already stored is reported as a duplicate, not an error.
//
// Tree is not safe for concurrent use; callers must serialize access
// externally.
type Tree[T any] struct {
	dimension int
	root      *node[T]
	size      int

	opts options
}

// New creates a Tree for items at locations with the given number of
// dimensions. It fails with ErrInvalidDimension when the dimension is
// below 1 or above geometry.MaxDimension.
func New[T any](dimension int, optFns ...Option) (*Tree[T], error) {
	if dimension < 1 || dimension > geometry.MaxDimension {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Tree[T]{
		dimension: dimension,
		opts:      opts,
	}, nil
}

// Dimension returns the configured dimensionality of stored locations.
func (t *Tree[T]) Dimension() int {
	return t.dimension
}

// Size returns the number of stored items (the number of leaves).
func (t *Tree[T]) Size() int {
	return t.size
}

// Height returns the number of levels of the tree: -1 when empty, 0
// when the root is a single leaf, otherwise the depth of the deepest
// interior node.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return -1
	}
	if t.root.isLeaf() {
		return 0
	}
	return max(t.root.left.height(1), t.root.right.height(1))
}

// checkLocation validates the length of a caller-supplied location.
func (t *Tree[T]) checkLocation(location []float64) error {
	if len(location) != t.dimension {
		return &ErrDimensionMismatch{Expected: t.dimension, Actual: len(location)}
	}
	return nil
}
