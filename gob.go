package balltree

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/hupe1980/balltree/geometry"
)

// nodeRecord is one node of the flattened tree. Interior nodes carry
// their ball; leaves carry their location (the ball centre) and item.
// Fields are exported so any codec can encode them.
type nodeRecord[T any] struct {
	Leaf   bool
	Centre []float64
	Radius float64
	Item   T `json:",omitempty"`
}

// treeState is the serialized form of a Tree: the node records are the
// pre-order flattening of the node graph. Pre-order is unambiguous for
// rebuilding because every interior node has exactly two children.
type treeState[T any] struct {
	Dimension int
	Count     int
	Nodes     []nodeRecord[T]
}

func (t *Tree[T]) state() treeState[T] {
	s := treeState[T]{
		Dimension: t.dimension,
		Count:     t.size,
		Nodes:     make([]nodeRecord[T], 0, 2*t.size),
	}
	var flatten func(n *node[T])
	flatten = func(n *node[T]) {
		rec := nodeRecord[T]{
			Leaf:   n.isLeaf(),
			Centre: n.ball.Centre,
			Radius: n.ball.Radius,
		}
		if rec.Leaf {
			rec.Item = n.item
		}
		s.Nodes = append(s.Nodes, rec)
		if !rec.Leaf {
			flatten(n.left)
			flatten(n.right)
		}
	}
	if t.root != nil {
		flatten(t.root)
	}
	return s
}

func (t *Tree[T]) restore(s treeState[T]) error {
	if s.Dimension < 1 || s.Dimension > geometry.MaxDimension {
		return &ErrInvalidDimension{Dimension: s.Dimension}
	}

	pos := 0
	var rebuild func(parent *node[T]) (*node[T], error)
	rebuild = func(parent *node[T]) (*node[T], error) {
		if pos >= len(s.Nodes) {
			return nil, fmt.Errorf("balltree: truncated node records at %d", pos)
		}
		rec := s.Nodes[pos]
		pos++
		if len(rec.Centre) != s.Dimension {
			return nil, &ErrDimensionMismatch{Expected: s.Dimension, Actual: len(rec.Centre)}
		}
		if rec.Leaf && rec.Radius != 0 {
			return nil, fmt.Errorf("balltree: leaf record %d has radius %v", pos-1, rec.Radius)
		}
		n := &node[T]{
			ball:   geometry.NewBall(rec.Centre, rec.Radius),
			parent: parent,
		}
		if rec.Leaf {
			n.item = rec.Item
			return n, nil
		}
		var err error
		if n.left, err = rebuild(n); err != nil {
			return nil, err
		}
		if n.right, err = rebuild(n); err != nil {
			return nil, err
		}
		return n, nil
	}

	var root *node[T]
	if len(s.Nodes) > 0 {
		var err error
		if root, err = rebuild(nil); err != nil {
			return err
		}
		if pos != len(s.Nodes) {
			return fmt.Errorf("balltree: %d trailing node records", len(s.Nodes)-pos)
		}
	}

	leaves := 0
	for _, rec := range s.Nodes {
		if rec.Leaf {
			leaves++
		}
	}
	if leaves != s.Count {
		return fmt.Errorf("balltree: leaf count %d does not match stored count %d", leaves, s.Count)
	}

	t.dimension = s.Dimension
	t.root = root
	t.size = s.Count
	return nil
}

// GobEncode implements gob.GobEncoder.
func (t *Tree[T]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)

	s := t.state()

	if err := encoder.Encode(s.Dimension); err != nil {
		return nil, err
	}

	if err := encoder.Encode(s.Count); err != nil {
		return nil, err
	}

	if err := encoder.Encode(s.Nodes); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder. Options configured on t are
// kept; only the tree contents are replaced.
func (t *Tree[T]) GobDecode(data []byte) error {
	decoder := gob.NewDecoder(bytes.NewBuffer(data))

	var s treeState[T]

	if err := decoder.Decode(&s.Dimension); err != nil {
		return err
	}

	if err := decoder.Decode(&s.Count); err != nil {
		return err
	}

	if err := decoder.Decode(&s.Nodes); err != nil {
		return err
	}

	return t.restore(s)
}
