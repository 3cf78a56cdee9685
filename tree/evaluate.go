package tree

import (
	"math"

	"github.com/pkg/errors"
)

/*
Apply takes a feature vector and returns the index of the leaf it
reaches, starting from the root.

Splits on categorical features send the sample left when the bit of its
category is set in the split mask, splits on numeric features when its
value is less than or equal to the split threshold. NaN values and
categories out of the mask always go right.

It returns an error wrapping ErrFeatureIndexOutOfRange if a node tests a
feature the vector does not have, or ErrMalformedTree if the node table
does not lead to a leaf.
*/
func (t *Tree) Apply(x []float64) (int, error) {
	if len(t.Nodes) == 0 {
		return 0, errors.Wrap(ErrMalformedTree, "empty tree")
	}
	i := 0
	for {
		n := &t.Nodes[i]
		if n.IsLeaf() {
			return i, nil
		}
		if n.Left == Leaf || n.Right == Leaf {
			return 0, errors.Wrapf(ErrMalformedTree, "internal node %d has a leaf child index", i)
		}
		if n.Feature < 0 || n.Feature >= len(x) {
			return 0, errors.Wrapf(ErrFeatureIndexOutOfRange, "node %d tests feature %d of %d", i, n.Feature, len(x))
		}
		next := n.Right
		if t.satisfies(n, x[n.Feature]) {
			next = n.Left
		}
		if next <= i || next >= len(t.Nodes) {
			return 0, errors.Wrapf(ErrMalformedTree, "node %d points to node %d", i, next)
		}
		i = next
	}
}

/*
Evaluate takes a feature vector and returns a copy of the class
distribution of the leaf it reaches. See Apply.
*/
func (t *Tree) Evaluate(x []float64) ([]float64, error) {
	i, err := t.Apply(x)
	if err != nil {
		return nil, err
	}
	if i >= len(t.Values) {
		return nil, errors.Wrapf(ErrMalformedTree, "leaf %d has no distribution", i)
	}
	result := make([]float64, len(t.Values[i]))
	copy(result, t.Values[i])
	return result, nil
}

func (t *Tree) satisfies(n *Node, v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if t.categorical(n.Feature) {
		if v < 0 || v >= MaxCategories {
			return false
		}
		return n.Split.Mask()&(1<<uint(v)) != 0
	}
	return v <= n.Split.Threshold()
}
