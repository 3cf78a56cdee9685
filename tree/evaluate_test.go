package tree

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf() Node {
	return Node{Left: Leaf, Right: Leaf, Feature: Undefined, Split: UndefinedSplit}
}

// stump tests feature 1, numeric with threshold 2, and feature 0,
// categorical with categories 0 and 3.
func stump() *Tree {
	return &Tree{
		Nodes: []Node{
			{Left: 1, Right: 4, Feature: 1, Split: ThresholdSplit(2)},
			{Left: 2, Right: 3, Feature: 0, Split: MaskSplit(1<<0 | 1<<3)},
			leaf(),
			leaf(),
			leaf(),
		},
		Values:     [][]float64{{3, 3}, {2, 1}, {2, 0}, {0, 1}, {1, 2}},
		Classes:    []string{"a", "b"},
		Categories: []int{4, -1},
	}
}

func TestApply(t *testing.T) {
	tr := stump()
	testCases := []struct {
		x    []float64
		leaf int
	}{
		{[]float64{0, 2}, 2},
		{[]float64{3, -1}, 2},
		{[]float64{1, 2}, 3},
		{[]float64{2, 0}, 3},
		{[]float64{math.NaN(), 0}, 3},
		{[]float64{64, 0}, 3},
		{[]float64{-1, 0}, 3},
		{[]float64{0, 2.5}, 4},
		{[]float64{0, math.NaN()}, 4},
	}
	for _, tc := range testCases {
		i, err := tr.Apply(tc.x)
		require.NoError(t, err, "%v", tc.x)
		assert.Equal(t, tc.leaf, i, "%v", tc.x)
	}
}

func TestEvaluateReturnsACopy(t *testing.T) {
	tr := stump()
	dist, err := tr.Evaluate([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0}, dist)
	dist[0] = 100
	assert.Equal(t, []float64{2, 0}, tr.Values[2])
}

func TestEvaluateErrors(t *testing.T) {
	tr := stump()
	_, err := tr.Evaluate([]float64{0})
	assert.True(t, errors.Is(err, ErrFeatureIndexOutOfRange))

	_, err = (&Tree{}).Evaluate([]float64{0})
	assert.True(t, errors.Is(err, ErrMalformedTree))

	tr = stump()
	tr.Nodes[1].Right = Leaf
	_, err = tr.Evaluate([]float64{0, 0})
	assert.True(t, errors.Is(err, ErrMalformedTree))

	tr = stump()
	tr.Nodes[0].Left = 0
	_, err = tr.Evaluate([]float64{0, 0})
	assert.True(t, errors.Is(err, ErrMalformedTree))

	tr = stump()
	tr.Nodes[0].Right = 10
	_, err = tr.Evaluate([]float64{0, 5})
	assert.True(t, errors.Is(err, ErrMalformedTree))

	tr = stump()
	tr.Values = tr.Values[:2]
	_, err = tr.Evaluate([]float64{0, 0})
	assert.True(t, errors.Is(err, ErrMalformedTree))
}

func TestTraverse(t *testing.T) {
	tr := stump()
	var order, depths []int
	err := tr.Traverse(func(i int, _ *Node, depth int) error {
		order = append(order, i)
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)
	assert.Equal(t, 2, tr.MaxDepth())

	stop := errors.New("stop")
	err = tr.Traverse(func(i int, _ *Node, _ int) error {
		if i == 1 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)

	tr.Nodes[1].Right = 7
	err = tr.Traverse(func(int, *Node, int) error { return nil })
	assert.True(t, errors.Is(err, ErrMalformedTree))
}

func TestString(t *testing.T) {
	s := stump().String()
	assert.Contains(t, s, "x[1] <= 2")
	assert.Contains(t, s, "x[0] in [0 3]")
	assert.Contains(t, s, "[a:2 b:0]")
	assert.Equal(t, "", (&Tree{}).String())
}
