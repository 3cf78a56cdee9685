package json

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/pbanos/pmmltree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *tree.Tree {
	leaf := tree.Node{Left: tree.Leaf, Right: tree.Leaf, Feature: tree.Undefined, Split: tree.UndefinedSplit, Samples: 2, WeightedSamples: 2.5}
	return &tree.Tree{
		Nodes: []tree.Node{
			{Left: 1, Right: 2, Feature: 0, Split: tree.MaskSplit(^uint64(5)), Samples: 4, WeightedSamples: 4.5},
			{Left: 3, Right: 4, Feature: 1, Split: tree.ThresholdSplit(math.Nextafter(5, 0)), Samples: 2, WeightedSamples: 2},
			leaf,
			{Left: tree.Leaf, Right: tree.Leaf, Feature: tree.Undefined, Split: tree.UndefinedSplit, Samples: 1, WeightedSamples: 1},
			{Left: tree.Leaf, Right: tree.Leaf, Feature: tree.Undefined, Split: tree.UndefinedSplit, Samples: 1, WeightedSamples: 1},
		},
		Values:     [][]float64{{2, 2.5}, {1, 1}, {1, 1.5}, {1, 0}, {0, 1}},
		Classes:    []string{"yes", "no"},
		Categories: []int{3, -1},
	}
}

func TestWriteAndReadJSONTree(t *testing.T) {
	ctx := context.Background()
	ned := NewNodeEncodeDecoder()
	tr := testTree()

	buf := &bytes.Buffer{}
	require.NoError(t, WriteJSONTree(ctx, tr, ned, buf))
	assert.True(t, strings.HasPrefix(buf.String(), `{"classes":["yes","no"],"categories":[3,-1],"nodes":[`))

	read, err := ReadJSONTree(ctx, ned, buf)
	require.NoError(t, err)
	assert.Equal(t, tr, read)
}

func TestNodeEncodeDecoder(t *testing.T) {
	ned := NewNodeEncodeDecoder()
	n := &tree.Node{Left: 1, Right: 2, Feature: 3, Split: tree.ThresholdSplit(1.0), Samples: 7, WeightedSamples: 7.5}
	data, err := ned.Encode(n, []float64{7.5})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"s":"000000000000f03f"`)

	decoded, value, err := ned.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, n, decoded)
	assert.Equal(t, []float64{7.5}, value)

	_, _, err = ned.Decode([]byte(`{"s":"00"}`))
	assert.Error(t, err)
	_, _, err = ned.Decode([]byte(`{"s":"zz00000000000000"}`))
	assert.Error(t, err)
}

func TestReadJSONTreeErrors(t *testing.T) {
	ctx := context.Background()
	ned := NewNodeEncodeDecoder()
	_, err := ReadJSONTree(ctx, ned, strings.NewReader(`{"classes":["a"],"nodes":[]}`))
	assert.Error(t, err)
	_, err = ReadJSONTree(ctx, ned, strings.NewReader(`{"classes":["a"],"nodes":[null]}`))
	assert.Error(t, err)
	_, err = ReadJSONTree(ctx, ned, strings.NewReader(`{"classes":`))
	assert.Error(t, err)
}
