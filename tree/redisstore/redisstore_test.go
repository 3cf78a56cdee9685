package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/pbanos/pmmltree/tree"
	"github.com/pbanos/pmmltree/tree/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/redis.v5"
)

func testStore(t *testing.T, prefix string) tree.Store {
	addr := os.Getenv("PMMLTREE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PMMLTREE_TEST_REDIS_ADDR is not set")
	}
	rc := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rc.Ping().Err())
	return New(rc, prefix, json.NewNodeEncodeDecoder())
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := testStore(t, "pmmltree-test")
	defer store.Close(ctx)

	leaf := tree.Node{Left: tree.Leaf, Right: tree.Leaf, Feature: tree.Undefined, Split: tree.UndefinedSplit, Samples: 1, WeightedSamples: 1}
	tr := &tree.Tree{
		Nodes:      []tree.Node{{Left: 1, Right: 2, Feature: 0, Split: tree.MaskSplit(3), Samples: 2, WeightedSamples: 2}, leaf, leaf},
		Values:     [][]float64{{1, 1}, {1, 0}, {0, 1}},
		Classes:    []string{"yes", "no"},
		Categories: []int{2},
	}
	require.NoError(t, store.Save(ctx, tr))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tr, loaded)

	tr.Nodes = tr.Nodes[1:2]
	tr.Values = tr.Values[1:2]
	require.NoError(t, store.Save(ctx, tr))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tr, loaded)
}

func TestLoadMissing(t *testing.T) {
	ctx := context.Background()
	store := testStore(t, "pmmltree-test-missing")
	defer store.Close(ctx)
	_, err := store.Load(ctx)
	assert.Error(t, err)
}
