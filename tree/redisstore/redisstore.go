/*
Package redisstore provides an implementation of tree.Store backed by a
Redis DB.

A tree is stored under two keys sharing a prefix: PREFIX:nodes, a list
with the encoded nodes in index order, and PREFIX:meta, a JSON object with
the classes, the feature categories and the node count of the tree.
*/
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pbanos/pmmltree/tree"
	"gopkg.in/redis.v5"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding nodes into slices of
bytes and decoding them back to nodes.
*/
type NodeEncodeDecoder interface {

	//Encode receives a *tree.Node and its distribution
	//and returns a slice of bytes with the node
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(*tree.Node, []float64) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a *tree.Node and its distribution
	//decoded from the slice of bytes or an error if
	//the decoding could not be performed for some reason.
	Decode([]byte) (*tree.Node, []float64, error)
}

type redisStore struct {
	rc      *redis.Client
	prefix  string
	nencdec NodeEncodeDecoder
}

type meta struct {
	Classes    []string `json:"classes"`
	Categories []int    `json:"categories"`
	Count      int      `json:"count"`
}

//New builds a tree.Store backed by a redis DB
func New(rc *redis.Client, prefix string, nencdec NodeEncodeDecoder) tree.Store {
	return &redisStore{rc, prefix, nencdec}
}

func (rs *redisStore) Save(ctx context.Context, t *tree.Tree) error {
	_, err := rs.rc.Del(rs.metaKey(), rs.nodesKey()).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", rs.prefix, err)
	}
	nodes := make([]interface{}, 0, len(t.Nodes))
	for i := range t.Nodes {
		if err = ctx.Err(); err != nil {
			return err
		}
		var value []float64
		if i < len(t.Values) {
			value = t.Values[i]
		}
		data, err := rs.nencdec.Encode(&t.Nodes[i], value)
		if err != nil {
			return fmt.Errorf("storing tree: encoding node %d: %v", i, err)
		}
		nodes = append(nodes, data)
	}
	if len(nodes) > 0 {
		_, err = rs.rc.RPush(rs.nodesKey(), nodes...).Result()
		if err != nil {
			return fmt.Errorf("storing nodes of tree %q in redis: %v", rs.prefix, err)
		}
	}
	data, err := json.Marshal(&meta{Classes: t.Classes, Categories: t.Categories, Count: len(t.Nodes)})
	if err != nil {
		return fmt.Errorf("storing tree: encoding metadata: %v", err)
	}
	_, err = rs.rc.Set(rs.metaKey(), data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing metadata of tree %q in redis: %v", rs.prefix, err)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context) (*tree.Tree, error) {
	data, err := rs.rc.Get(rs.metaKey()).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("no tree stored with prefix %q", rs.prefix)
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving metadata of tree %q: %v", rs.prefix, err)
	}
	m := &meta{}
	err = json.Unmarshal(data, m)
	if err != nil {
		return nil, fmt.Errorf("retrieving metadata of tree %q: decoding %q: %v", rs.prefix, data, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	encoded, err := rs.rc.LRange(rs.nodesKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("retrieving nodes of tree %q: %v", rs.prefix, err)
	}
	if len(encoded) != m.Count {
		return nil, fmt.Errorf("retrieving nodes of tree %q: expected %d nodes, found %d", rs.prefix, m.Count, len(encoded))
	}
	t := &tree.Tree{
		Classes:    m.Classes,
		Categories: m.Categories,
		Nodes:      make([]tree.Node, 0, len(encoded)),
		Values:     make([][]float64, 0, len(encoded)),
	}
	for i, e := range encoded {
		n, value, err := rs.nencdec.Decode([]byte(e))
		if err != nil {
			return nil, fmt.Errorf("retrieving node %d of tree %q: decoding %q: %v", i, rs.prefix, e, err)
		}
		t.Nodes = append(t.Nodes, *n)
		t.Values = append(t.Values, value)
	}
	return t, nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) metaKey() string {
	return fmt.Sprintf("%s:meta", rs.prefix)
}

func (rs *redisStore) nodesKey() string {
	return fmt.Sprintf("%s:nodes", rs.prefix)
}
