package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/pmmltree/tree"
)

/*
WriteJSONTree takes a context.Context, a pointer to a tree.Tree
a NodeEncodeDecoder and an io.Writer and serializes the given tree
as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
  - "classes": an array with the class labels of the distributions
  - "categories": an array with the category count of every feature
    (-1 for numeric features)
  - "nodes": an array containing the nodes of the tree in index order,
    serialized by the given NodeEncodeDecoder.
An error is returned if the context is done or the tree cannot be
serialized or written onto the io.Writer.
*/
func WriteJSONTree(ctx context.Context, t *tree.Tree, ned NodeEncodeDecoder, w io.Writer) error {
	err := marshalJSONTreeHeader(t, w)
	if err != nil {
		return err
	}
	for i := range t.Nodes {
		if err = ctx.Err(); err != nil {
			return err
		}
		var value []float64
		if i < len(t.Values) {
			value = t.Values[i]
		}
		err = writeNode(i, &t.Nodes[i], value, ned, w)
		if err != nil {
			return err
		}
	}
	return marshalJSONTreeFooter(w)
}

/*
ReadJSONTree takes a context.Context, a NodeEncodeDecoder and an
io.Reader and unmarshals a tree from the contents of the io.Reader.
The tree is expected to be serialized as WriteJSONTree does.
An error is returned if the JSON cannot be read from the io.Reader or
unmarshalled into a tree.
*/
func ReadJSONTree(ctx context.Context, ned NodeEncodeDecoder, r io.Reader) (*tree.Tree, error) {
	dec := json.NewDecoder(r)
	jt := &struct {
		Classes    []string           `json:"classes"`
		Categories []int              `json:"categories"`
		Nodes      []*json.RawMessage `json:"nodes"`
	}{}
	err := dec.Decode(jt)
	if err != nil {
		return nil, err
	}
	if len(jt.Nodes) == 0 {
		return nil, fmt.Errorf("no nodes available")
	}
	t := &tree.Tree{
		Classes:    jt.Classes,
		Categories: jt.Categories,
		Nodes:      make([]tree.Node, 0, len(jt.Nodes)),
		Values:     make([][]float64, 0, len(jt.Nodes)),
	}
	for i, jn := range jt.Nodes {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if jn == nil {
			return nil, fmt.Errorf("node %d is null", i)
		}
		n, value, err := ned.Decode(*jn)
		if err != nil {
			return nil, fmt.Errorf("node %d: %v", i, err)
		}
		t.Nodes = append(t.Nodes, *n)
		t.Values = append(t.Values, value)
	}
	return t, nil
}

func marshalJSONTreeHeader(t *tree.Tree, w io.Writer) error {
	jClasses, err := json.Marshal(t.Classes)
	if err != nil {
		return err
	}
	jCategories, err := json.Marshal(t.Categories)
	if err != nil {
		return err
	}
	header := fmt.Sprintf(`{"classes":%s,"categories":%s,"nodes":[`, jClasses, jCategories)
	_, err = w.Write([]byte(header))
	return err
}

func writeNode(i int, n *tree.Node, value []float64, ned NodeEncodeDecoder, w io.Writer) error {
	if i != 0 {
		_, err := w.Write([]byte(","))
		if err != nil {
			return err
		}
	}
	jn, err := ned.Encode(n, value)
	if err != nil {
		return err
	}
	_, err = w.Write(jn)
	return err
}

func marshalJSONTreeFooter(w io.Writer) error {
	_, err := w.Write([]byte(`]}`))
	return err
}
