package json

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/pbanos/pmmltree/tree"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding nodes along their class
distribution into slices of bytes and decoding
them back.
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

type nodeEncodeDecoder struct{}

type node struct {
	Left            int       `json:"l"`
	Right           int       `json:"r"`
	Feature         int       `json:"f"`
	Split           string    `json:"s"`
	Impurity        float64   `json:"imp"`
	Samples         uint64    `json:"n"`
	WeightedSamples float64   `json:"wn"`
	Value           []float64 `json:"v"`
}

/*
NewNodeEncodeDecoder returns a NodeEncodeDecoder that encodes nodes as JSON
objects with the following properties:
  - "l", "r": the indices of the left and right children
  - "f": the index of the tested feature
  - "s": the split payload as 16 hexadecimal digits
  - "imp", "n", "wn": the impurity and (weighted) sample counts
  - "v": the class distribution
*/
func NewNodeEncodeDecoder() NodeEncodeDecoder {
	return nodeEncodeDecoder{}
}

func (nodeEncodeDecoder) Encode(n *tree.Node, value []float64) ([]byte, error) {
	return json.Marshal(&node{
		Left:            n.Left,
		Right:           n.Right,
		Feature:         n.Feature,
		Split:           n.Split.String(),
		Impurity:        n.Impurity,
		Samples:         n.Samples,
		WeightedSamples: n.WeightedSamples,
		Value:           value,
	})
}

func (nodeEncodeDecoder) Decode(data []byte) (*tree.Node, []float64, error) {
	jn := &node{}
	err := json.Unmarshal(data, jn)
	if err != nil {
		return nil, nil, err
	}
	split, err := hex.DecodeString(jn.Split)
	if err != nil || len(split) != len(tree.Split{}) {
		return nil, nil, fmt.Errorf("unmarshalling node: invalid split %q", jn.Split)
	}
	n := &tree.Node{
		Left:            jn.Left,
		Right:           jn.Right,
		Feature:         jn.Feature,
		Impurity:        jn.Impurity,
		Samples:         jn.Samples,
		WeightedSamples: jn.WeightedSamples,
	}
	copy(n.Split[:], split)
	return n, jn.Value, nil
}
