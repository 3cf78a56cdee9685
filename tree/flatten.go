package tree

import (
	"math"
	"strconv"

	"github.com/pbanos/pmmltree/feature"
	"github.com/pbanos/pmmltree/pmml"
	"github.com/pkg/errors"
)

type builder struct {
	classes map[string]int
	mapping *feature.Mapping
	nodes   []Node
	values  [][]float64
}

/*
Flatten takes the root Node element of a document tree, the class labels
of the model and the field mapping and returns the flattened tree or an
error.

Nodes are indexed in pre-order: a node at index i has its left subtree
at i+1 and its right subtree right after the left one. Leaves take their
class distribution from their ScoreDistribution elements when they have
a recordCount, or a one-hot distribution for their score otherwise. The
distribution of an internal node is the sum of its children's ones.

Flattening may append categories to categorical fields of the mapping
tested by set predicates that list undeclared categories.
*/
func Flatten(root *pmml.Element, classes []string, m *feature.Mapping) (*Tree, error) {
	b := &builder{
		classes: make(map[string]int, len(classes)),
		mapping: m,
	}
	for i, c := range classes {
		b.classes[c] = i
	}
	_, err := b.flatten(root)
	if err != nil {
		return nil, err
	}
	cs := make([]string, len(classes))
	copy(cs, classes)
	return &Tree{
		Nodes:      b.nodes,
		Values:     b.values,
		Classes:    cs,
		Categories: m.CategoryCounts(),
	}, nil
}

// flatten appends the subtree of n to the node table and returns the
// index of its root.
func (b *builder) flatten(n *pmml.Element) (int, error) {
	i := len(b.nodes)
	b.nodes = append(b.nodes, Node{})
	b.values = append(b.values, nil)
	children := n.FindAll("Node")
	if len(children) == 0 {
		node, dist, err := b.leaf(n)
		if err != nil {
			return i, err
		}
		b.nodes[i], b.values[i] = node, dist
		return i, nil
	}
	if len(children) != 2 {
		return i, errors.Wrapf(ErrNonBinarySplit, "node %q has %d children", n.ID(), len(children))
	}
	// subtrees are flattened before a predicate error is reported so
	// errors surface bottom-up
	p, perr := ParsePredicate(children[0])
	first, second := children[0], children[1]
	if perr == nil && p.swapsBranches() {
		first, second = second, first
	}
	left, err := b.flatten(first)
	if err != nil {
		return i, err
	}
	right, err := b.flatten(second)
	if err != nil {
		return i, err
	}
	if perr != nil {
		return i, perr
	}
	enc, err := p.Encode(b.mapping)
	if err != nil {
		return i, errors.Wrapf(err, "node %q", children[0].ID())
	}
	dist := make([]float64, len(b.classes))
	var weighted float64
	for c := range dist {
		dist[c] = b.values[left][c] + b.values[right][c]
		weighted += dist[c]
	}
	b.nodes[i] = Node{
		Left:            left,
		Right:           right,
		Feature:         enc.Feature,
		Split:           enc.Split,
		Impurity:        Impurity,
		Samples:         uint64(math.Floor(weighted)),
		WeightedSamples: weighted,
	}
	b.values[i] = dist
	return i, nil
}

func (b *builder) leaf(n *pmml.Element) (Node, []float64, error) {
	node := Node{
		Left:     Leaf,
		Right:    Leaf,
		Feature:  Undefined,
		Split:    UndefinedSplit,
		Impurity: Impurity,
	}
	dist := make([]float64, len(b.classes))
	rc, ok := n.Attr("recordCount")
	sds := n.FindAll("ScoreDistribution")
	if ok && len(sds) > 0 {
		weighted, err := strconv.ParseFloat(rc, 64)
		if err != nil || weighted < 0 || math.IsNaN(weighted) {
			return node, nil, errors.Wrapf(ErrIncompleteLeafSpecification, "node %q: recordCount %q", n.ID(), rc)
		}
		for _, sd := range sds {
			value, _ := sd.Attr("value")
			c, ok := b.classes[value]
			if !ok {
				return node, nil, errors.Wrapf(ErrIncompleteLeafSpecification, "node %q: unknown class %q", n.ID(), value)
			}
			count, _ := sd.Attr("recordCount")
			v, err := strconv.ParseFloat(count, 64)
			if err != nil || v < 0 || math.IsNaN(v) {
				return node, nil, errors.Wrapf(ErrIncompleteLeafSpecification, "node %q: recordCount %q for class %q", n.ID(), count, value)
			}
			dist[c] += v
		}
		node.WeightedSamples = weighted
		node.Samples = uint64(math.Floor(weighted))
		return node, dist, nil
	}
	if score, ok := n.Attr("score"); ok {
		c, ok := b.classes[score]
		if !ok {
			return node, nil, errors.Wrapf(ErrIncompleteLeafSpecification, "node %q: unknown class %q", n.ID(), score)
		}
		dist[c] = 1.0
		return node, dist, nil
	}
	return node, nil, errors.Wrapf(ErrIncompleteLeafSpecification, "node %q: recordCount or score attributes expected", n.ID())
}

func (p *Predicate) swapsBranches() bool {
	return p.Kind == Threshold && (p.Operator == GreaterThan || p.Operator == GreaterOrEqual)
}
