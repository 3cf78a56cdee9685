package tree

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

/*
Tree is a flattened binary classification tree: a node table in
pre-order, rooted at index 0, and a parallel table of class distributions.

Values[k] holds the weighted count of training samples of every class
(in the order of Classes) that reached Nodes[k]. Categories holds, for
every feature, the number of categories of the feature if categorical
or -1 if numeric; it tells how the split payloads testing the feature
must be read.

A Tree is read-only once built and can be shared by concurrent
evaluations.
*/
type Tree struct {
	Nodes      []Node
	Values     [][]float64
	Classes    []string
	Categories []int
}

// NodeCount returns the number of nodes of the tree.
func (t *Tree) NodeCount() int {
	return len(t.Nodes)
}

/*
MaxDepth returns the depth of the deepest leaf of the tree, the root
being at depth 0.
*/
func (t *Tree) MaxDepth() int {
	var max int
	t.Traverse(func(_ int, _ *Node, depth int) error {
		if depth > max {
			max = depth
		}
		return nil
	})
	return max
}

/*
Traverse goes through the tree in pre-order calling f with the index,
the node and the depth of every node. If f returns an error, the
traversing is aborted and the error is returned. An error wrapping
ErrMalformedTree is returned if a child index is out of the node table.
*/
func (t *Tree) Traverse(f func(i int, n *Node, depth int) error) error {
	if len(t.Nodes) == 0 {
		return nil
	}
	return t.traverse(0, 0, f)
}

func (t *Tree) traverse(i, depth int, f func(int, *Node, int) error) error {
	if i < 0 || i >= len(t.Nodes) {
		return errors.Wrapf(ErrMalformedTree, "node index %d out of range", i)
	}
	n := &t.Nodes[i]
	err := f(i, n, depth)
	if err != nil {
		return err
	}
	if n.IsLeaf() {
		return nil
	}
	if n.Left <= i || n.Right <= i {
		return errors.Wrapf(ErrMalformedTree, "node %d has children %d and %d", i, n.Left, n.Right)
	}
	err = t.traverse(n.Left, depth+1, f)
	if err != nil {
		return err
	}
	return t.traverse(n.Right, depth+1, f)
}

func (t *Tree) String() string {
	if len(t.Nodes) == 0 {
		return ""
	}
	return t.subtreeString(0)
}

func (t *Tree) subtreeString(i int) string {
	if i < 0 || i >= len(t.Nodes) {
		return fmt.Sprintf("ERROR: node %d out of range\n", i)
	}
	n := &t.Nodes[i]
	result := fmt.Sprintf("[%d]\n", i)
	if !n.IsLeaf() {
		result = fmt.Sprintf("%s{ %s }\n", result, t.splitString(n))
	}
	result = fmt.Sprintf("%s{ %v }\n", result, t.distributionString(i))
	if n.IsLeaf() {
		return fmt.Sprintf("%s \n", result)
	}
	result = fmt.Sprintf("%s|\n", result)
	for c, child := range []int{n.Left, n.Right} {
		for j, line := range strings.Split(t.subtreeString(child), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else if c == 1 {
					result = fmt.Sprintf("%s   %s\n", result, line)
				} else {
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
	}
	return result
}

func (t *Tree) splitString(n *Node) string {
	if t.categorical(n.Feature) {
		return fmt.Sprintf("x[%d] in %v", n.Feature, n.Split.Categories())
	}
	return fmt.Sprintf("x[%d] <= %v", n.Feature, n.Split.Threshold())
}

func (t *Tree) distributionString(i int) string {
	if len(t.Classes) != len(t.Values[i]) {
		return fmt.Sprintf("%v", t.Values[i])
	}
	parts := make([]string, len(t.Classes))
	for c, class := range t.Classes {
		parts[c] = fmt.Sprintf("%s:%v", class, t.Values[i][c])
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (t *Tree) categorical(feature int) bool {
	return feature >= 0 && feature < len(t.Categories) && t.Categories[feature] >= 0
}
