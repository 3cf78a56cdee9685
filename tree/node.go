package tree

const (
	// Leaf is the child index of leaves.
	Leaf = -1
	// Undefined is the feature index of leaves.
	Undefined = -2
	// Impurity is the impurity of every node. Impurity is not computed,
	// the field is kept for consumers of the node table that expect it.
	Impurity = 0.0
)

/*
Node is an entry of the node table of a tree.
*/
type Node struct {
	// Index of the left child, the side of samples satisfying the split,
	// or Leaf.
	Left int
	// Index of the right child or Leaf.
	Right int
	// Index of the feature tested by the split or Undefined.
	Feature int
	// The split payload.
	Split Split
	Impurity float64
	// Number of training samples that reached the node.
	Samples uint64
	// Weighted number of training samples that reached the node.
	WeightedSamples float64
}

// IsLeaf returns whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == Leaf && n.Right == Leaf
}
