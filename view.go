package ropes

// Node is a read-only view of a node of a rope's tree.
//
// It is intended as a stable API surface for diagnostic code, such as tree
// printers, so callers do not need to depend on rope internals. A Node is
// either a leaf carrying a text fragment, or an inner node with two children.
// The zero Node is the view of an absent node, e.g. the root of an empty rope.
type Node struct {
	n *node
}

// Root returns a view of the root node of r.
func (r *Rope) Root() Node {
	if r == nil {
		return Node{}
	}
	return Node{n: r.root}
}

// IsNil reports whether the node is absent.
func (v Node) IsNil() bool {
	return v.n == nil
}

// IsLeaf reports whether the node is a leaf.
func (v Node) IsLeaf() bool {
	return v.n != nil && v.n.isLeaf()
}

// Weight returns the length of a leaf's fragment, or the length of an inner
// node's left subtree.
func (v Node) Weight() int {
	if v.n == nil {
		return 0
	}
	return v.n.weight
}

// Height returns the height of the subtree starting at this node.
func (v Node) Height() int {
	if v.n == nil {
		return 0
	}
	return v.n.height
}

// Left returns the left child. Leafs have no children.
func (v Node) Left() Node {
	if v.n == nil {
		return Node{}
	}
	return Node{n: v.n.left}
}

// Right returns the right child. Leafs have no children.
func (v Node) Right() Node {
	if v.n == nil {
		return Node{}
	}
	return Node{n: v.n.right}
}

// Content returns the text fragment of a leaf, or "" for inner nodes.
func (v Node) Content() string {
	if v.n == nil {
		return ""
	}
	return v.n.text
}
