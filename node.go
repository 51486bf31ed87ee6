package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// A rope builds a binary tree structure on top of text fragments. Some
// invariants hold for every node reachable from a rope:
//
//   * The weight of an inner node is equal to the total length of its *left* subtree.
//   * The weight of a leaf is equal to the length of the fragment it carries,
//     which is never empty and never longer than the fragment bound.
//   * Inner nodes always have two children.
//   * The height of a node is the maximum of its children's heights, plus 1.
//     Leafs have height 1.
//   * The total length of a subtree starting at node N is N's weight plus the
//     weights of the straight line of right children down to the rightmost leaf.
//
// We do not keep a reference to the parent node. This makes some algorithms a bit
// more cumbersome, but lets ropes share subtrees.

// owner is an ownership token. A node may be modified in place only by the rope
// holding the token the node was created with.
type owner struct {
	_ byte // distinct allocations must have distinct addresses
}

func newOwner() *owner {
	return &owner{}
}

// node is either a leaf (no children, text set) or an inner node (both children set).
type node struct {
	left, right *node
	weight      int
	height      int
	text        string
	owner       *owner
}

func makeLeaf(text string, o *owner) *node {
	assert(len(text) > 0, "internal error: leaf without text")
	return &node{
		weight: len(text),
		height: 1,
		text:   text,
		owner:  o,
	}
}

// makeInner creates an inner node. weight has to be the length of left; callers
// usually know it already, and re-calculating it is an O(log n) operation.
func makeInner(left, right *node, weight int, o *owner) *node {
	assert(left != nil && right != nil, "internal error: inner node with missing child")
	return &node{
		left:   left,
		right:  right,
		weight: weight,
		height: max(left.height, right.height) + 1,
		owner:  o,
	}
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// length returns the total text length of the subtree starting at n.
func (n *node) length() int {
	l := 0
	for n != nil {
		l += n.weight
		if n.isLeaf() {
			break
		}
		n = n.right
	}
	return l
}

func (n *node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.isLeaf() {
		return n.text
	}
	return fmt.Sprintf("<inner %d|%d>", n.weight, n.height)
}

// join creates a parent for left and right. Either of them may be nil, in which
// case the other one is returned unchanged.
func join(left, right *node, o *owner) *node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return makeInner(left, right, left.length(), o)
}

// collectLeaves appends the leafs of the subtree starting at n in-order.
func collectLeaves(n *node, leaves []*node) []*node {
	if n == nil {
		return leaves
	}
	if n.isLeaf() {
		return append(leaves, n)
	}
	leaves = collectLeaves(n.left, leaves)
	return collectLeaves(n.right, leaves)
}

// traverse visits the nodes of the subtree starting at n in pre-order.
// pos is the text position of the subtree's first character.
func traverse(n *node, pos int, depth int, f func(n *node, pos int, depth int) error) error {
	if n == nil {
		return nil
	}
	if err := f(n, pos, depth); err != nil {
		return err
	}
	if n.isLeaf() {
		return nil
	}
	if err := traverse(n.left, pos, depth+1, f); err != nil {
		return err
	}
	return traverse(n.right, pos+n.weight, depth+1, f)
}
