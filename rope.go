package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"iter"
)

// Rope is a mutable text, organized as a weighted binary tree of text fragments.
//
// A rope created by
//
//	&Rope{}
//
// is a valid object and behaves like the empty string.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go strings or byte arrays.
//
//	Operation     |   Rope          |  String
//	--------------+-----------------+--------
//	Index         |   O(log n)      |   O(1)
//	Split         |   O(log n)      |   O(1)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(m)          |   O(n+m)
//	Insert        |   O(log n + m)  |   O(n+m)
//	Delete        |   O(log n)      |   O(n)
//
// (m is the length of the text being concatenated or inserted, which is
// copied to keep ropes independent of each other.)
//
// Ropes must not be copied by value; use Copy, which is O(1).
type Rope struct {
	root  *node
	owner *owner // ownership token, see package documentation
	cfg   Config
}

// FromString creates a rope from a Go string, using the default configuration.
func FromString(s string) *Rope {
	r, err := FromStringWithConfig(s, DefaultConfig())
	assert(err == nil, "FromString: default configuration is invalid")
	return r
}

// FromStringWithConfig creates a rope from a Go string. The text is cut into
// leafs of at most cfg.FragmentBound bytes, which are then combined into a
// balanced tree.
func FromStringWithConfig(s string, cfg Config) (*Rope, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	o := newOwner()
	return &Rope{
		root:  buildTree(fragment(s, cfg.FragmentBound, o), o),
		owner: o,
		cfg:   cfg,
	}, nil
}

func (r *Rope) config() Config {
	if r == nil {
		return DefaultConfig()
	}
	return r.cfg.normalized()
}

// Config returns the configuration of a rope.
func (r *Rope) Config() Config {
	return r.config()
}

// String returns the rope as a Go string, i.e. the in-order concatenation of all
// text fragments. This may be an expensive operation, as it will allocate a
// buffer for the complete text.
func (r *Rope) String() string {
	if r.IsVoid() {
		return ""
	}
	var bf bytes.Buffer
	bf.Grow(r.Len())
	for _, leaf := range collectLeaves(r.root, nil) {
		bf.WriteString(leaf.text)
	}
	return bf.String()
}

// IsVoid returns true if r is "".
func (r *Rope) IsVoid() bool {
	return r == nil || r.root == nil
}

// Len returns the length of a rope in bytes.
func (r *Rope) Len() int {
	if r == nil {
		return 0
	}
	return r.root.length()
}

// Height returns the height of a rope's tree. An empty rope has height 0,
// a rope consisting of a single leaf has height 1.
func (r *Rope) Height() int {
	if r.IsVoid() {
		return 0
	}
	return r.root.height
}

// FragmentCount returns the number of leafs this rope is internally split into.
func (r *Rope) FragmentCount() int {
	cnt := 0
	_ = r.EachLeaf(func(string, int) error {
		cnt++
		return nil
	})
	return cnt
}

// At returns the byte at position i. If i is outside of [0, r.Len()), At
// returns false and no error is signalled.
func (r *Rope) At(i int) (byte, bool) {
	if i < 0 || i >= r.Len() {
		return 0, false
	}
	n := r.root
	for !n.isLeaf() {
		if i < n.weight {
			n = n.left
		} else {
			i -= n.weight
			n = n.right
		}
	}
	return n.text[i], true
}

// Equals reports whether two ropes hold the same text. The tree shapes of
// a and b do not matter.
func (r *Rope) Equals(other *Rope) bool {
	if r.Len() != other.Len() {
		return false
	}
	return r.String() == other.String()
}

// sameShape reports whether two subtrees are structurally equal, i.e. consist
// of the same leafs in the same tree layout, with equal weights.
// This is a diagnostic helper to verify rebalancing and copying.
func sameShape(a, b *node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.isLeaf() {
		return b.isLeaf() && a.text == b.text && a.weight == b.weight
	}
	return !b.isLeaf() && a.weight == b.weight &&
		sameShape(a.left, b.left) && sameShape(a.right, b.right)
}

// EachLeaf iterates over all text fragments of the rope in-order.
// The callback receives each fragment and its starting position. Iteration
// stops at the first callback error and returns that error to the caller.
func (r *Rope) EachLeaf(f func(frag string, pos int) error) error {
	if r.IsVoid() {
		return nil
	}
	return traverse(r.root, 0, 0, func(n *node, pos int, _ int) error {
		if n.isLeaf() {
			return f(n.text, pos)
		}
		return nil
	})
}

// RangeLeaf returns an iterator over all text fragments in logical order.
func (r *Rope) RangeLeaf() iter.Seq[string] {
	return func(yield func(string) bool) {
		if r.IsVoid() {
			return
		}
		rangeLeaf(r.root, yield)
	}
}

func rangeLeaf(n *node, yield func(string) bool) bool {
	if n.isLeaf() {
		return yield(n.text)
	}
	return rangeLeaf(n.left, yield) && rangeLeaf(n.right, yield)
}

// Report outputs a substring: Report(i,l) => outputs the string bi,...,bi+l-1.
// If [i, i+l) is not a valid range of r, ErrIndexOutOfBounds is returned.
func (r *Rope) Report(i, l int) (string, error) {
	if i < 0 || l < 0 || i > r.Len() || l > r.Len()-i {
		return "", ErrIndexOutOfBounds
	}
	if l == 0 {
		return "", nil
	}
	var bf bytes.Buffer
	bf.Grow(l)
	report(r.root, i, i+l, &bf)
	return bf.String(), nil
}

// report writes the text in [i, j) of the subtree starting at n.
// Nothing is allocated in the tree, and n is not shared with anybody.
func report(n *node, i, j int, bf *bytes.Buffer) {
	if n.isLeaf() {
		bf.WriteString(n.text[max(i, 0):min(j, len(n.text))])
		return
	}
	w := n.weight
	if i < w {
		report(n.left, i, min(j, w), bf)
	}
	if j > w {
		report(n.right, max(i-w, 0), j-w, bf)
	}
}
