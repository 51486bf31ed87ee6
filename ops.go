package ropes

import "fmt"

// Concat appends the text of other to r. other is left unchanged; r receives a
// private copy of other's tree, which makes
//
//	r.Concat(r)
//
// a legal operation, doubling the text of r.
func (r *Rope) Concat(other *Rope) {
	if other.IsVoid() {
		return
	}
	src := other.root // capture before r changes, other may be r
	r.writeBarrier()
	r.root = join(r.root, deepCopy(src, r.owner, r.config().FragmentBound), r.owner)
	r.autoBalance()
}

// Insert inserts the text of other into r at position i. If i is outside of
// [0, r.Len()], ErrIndexOutOfBounds is returned and r is left unchanged.
func (r *Rope) Insert(other *Rope, i int) error {
	if i < 0 || i > r.Len() {
		tracer().Debugf("rope insert: position %d out of range [0,%d]", i, r.Len())
		return fmt.Errorf("insert at %d: %w", i, ErrIndexOutOfBounds)
	}
	if other.IsVoid() {
		return nil
	}
	src := other.root
	r.writeBarrier()
	left, right := splitNode(r.root, i, r.owner, r.owner)
	mid := deepCopy(src, r.owner, r.config().FragmentBound)
	r.root = join(join(left, mid, r.owner), right, r.owner)
	r.autoBalance()
	return nil
}

// Erase removes the text in [start, end) from r. If start >= end, Erase does
// nothing. Positions outside of [0, r.Len()] result in ErrIndexOutOfBounds.
func (r *Rope) Erase(start, end int) error {
	if err := r.checkRange(start, end); err != nil {
		return fmt.Errorf("erase [%d,%d): %w", start, end, err)
	}
	if start >= end {
		return nil
	}
	r.writeBarrier()
	left, last := splitNode(r.root, end, r.owner, r.owner)
	first, _ := splitNode(left, start, r.owner, r.owner)
	r.root = join(first, last, r.owner)
	r.autoBalance()
	return nil
}

// SubString returns a new rope holding the text in [start, end) of r. If
// start >= end, the result is an empty rope. Positions outside of [0, r.Len()]
// result in ErrIndexOutOfBounds. r is left unchanged.
func (r *Rope) SubString(start, end int) (*Rope, error) {
	if err := r.checkRange(start, end); err != nil {
		return nil, fmt.Errorf("substring [%d,%d): %w", start, end, err)
	}
	cfg := r.config()
	if start >= end {
		return &Rope{cfg: cfg}, nil
	}
	o := newOwner()
	left, _ := splitNode(r.root, end, o, o)
	_, mid := splitNode(left, start, o, o)
	r.share()
	return &Rope{root: mid, owner: o, cfg: cfg}, nil
}

func (r *Rope) checkRange(start, end int) error {
	l := r.Len()
	if start < 0 || start > l || end < 0 || end > l {
		tracer().Debugf("rope: range [%d,%d) out of range [0,%d]", start, end, l)
		return ErrIndexOutOfBounds
	}
	return nil
}

// Append appends text to r. Different from Concat, Append will fill up the
// rightmost leaf of r, if it has room left.
func (r *Rope) Append(text string) {
	if len(text) == 0 {
		return
	}
	r.writeBarrier()
	bound := r.config().FragmentBound
	if r.root != nil {
		if room := bound - len(rightmostLeaf(r.root).text); room > 0 {
			leaf := r.ownRightSpine()
			k := min(room, len(text))
			leaf.text += text[:k]
			leaf.weight = len(leaf.text)
			text = text[k:]
		}
	}
	if len(text) > 0 {
		tail := buildTree(fragment(text, bound, r.owner), r.owner)
		r.root = join(r.root, tail, r.owner)
	}
	r.autoBalance()
}

func rightmostLeaf(n *node) *node {
	for !n.isLeaf() {
		n = n.right
	}
	return n
}

// Rebalance rebuilds the tree of r from its sequence of leafs, resulting in a
// tree of height O(log n). The text of r does not change.
func (r *Rope) Rebalance() {
	r.writeBarrier()
	if r.root == nil || r.root.isLeaf() {
		return
	}
	h := r.root.height
	r.root = buildTree(collectLeaves(r.root, nil), r.owner)
	tracer().Debugf("rope rebalance: height %d -> %d", h, r.root.height)
}

// autoBalance applies the rebalancing policy of r's configuration. It is called
// at the end of every mutating operation.
func (r *Rope) autoBalance() {
	cfg := r.config()
	if cfg.MaxHeight > 0 && r.Height() > cfg.MaxHeight {
		r.Rebalance()
	}
}
