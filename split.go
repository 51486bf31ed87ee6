package ropes

// Split splits a rope into two new ropes right before position i.
//
//	Split(R, i) => R1 = b0,...,bi-1  and  R2 = bi,...,bn
//
// Split never fails: for i outside of [0, r.Len()], and for any i on an empty
// rope, it returns two empty ropes. The receiver's text is left unchanged and
// both results share all untouched subtrees with it.
func (r *Rope) Split(i int) (*Rope, *Rope) {
	cfg := r.config()
	if r == nil || r.root == nil {
		return &Rope{cfg: cfg}, &Rope{cfg: cfg}
	}
	if i < 0 || i > r.Len() {
		tracer().Debugf("rope split: position %d out of range [0,%d]", i, r.Len())
		return &Rope{cfg: cfg}, &Rope{cfg: cfg}
	}
	lo, ro := newOwner(), newOwner()
	left, right := splitNode(r.root, i, lo, ro)
	r.share()
	return &Rope{root: left, owner: lo, cfg: cfg}, &Rope{root: right, owner: ro, cfg: cfg}
}

// splitNode partitions the subtree starting at n at local position i.
// Nodes are created only where the partition cuts through them; new nodes of
// the left result get token lo, new nodes of the right result get token ro.
// All other subtrees are shared with n. Either result may be nil.
//
// n is never modified.
func splitNode(n *node, i int, lo, ro *owner) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if n.isLeaf() {
		switch {
		case i <= 0:
			return nil, n
		case i >= len(n.text):
			return n, nil
		}
		return makeLeaf(n.text[:i], lo), makeLeaf(n.text[i:], ro)
	}
	w := n.weight
	switch {
	case i < w:
		l, r := splitNode(n.left, i, lo, ro)
		return l, makeInner(r, n.right, w-i, ro)
	case i == w:
		return n.left, n.right
	}
	l, r := splitNode(n.right, i-w, lo, ro)
	return makeInner(n.left, l, w, lo), r
}
