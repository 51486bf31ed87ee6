package ropes

// Copy-on-write.
//
// Every node carries the ownership token of the rope it has been created by.
// A node is private to a rope r if and only if node.owner == r.owner. As soon as
// nodes become reachable from a second rope, the receiver's token is retired, and
// from then on neither rope owns the shared nodes. Mutators write into a node only
// after the write barrier has made it private; all other nodes are read-only.

// Copy returns a rope holding the same text as r. This is an O(1) operation:
// the copy shares the complete tree with r. Both ropes may be mutated
// independently afterwards.
func (r *Rope) Copy() *Rope {
	if r == nil {
		return &Rope{}
	}
	c := &Rope{root: r.root, owner: newOwner(), cfg: r.cfg}
	r.share()
	return c
}

// share retires the ownership token of r. It is called whenever nodes of r are
// handed out to another rope.
func (r *Rope) share() {
	r.owner = newOwner()
}

// owns reports whether node n is private to r.
func (r *Rope) owns(n *node) bool {
	return n != nil && r.owner != nil && n.owner == r.owner
}

// writeBarrier has to be passed by every mutator before it touches the tree.
// It makes sure r has an ownership token. Nodes are not copied here; mutators
// either build fresh parents on top of existing subtrees, or call own / ownRightSpine
// for the nodes on their write path.
func (r *Rope) writeBarrier() {
	if r.owner == nil {
		r.owner = newOwner()
	}
}

// own returns n if it is private to r, and a private shallow clone of n otherwise.
func (r *Rope) own(n *node) *node {
	if r.owns(n) {
		return n
	}
	clone := *n
	clone.owner = r.owner
	return &clone
}

// ownRightSpine makes all nodes from the root down to the rightmost leaf private
// to r, cloning shared nodes on this path. It returns the rightmost leaf.
// r must not be void.
func (r *Rope) ownRightSpine() *node {
	assert(r.root != nil, "internal error: cannot own the spine of a void rope")
	copies := 0
	if !r.owns(r.root) {
		copies++
	}
	r.root = r.own(r.root)
	n := r.root
	for !n.isLeaf() {
		if !r.owns(n.right) {
			copies++
		}
		n.right = r.own(n.right)
		n = n.right
	}
	if copies > 0 {
		tracer().Debugf("rope copy-on-write: cloned %d shared nodes on write path", copies)
	}
	return n
}

// deepCopy clones the complete subtree starting at n. The clones are private
// to token o. Text fragments are immutable Go strings and therefore shared,
// but fragments longer than bound are cut into several leafs; n may stem from a
// rope with a different configuration.
func deepCopy(n *node, o *owner, bound int) *node {
	if n == nil {
		return nil
	}
	if n.isLeaf() && len(n.text) > bound {
		return buildTree(fragment(n.text, bound, o), o)
	}
	clone := *n
	clone.owner = o
	if !n.isLeaf() {
		clone.left = deepCopy(n.left, o, bound)
		clone.right = deepCopy(n.right, o, bound)
		clone.height = max(clone.left.height, clone.right.height) + 1
	}
	return &clone
}
