package ropes

import "fmt"

// Check validates the structural invariants of a rope's tree:
// weights of inner nodes and leafs, the fragment bound, node heights, and
// that no node is reachable twice.
//
// Check is intended for tests and debugging. It visits every node.
func (r *Rope) Check() error {
	if r.IsVoid() {
		return nil
	}
	seen := make(map[*node]bool)
	_, _, err := checkNode(r.root, r.config().FragmentBound, seen)
	return err
}

func checkNode(n *node, bound int, seen map[*node]bool) (length int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", errMalformedTree)
	}
	if seen[n] {
		return 0, 0, fmt.Errorf("%w: node %v reachable twice", errMalformedTree, n)
	}
	seen[n] = true
	if n.isLeaf() {
		if len(n.text) == 0 {
			return 0, 0, fmt.Errorf("%w: empty leaf", errMalformedTree)
		}
		if len(n.text) > bound {
			return 0, 0, fmt.Errorf("%w: leaf of length %d exceeds fragment bound %d",
				errMalformedTree, len(n.text), bound)
		}
		if n.weight != len(n.text) {
			return 0, 0, fmt.Errorf("%w: leaf weight %d != length %d",
				errMalformedTree, n.weight, len(n.text))
		}
		if n.height != 1 {
			return 0, 0, fmt.Errorf("%w: leaf height %d", errMalformedTree, n.height)
		}
		return len(n.text), 1, nil
	}
	if n.left == nil || n.right == nil {
		return 0, 0, fmt.Errorf("%w: inner node with missing child", errMalformedTree)
	}
	ll, lh, err := checkNode(n.left, bound, seen)
	if err != nil {
		return 0, 0, err
	}
	rl, rh, err := checkNode(n.right, bound, seen)
	if err != nil {
		return 0, 0, err
	}
	if n.weight != ll {
		return 0, 0, fmt.Errorf("%w: inner weight %d != left length %d",
			errMalformedTree, n.weight, ll)
	}
	if n.height != max(lh, rh)+1 {
		return 0, 0, fmt.Errorf("%w: height mismatch (%d != %d)",
			errMalformedTree, n.height, max(lh, rh)+1)
	}
	return ll + rl, n.height, nil
}

// errMalformedTree is reported by Check. It is not part of the public error
// taxonomy: a malformed tree is an internal error of this package.
const errMalformedTree = RopeError("malformed rope tree")
