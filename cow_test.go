package ropes

import "testing"

func TestCopySharesTree(t *testing.T) {
	r := mustRope(t, lorem, 5)
	c := r.Copy()
	if c.root != r.root {
		t.Errorf("expected copy to share the root node")
	}
	if r.owns(r.root) || c.owns(c.root) {
		t.Errorf("expected shared root to be owned by neither rope")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	mutators := map[string]func(r *Rope){
		"concat":    func(r *Rope) { r.Concat(FromString("++")) },
		"insert":    func(r *Rope) { _ = r.Insert(FromString("++"), 7) },
		"erase":     func(r *Rope) { _ = r.Erase(3, 30) },
		"append":    func(r *Rope) { r.Append("++") },
		"rebalance": func(r *Rope) { r.Concat(FromString("+")); r.Rebalance() },
	}
	for name, mutate := range mutators {
		r := mustRope(t, lorem, 5)
		c := r.Copy()
		mutate(c)
		if r.String() != lorem {
			t.Errorf("%s: mutating the copy changed the original", name)
		}
		r = mustRope(t, lorem, 5)
		c = r.Copy()
		mutate(r)
		if c.String() != lorem {
			t.Errorf("%s: mutating the original changed the copy", name)
		}
		if err := r.Check(); err != nil {
			t.Errorf("%s: original is malformed: %v", name, err)
		}
	}
}

func TestAppendWritesInPlaceWhenPrivate(t *testing.T) {
	r := mustRope(t, "abcdef", 4)
	root, leaf := r.root, rightmostLeaf(r.root)
	r.Append("g")
	if r.root != root || rightmostLeaf(r.root) != leaf {
		t.Errorf("expected private nodes to be modified in place")
	}
	if leaf.text != "efg" {
		t.Errorf("expected rightmost leaf to hold 'efg', has %q", leaf.text)
	}
}

func TestAppendCopiesSharedPath(t *testing.T) {
	r := mustRope(t, "abcdef", 4)
	leaf := rightmostLeaf(r.root)
	c := r.Copy()
	c.Append("g")
	if c.String() != "abcdefg" || r.String() != "abcdef" {
		t.Fatalf("unexpected texts after append: %q / %q", c, r)
	}
	if leaf.text != "ef" {
		t.Errorf("shared leaf has been modified to %q", leaf.text)
	}
	if c.root.left != r.root.left {
		t.Errorf("expected the subtree off the write path to stay shared")
	}
}

func TestSplitResultsAreIndependent(t *testing.T) {
	r := mustRope(t, "abcdefghij", 4)
	l, rr := r.Split(6)
	l.Append("X")
	rr.Append("Y")
	if r.String() != "abcdefghij" {
		t.Errorf("mutating split results changed the original to %q", r)
	}
	r.Append("Z")
	if l.String() != "abcdefX" || rr.String() != "ghijY" {
		t.Errorf("unexpected split results %q | %q", l, rr)
	}
}

func TestSubStringIsIndependent(t *testing.T) {
	r := mustRope(t, "abcdef", 4)
	sub, err := r.SubString(0, 6)
	if err != nil {
		t.Fatal(err)
	}
	if rightmostLeaf(sub.root) != rightmostLeaf(r.root) {
		t.Fatalf("expected substring to share the rightmost leaf")
	}
	r.Append("g")
	if sub.String() != "abcdef" {
		t.Errorf("appending to the original changed the substring to %q", sub)
	}
}
