package ropes

import "testing"

func TestSplitExample(t *testing.T) {
	r := mustRope(t, "ABCDEF", 5)
	l, rr := r.Split(3)
	if l.String() != "ABC" || rr.String() != "DEF" {
		t.Fatalf("unexpected split result: %q | %q", l, rr)
	}
	l, rr = r.Split(2)
	if l.String() != "AB" || rr.String() != "CDEF" {
		t.Fatalf("unexpected split result: %q | %q", l, rr)
	}
	if r.String() != "ABCDEF" {
		t.Errorf("split changed the original rope to %q", r)
	}
}

func TestSplitAllPositions(t *testing.T) {
	r := mustRope(t, lorem, 5)
	for i := 0; i <= len(lorem); i++ {
		l, rr := r.Split(i)
		if l.String() != lorem[:i] || rr.String() != lorem[i:] {
			t.Fatalf("split at %d: unexpected result %q | %q", i, l, rr)
		}
		if err := l.Check(); err != nil {
			t.Fatalf("split at %d: left is malformed: %v", i, err)
		}
		if err := rr.Check(); err != nil {
			t.Fatalf("split at %d: right is malformed: %v", i, err)
		}
	}
	if r.String() != lorem {
		t.Errorf("split changed the original rope")
	}
}

func TestSplitOutOfRange(t *testing.T) {
	r := mustRope(t, "Hello World", 5)
	for _, i := range []int{-1, -100, r.Len() + 1} {
		l, rr := r.Split(i)
		if !l.Root().IsNil() || !rr.Root().IsNil() {
			t.Errorf("split at %d: expected two empty ropes, have %q | %q", i, l, rr)
		}
	}
	if r.String() != "Hello World" {
		t.Errorf("split changed the original rope")
	}
}

func TestSplitEmpty(t *testing.T) {
	l, rr := (&Rope{}).Split(0)
	if !l.IsVoid() || !rr.IsVoid() || l.String() != "" || rr.String() != "" {
		t.Errorf("expected empty ropes from splitting an empty rope")
	}
}

func TestSplitAtNodeBoundarySharesSubtrees(t *testing.T) {
	r := mustRope(t, "ABCDEFGHIJ", 5)
	left, right := r.root.left, r.root.right
	l, rr := r.Split(5)
	if l.root != left || rr.root != right {
		t.Errorf("expected split at the root's weight to return its children")
	}
	l, rr = r.Split(7)
	if l.root.left != left {
		t.Errorf("expected untouched left subtree to be shared")
	}
	if rr.String() != "HIJ" {
		t.Errorf("unexpected right part %q", rr)
	}
}

func TestSplitResultsInheritConfig(t *testing.T) {
	r := mustRope(t, "Hello World", 3)
	l, rr := r.Split(4)
	if l.Config().FragmentBound != 3 || rr.Config().FragmentBound != 3 {
		t.Errorf("expected split results to inherit fragment bound 3")
	}
}
