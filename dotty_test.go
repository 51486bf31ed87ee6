package ropes

import (
	"bytes"
	"strings"
	"testing"
)

func TestRope2Dot(t *testing.T) {
	r := mustRope(t, "Hello \"World\"", 5)
	var bf bytes.Buffer
	if err := Rope2Dot(r, &bf); err != nil {
		t.Fatalf("Rope2Dot failed: %v", err)
	}
	dot := bf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT graph")
	}
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges for 3 leafs, have %d", n)
	}
	if !strings.Contains(dot, `\"Wor`) {
		t.Errorf("expected quotes in leaf labels to be escaped")
	}
}
