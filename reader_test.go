package ropes

import (
	"io"
	"testing"
)

func TestReader(t *testing.T) {
	r := mustRope(t, lorem, 7)
	p := make([]byte, 5)
	rd := r.Reader()
	n, err := rd.Read(p)
	if err != nil {
		t.Fatalf("Reader.Read failed: %v", err)
	}
	if n != 5 || string(p) != "Lorem" {
		t.Fatalf("unexpected read result: n=%d p=%q", n, string(p))
	}
	r.Append("!") // reader works on a snapshot
	rest, err := io.ReadAll(rd)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != lorem[5:] {
		t.Errorf("unexpected rest of text %q", rest)
	}
}
