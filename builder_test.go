package ropes

import (
	"errors"
	"strings"
	"testing"
)

func TestBuilderAppendAndPrependString(t *testing.T) {
	b := NewBuilder()
	if err := b.AppendString("name_is"); err != nil {
		t.Fatalf("AppendString failed: %v", err)
	}
	if err := b.PrependString("Hello_my_"); err != nil {
		t.Fatalf("PrependString failed: %v", err)
	}
	if err := b.AppendString("_Simon"); err != nil {
		t.Fatalf("AppendString failed: %v", err)
	}
	r := b.Rope()
	if got, want := r.String(), "Hello_my_name_is_Simon"; got != want {
		t.Fatalf("unexpected rope string: got %q want %q", got, want)
	}
}

func TestBuilderRespectsFragmentBound(t *testing.T) {
	b, err := NewBuilderWithConfig(Config{FragmentBound: 4})
	if err != nil {
		t.Fatal(err)
	}
	input := strings.Repeat("abc", 10)
	for i := 0; i < len(input); i += 3 {
		if err := b.AppendString(input[i : i+3]); err != nil {
			t.Fatalf("AppendString failed: %v", err)
		}
	}
	_ = b.PrependString("0123456789")
	r := b.Rope()
	if got := r.String(); got != "0123456789"+input {
		t.Fatalf("builder changed input text; got %q", got)
	}
	if err := r.Check(); err != nil {
		t.Errorf("built rope is malformed: %v", err)
	}
	if r.FragmentCount() != 3+8 {
		t.Errorf("expected 11 fragments, have %d", r.FragmentCount())
	}
}

func TestBuilderDisallowsMutationAfterRope(t *testing.T) {
	b := NewBuilder()
	if err := b.AppendString("abc"); err != nil {
		t.Fatalf("AppendString failed: %v", err)
	}
	_ = b.Rope()
	if err := b.AppendString("def"); !errors.Is(err, ErrRopeCompleted) {
		t.Fatalf("expected ErrRopeCompleted, got %v", err)
	}
	if err := b.PrependString("x"); !errors.Is(err, ErrRopeCompleted) {
		t.Fatalf("expected ErrRopeCompleted from PrependString, got %v", err)
	}
}

func TestBuilderResultsAreIndependent(t *testing.T) {
	b := NewBuilder()
	_ = b.AppendString("abc")
	r1, r2 := b.Rope(), b.Rope()
	r1.Append("def")
	if r2.String() != "abc" {
		t.Errorf("expected second rope to be unaffected, is %q", r2)
	}
}

func TestBuilderResetAllowsReuse(t *testing.T) {
	b := NewBuilder()
	if err := b.AppendString("one"); err != nil {
		t.Fatalf("AppendString failed: %v", err)
	}
	_ = b.Rope()
	b.Reset()
	if err := b.AppendString("two"); err != nil {
		t.Fatalf("AppendString after Reset failed: %v", err)
	}
	r := b.Rope()
	if got := r.String(); got != "two" {
		t.Fatalf("unexpected rope after Reset: %q", got)
	}
}
