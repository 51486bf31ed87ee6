package ropes

import "testing"

// FuzzSplit tests splitting at arbitrary positions.
func FuzzSplit(f *testing.F) {
	f.Add("hello world", 0)
	f.Add("hello world", 5)
	f.Add("hello world", 11)
	f.Add("hello world", -3)
	f.Add("", 0)

	f.Fuzz(func(t *testing.T, s string, i int) {
		r, _ := FromStringWithConfig(s, Config{FragmentBound: 3})
		left, right := r.Split(i)
		if i < 0 || i > len(s) {
			if !left.IsVoid() || !right.IsVoid() {
				t.Errorf("expected empty ropes for position %d", i)
			}
			return
		}
		if left.String() != s[:i] || right.String() != s[i:] {
			t.Errorf("split mismatch at position %d", i)
		}
		if r.String() != s {
			t.Errorf("split changed the original")
		}
	})
}

// FuzzInsert tests insert operations.
func FuzzInsert(f *testing.F) {
	f.Add("hello", 0, "x")
	f.Add("hello", 5, "x")
	f.Add("hello", 3, "world")
	f.Add("", 0, "test")
	f.Add("hello", 9, "x")

	f.Fuzz(func(t *testing.T, initial string, offset int, insert string) {
		r, _ := FromStringWithConfig(initial, Config{FragmentBound: 3, MaxHeight: 6})
		err := r.Insert(FromString(insert), offset)
		if offset < 0 || offset > len(initial) {
			if err == nil {
				t.Errorf("expected error for offset %d", offset)
			}
			return
		}
		expected := initial[:offset] + insert + initial[offset:]
		if r.String() != expected {
			t.Errorf("insert mismatch at offset %d", offset)
		}
		if err := r.Check(); err != nil {
			t.Errorf("malformed rope after insert: %v", err)
		}
	})
}

// FuzzErase tests erase operations.
func FuzzErase(f *testing.F) {
	f.Add("hello world", 0, 5)
	f.Add("hello world", 6, 11)
	f.Add("hello world", 5, 6)
	f.Add("hello world", 8, 2)

	f.Fuzz(func(t *testing.T, initial string, start, end int) {
		if start < 0 || start > len(initial) || end < 0 || end > len(initial) {
			return
		}
		r, _ := FromStringWithConfig(initial, Config{FragmentBound: 3})
		c := r.Copy()
		if err := r.Erase(start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := initial
		if start < end {
			expected = initial[:start] + initial[end:]
		}
		if r.String() != expected {
			t.Errorf("erase mismatch for [%d,%d)", start, end)
		}
		if c.String() != initial {
			t.Errorf("erase changed a copy")
		}
	})
}
