package ropes

import (
	"errors"
	"strings"
	"testing"
)

type newlines struct {
	length, count int
}

func (n newlines) Len() int { return n.length }

type newlineMetric struct{}

func (newlineMetric) Apply(frag string) MetricValue {
	return newlines{length: len(frag), count: strings.Count(frag, "\n")}
}

func (newlineMetric) Combine(left, right MetricValue) MetricValue {
	l, r := left.(newlines), right.(newlines)
	return newlines{length: l.length + r.length, count: l.count + r.count}
}

func TestApplyMetric(t *testing.T) {
	text := "one\ntwo\nthree\nfour\nfive\n"
	r := mustRope(t, text, 3)
	for _, c := range [][2]int{{0, len(text)}, {0, 4}, {4, 5}, {5, 14}, {7, 7}} {
		v, err := ApplyMetric(r, c[0], c[1], newlineMetric{})
		if err != nil {
			t.Fatalf("ApplyMetric(%d,%d) failed: %v", c[0], c[1], err)
		}
		if v.Len() != c[1]-c[0] {
			t.Errorf("ApplyMetric(%d,%d) measured %d bytes", c[0], c[1], v.Len())
		}
		if expected := strings.Count(text[c[0]:c[1]], "\n"); v.(newlines).count != expected {
			t.Errorf("ApplyMetric(%d,%d) = %d, expected %d", c[0], c[1], v.(newlines).count, expected)
		}
	}
	if _, err := ApplyMetric(r, 3, len(text)+1, newlineMetric{}); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := ApplyMetric(r, 0, 1, nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil metric, got %v", err)
	}
}
