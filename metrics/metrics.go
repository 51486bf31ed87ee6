package metrics

import (
	"fmt"

	"github.com/npillmayer/ropes"
)

// CountingMetric is a type for metrics that count items in text. Possible
// items may be lines, words, …
type CountingMetric interface {
	ropes.Metric
	Count(ropes.MetricValue) int
}

// Count applies a counting metric to a text.
func Count(text *ropes.Rope, i, j int, metric CountingMetric) (int, error) {
	value, err := ropes.ApplyMetric(text, i, j, metric)
	if err != nil {
		return -1, fmt.Errorf("metrics.Count could not be applied: %w", err)
	}
	return metric.Count(value), nil
}

// ScanningMetric searches a text for items and returns their location indices.
type ScanningMetric interface {
	ropes.Metric
	Locations(ropes.MetricValue) [][]int
}

// Find applies a scanning metric to a text. Locations are relative to i.
func Find(text *ropes.Rope, i, j int, metric ScanningMetric) ([][]int, error) {
	value, err := ropes.ApplyMetric(text, i, j, metric)
	if err != nil {
		return [][]int{}, fmt.Errorf("metrics.Find could not be applied: %w", err)
	}
	return metric.Locations(value), nil
}

// --- Lines -----------------------------------------------------------------

type lineValue struct {
	length int
	breaks []int // positions of '\n'
}

func (v lineValue) Len() int { return v.length }

// LineMetric counts and locates newline characters.
type LineMetric struct{}

// Lines creates a metric for line breaks. Count returns the number of
// newline characters, Locations returns the span of every newline.
func Lines() LineMetric {
	return LineMetric{}
}

// Apply is part of interface ropes.Metric.
func (LineMetric) Apply(frag string) ropes.MetricValue {
	v := lineValue{length: len(frag)}
	for i := 0; i < len(frag); i++ {
		if frag[i] == '\n' {
			v.breaks = append(v.breaks, i)
		}
	}
	return v
}

// Combine is part of interface ropes.Metric.
func (LineMetric) Combine(left, right ropes.MetricValue) ropes.MetricValue {
	l, r := left.(lineValue), right.(lineValue)
	v := lineValue{length: l.length + r.length}
	v.breaks = make([]int, 0, len(l.breaks)+len(r.breaks))
	v.breaks = append(v.breaks, l.breaks...)
	for _, b := range r.breaks {
		v.breaks = append(v.breaks, b+l.length)
	}
	return v
}

// Count is part of interface CountingMetric.
func (LineMetric) Count(v ropes.MetricValue) int {
	return len(v.(lineValue).breaks)
}

// Locations is part of interface ScanningMetric.
func (LineMetric) Locations(v ropes.MetricValue) [][]int {
	breaks := v.(lineValue).breaks
	locs := make([][]int, len(breaks))
	for i, b := range breaks {
		locs[i] = []int{b, b + 1}
	}
	return locs
}

// --- Words -----------------------------------------------------------------

type wordValue struct {
	length   int
	count    int
	leading  bool // text starts with a word character
	trailing bool // text ends with a word character
}

func (v wordValue) Len() int { return v.length }

// WordMetric counts words, i.e. maximal runs of non-white-space bytes.
type WordMetric struct{}

// Words creates a metric for counting words. Words may span fragment
// boundaries.
func Words() WordMetric {
	return WordMetric{}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// Apply is part of interface ropes.Metric.
func (WordMetric) Apply(frag string) ropes.MetricValue {
	v := wordValue{length: len(frag)}
	if len(frag) == 0 {
		return v
	}
	inWord := false
	for i := 0; i < len(frag); i++ {
		if isSpace(frag[i]) {
			inWord = false
		} else if !inWord {
			inWord = true
			v.count++
		}
	}
	v.leading = !isSpace(frag[0])
	v.trailing = inWord
	return v
}

// Combine is part of interface ropes.Metric.
func (WordMetric) Combine(left, right ropes.MetricValue) ropes.MetricValue {
	l, r := left.(wordValue), right.(wordValue)
	if l.length == 0 {
		return r
	} else if r.length == 0 {
		return l
	}
	v := wordValue{
		length:   l.length + r.length,
		count:    l.count + r.count,
		leading:  l.leading,
		trailing: r.trailing,
	}
	if l.trailing && r.leading { // word spans the boundary
		v.count--
	}
	return v
}

// Count is part of interface CountingMetric.
func (WordMetric) Count(v ropes.MetricValue) int {
	return v.(wordValue).count
}
