package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Metric is a metric to calculate on a rope. Sometimes it's helpful to find
// information about a (large) text by collecting metrics from fragments and
// assembling them. Ropes naturally break up texts into smaller fragments,
// letting us calculate metrics by applying them to (a subset of) fragments and
// propagate them upwards the nodes of the rope tree.
//
// An example of a (very simplistic) metric would be to count the number of
// bytes in a text. The total count is calculated by counting the bytes in every
// fragment and adding up intermediate sums while travelling upwards through the
// rope's tree.
//
// Clients have no control over size or boundaries of the fragments Apply is
// called for.
//
// Combine must be a monoid over MetricValue, with a neutral element n
// of Apply = f("") → n, i.e. the metric value of the empty string.
// Combine is called for values of adjacent stretches of text, left one first.
type Metric interface {
	Apply(frag string) MetricValue
	Combine(leftSibling, rightSibling MetricValue) MetricValue
}

// MetricValue is a type returned by applying a metric to text fragments (see
// interface Metric). It holds information about the added length of the text
// fragments which this value has been calulated for.
type MetricValue interface {
	Len() int // summed up length of text fragments
}

// --- Apply a metric to a rope ----------------------------------------------

// ApplyMetric applies a metric calculation on a (section of a) text.
//
// i and j are text positions with Go slice semantics.
// If [i, j) does not specify a valid slice of the text, ErrIndexOutOfBounds will be
// returned.
func ApplyMetric(r *Rope, i, j int, metric Metric) (MetricValue, error) {
	if metric == nil {
		return nil, ErrIllegalArguments
	}
	if i < 0 || j < i || j > r.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if i == j {
		return metric.Apply(""), nil
	}
	return applyMetric(r.root, i, j, metric), nil
}

// applyMetric requires 0 <= i < j <= length of n.
func applyMetric(n *node, i, j int, metric Metric) MetricValue {
	if n.isLeaf() {
		return metric.Apply(n.text[i:j])
	}
	var v MetricValue
	w := n.weight
	if i < w {
		v = applyMetric(n.left, i, min(j, w), metric)
	}
	if j > w {
		vr := applyMetric(n.right, max(i-w, 0), j-w, metric)
		if v == nil {
			v = vr
		} else {
			v = metric.Combine(v, vr)
		}
	}
	return v
}
