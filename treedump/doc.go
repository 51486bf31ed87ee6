/*
Package treedump prints the internal tree structure of ropes to a console.

The output is meant for debugging and for demonstrating how edit operations
change the shape of a rope:

	Rope Tree
	└─ [Node: weight=10]
	    ├─ [Node: weight=5]
	    │   ├─ "Hello" (weight=5)
	    │   └─ " Worl" (weight=5)
	    └─ "d" (weight=1)

Leafs are printed in green, inner nodes in magenta (left children) or cyan
(right children), if the output is colored.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treedump

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}
