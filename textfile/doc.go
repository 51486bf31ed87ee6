/*
Package textfile provides API helpers to load text files as ropes.

Files are read fragment by fragment in a background goroutine. Clients may
subscribe to a Loader to receive a Progress message for every fragment loaded,
e.g. for displaying a progress bar for large files. The Load call itself is
synchronous.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

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
