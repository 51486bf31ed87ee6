/*
Package ropes offers a mutable text container for editors and document models.

Ropes

A rope organizes fragments of text in a weighted binary tree. Every inner node
carries the length of its left subtree as its weight, every leaf carries a
fragment of bounded size. Navigating by weight lets split, concatenation,
insertion and deletion run in time proportional to the height of the tree
instead of the length of the text, avoiding the cost of shifting a flat buffer
on every edit.

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long string.
For example, a text editing program may use a rope to represent the text being edited,
so that operations such as insertion, deletion, and random access can be
done efficiently. […] In summary, ropes are preferable when the data is large
and modified often.

Split is the central primitive. Insert, Erase and SubString are all built from
splits and concatenations, and split shares every untouched subtree with the
rope it has been applied to.

Copies and sharing

Copying a rope is O(1): the copy references the same tree. Ropes are values
with single-writer semantics, i.e. a rope may be mutated (Concat, Insert,
Erase, Append, Rebalance), but a tree node reachable from more than one rope is
never written to. Every rope carries an ownership token, and a node may only be
modified in place by the rope holding the token the node has been created with.
Operations which hand out ropes sharing nodes with the receiver (Copy, Split,
SubString) retire the receiver's token. Ropes must be handled by pointer; copy
them with Copy, never by dereferencing.

Ropes are not safe for concurrent use. Ownership inspection and the subsequent
path copy are not atomic, so clients mutating ropes that share nodes from
different goroutines must synchronize externally.

Positions

Positions are raw byte offsets. Ropes do not interpret UTF-8.

Two error policies apply, deliberately:
Split and At are soft and report out-of-range positions by an empty/absent
result. Insert, Erase, SubString and Report are hard and return
ErrIndexOutOfBounds.

_________________________________________________________________________

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
package ropes

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

// RopeError is an error type for the ropes module.
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrRopeCompleted signals that a rope builder has already completed a rope and
// it's illegal to further add fragments.
const ErrRopeCompleted = RopeError("forbidden to add fragments; rope has been completed")

// ErrIndexOutOfBounds is flagged whenever a rope position lies outside
// of [0, length].
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
