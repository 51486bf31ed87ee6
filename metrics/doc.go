/*
Package metrics provides some pre-manufactured metrics on ropes.

Metrics are calculated per text fragment and combined while travelling up the
rope's tree, see ropes.ApplyMetric. Text is treated as bytes; words are
delimited by ASCII white space.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics
