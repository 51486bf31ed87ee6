/*
Package html creates ropes from the textual content of HTML documents and
fragments.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"

	"github.com/npillmayer/ropes"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/net/html"
)

func tracer() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}

// InnerText creates a rope for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (*ropes.Rope, error) {
	if n == nil {
		return nil, ropes.ErrIllegalArguments
	}
	b := ropes.NewBuilder()
	if err := collectText(n, b); err != nil {
		return nil, err
	}
	return b.Rope(), nil
}

func collectText(n *html.Node, b *ropes.Builder) error {
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return nil
		}
	case html.TextNode:
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}

// TextFromHTML creates a rope from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*ropes.Rope, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := ropes.NewBuilder()
	for _, n := range nodes {
		if err = collectText(n, b); err != nil {
			return nil, err
		}
	}
	r := b.Rope()
	tracer().Debugf("html: extracted %d bytes of text from %d nodes", r.Len(), len(nodes))
	return r, nil
}
