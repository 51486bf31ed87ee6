package treedump

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/ropes"
	"golang.org/x/term"
)

// Printer outputs the tree of a rope. The zero value prints without colors and
// without truncating leaf content.
type Printer struct {
	// Colored switches on ANSI colors.
	Colored bool
	// MaxContent truncates leaf content longer than MaxContent bytes, if > 0.
	MaxContent int

	leaf, left, right *color.Color
}

// NewPrinter creates a printer for output stream w. Colors are switched on if w
// is an interactive terminal.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.Colored = true
	}
	return p
}

// Print outputs the tree of r to stdout.
func Print(r *ropes.Rope) error {
	return NewPrinter(os.Stdout).Fprint(os.Stdout, r)
}

// Fprint outputs the tree of r to w.
func (p *Printer) Fprint(w io.Writer, r *ropes.Rope) error {
	p.palette()
	if _, err := fmt.Fprintln(w, "Rope Tree"); err != nil {
		return err
	}
	root := r.Root()
	if root.IsNil() {
		_, err := fmt.Fprintln(w, "└─ <empty>")
		return err
	}
	tracer().Debugf("dumping rope tree of height %d", root.Height())
	return p.branches(w, root, "", false)
}

func (p *Printer) palette() {
	p.leaf = color.New(color.FgGreen)
	p.left = color.New(color.FgMagenta)
	p.right = color.New(color.FgCyan)
	for _, c := range []*color.Color{p.leaf, p.left, p.right} {
		if p.Colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (p *Printer) branches(w io.Writer, n ropes.Node, prefix string, isLeft bool) error {
	branch := "└─ "
	if isLeft {
		branch = "├─ "
	}
	if _, err := fmt.Fprint(w, prefix, branch); err != nil {
		return err
	}
	var err error
	switch {
	case n.IsLeaf():
		_, err = p.leaf.Fprintf(w, "%q (weight=%d)\n", p.content(n), n.Weight())
	case isLeft:
		_, err = p.left.Fprintf(w, "[Node: weight=%d]\n", n.Weight())
	default:
		_, err = p.right.Fprintf(w, "[Node: weight=%d]\n", n.Weight())
	}
	if err != nil || n.IsLeaf() {
		return err
	}
	childPrefix := prefix + "    "
	if isLeft {
		childPrefix = prefix + "│   "
	}
	if err = p.branches(w, n.Left(), childPrefix, true); err != nil {
		return err
	}
	return p.branches(w, n.Right(), childPrefix, false)
}

func (p *Printer) content(n ropes.Node) string {
	s := n.Content()
	if p.MaxContent > 0 && len(s) > p.MaxContent {
		return s[:p.MaxContent] + "…"
	}
	return s
}
