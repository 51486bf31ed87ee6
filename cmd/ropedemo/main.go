// Command ropedemo builds ropes from text and shows their tree structure
// before and after rope operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/npillmayer/ropes"
	"github.com/npillmayer/ropes/textfile"
	"github.com/npillmayer/ropes/treedump"
)

// CLI defines the command-line interface for ropedemo.
var CLI struct {
	Bound     int  `name:"bound" short:"b" default:"5" help:"Maximum length of a leaf fragment"`
	MaxHeight int  `name:"max-height" default:"48" help:"Rebalance when the tree grows higher (0 disables)"`
	Plain     bool `name:"plain" help:"Do not color the tree dump"`

	Dump   DumpCmd   `cmd:"" help:"Show the tree of a rope built from text"`
	Split  SplitCmd  `cmd:"" help:"Split text at a position"`
	Insert InsertCmd `cmd:"" help:"Insert text at a position"`
	Erase  EraseCmd  `cmd:"" help:"Erase a range of text"`
	Load   LoadCmd   `cmd:"" help:"Load a text file as a rope"`
	Dot    DotCmd    `cmd:"" help:"Write a rope in GraphViz DOT format"`
}

// DumpCmd shows the tree of a rope.
type DumpCmd struct {
	Text string `arg:"" help:"Text of the rope"`
}

// SplitCmd splits a rope.
type SplitCmd struct {
	Text string `arg:"" help:"Text of the rope"`
	Pos  int    `arg:"" help:"Split position"`
}

// InsertCmd inserts text into a rope.
type InsertCmd struct {
	Text   string `arg:"" help:"Text of the rope"`
	Pos    int    `arg:"" help:"Insert position"`
	Insert string `arg:"" help:"Text to insert"`
}

// EraseCmd erases a range of text.
type EraseCmd struct {
	Text  string `arg:"" help:"Text of the rope"`
	Start int    `arg:"" help:"Start of range"`
	End   int    `arg:"" help:"End of range (exclusive)"`
}

// LoadCmd loads a text file.
type LoadCmd struct {
	File     string `arg:"" type:"existingfile" help:"Text file to load"`
	Fragment int64  `name:"fragment" short:"f" help:"Fragment size (0 selects a default)"`
	Tree     bool   `name:"tree" help:"Dump the tree of the loaded rope"`
}

// DotCmd writes a rope in DOT format.
type DotCmd struct {
	Text string `arg:"" help:"Text of the rope"`
}

func config() ropes.Config {
	return ropes.Config{FragmentBound: CLI.Bound, MaxHeight: CLI.MaxHeight}
}

func newRope(text string) (*ropes.Rope, error) {
	return ropes.FromStringWithConfig(text, config())
}

func dump(title string, r *ropes.Rope) error {
	p := treedump.NewPrinter(os.Stdout)
	if CLI.Plain {
		p.Colored = false
	}
	fmt.Printf("%s: %q (len %d, height %d)\n", title, r.String(), r.Len(), r.Height())
	return p.Fprint(os.Stdout, r)
}

// Run executes the dump command.
func (c *DumpCmd) Run(ctx *kong.Context) error {
	r, err := newRope(c.Text)
	if err != nil {
		return err
	}
	return dump("rope", r)
}

// Run executes the split command.
func (c *SplitCmd) Run(ctx *kong.Context) error {
	r, err := newRope(c.Text)
	if err != nil {
		return err
	}
	if c.Pos < 0 || c.Pos > r.Len() {
		// Split is lenient here and returns two empty ropes, dumped below.
		fmt.Fprintf(os.Stderr, "split position %d is outside of [0,%d]: both parts are empty\n",
			c.Pos, r.Len())
	}
	left, right := r.Split(c.Pos)
	if err = dump("left", left); err != nil {
		return err
	}
	return dump("right", right)
}

// Run executes the insert command.
func (c *InsertCmd) Run(ctx *kong.Context) error {
	r, err := newRope(c.Text)
	if err != nil {
		return err
	}
	other, err := newRope(c.Insert)
	if err != nil {
		return err
	}
	if err = r.Insert(other, c.Pos); err != nil {
		return err
	}
	return dump("result", r)
}

// Run executes the erase command.
func (c *EraseCmd) Run(ctx *kong.Context) error {
	r, err := newRope(c.Text)
	if err != nil {
		return err
	}
	if err = r.Erase(c.Start, c.End); err != nil {
		return err
	}
	return dump("result", r)
}

// Run executes the load command.
func (c *LoadCmd) Run(ctx *kong.Context) error {
	l := textfile.NewLoader(c.Fragment)
	progress, ok := l.Subscribe(context.Background(), 16)
	if !ok {
		return fmt.Errorf("cannot subscribe to progress of loading %s", c.File)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range progress {
			if p, ok := msg.(textfile.Progress); ok {
				fmt.Fprintf(os.Stderr, "\rloaded %d of %d bytes", p.Offset+int64(p.Length), p.Total)
			}
		}
		fmt.Fprintln(os.Stderr)
	}()
	r, err := l.Load(context.Background(), c.File)
	<-done
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d bytes in %d fragments, height %d\n", c.File, r.Len(), r.FragmentCount(), r.Height())
	if c.Tree {
		return treedump.NewPrinter(os.Stdout).Fprint(os.Stdout, r)
	}
	return nil
}

// Run executes the dot command.
func (c *DotCmd) Run(ctx *kong.Context) error {
	r, err := newRope(c.Text)
	if err != nil {
		return err
	}
	return ropes.Rope2Dot(r, os.Stdout)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ropedemo"),
		kong.Description("Build ropes and inspect their trees"),
		kong.UsageOnError(),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
