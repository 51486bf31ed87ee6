package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ropes"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// Progress is broadcast to the subscribers of a Loader for every fragment of
// text which has been loaded.
type Progress struct {
	Offset int64 // start position of the fragment within the file
	Length int   // length of the fragment in bytes
	Total  int64 // size of the file
}

// Done reports whether this is the last fragment of the file.
func (p Progress) Done() bool {
	return p.Offset+int64(p.Length) >= p.Total
}

// Loader loads a single file as a rope and broadcasts its progress.
type Loader struct {
	fragSize int64
	cast     *caster.Caster // broadcaster for fragment progress
}

// NewLoader creates a loader. Clients may indicate a recommended fragment
// length, which will become the fragment bound of the loaded rope. If fragSize
// is 0, the loader will select a default depending on the size of the file.
func NewLoader(fragSize int64) *Loader {
	return &Loader{
		fragSize: fragSize,
		cast:     caster.New(nil),
	}
}

// Subscribe registers for progress messages of type Progress. The channel will
// be closed after loading has finished. Subscribers have to drain the channel,
// otherwise loading will stall.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, capacity)
}

// Load reads a file, which must be a text file, and loads it as a rope,
// using a loader with the default fragment size.
func Load(ctx context.Context, name string) (*ropes.Rope, error) {
	return NewLoader(0).Load(ctx, name)
}

// Load reads a file, which must be a text file, and loads it as a rope.
// A loader may be used for a single file only.
func (l *Loader) Load(ctx context.Context, name string) (*ropes.Rope, error) {
	defer l.cast.Close()
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	size := tf.info.Size()
	fragSize := fragmentSize(size, l.fragSize)
	b, err := ropes.NewBuilderWithConfig(ropes.Config{
		FragmentBound: int(fragSize),
		MaxHeight:     ropes.DefaultMaxHeight,
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loading %q: %d bytes in fragments of %d", name, size, fragSize)
	frags := make(chan fileFragment, 4)
	go readFragments(ctx, tf, fragSize, frags)
	for frag := range frags {
		if frag.err != nil {
			tracer().Errorf("loading %q: %v", name, frag.err)
			return nil, frag.err
		}
		if err = b.AppendString(frag.text); err != nil {
			return nil, err
		}
		l.cast.Pub(Progress{Offset: frag.pos, Length: len(frag.text), Total: size})
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	return b.Rope(), nil
}

// fragmentSize selects a fragment size for a file of a given size. A requested
// size is accepted if it is in (0, 10kB].
func fragmentSize(size int64, requested int64) int64 {
	if requested > 0 && requested <= tenKb {
		return requested
	}
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// --- File loading goroutine ------------------------------------------------

// textFile represents an OS file which will be loaded as a rope.
type textFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// fileFragment is a fragment of text, or an I/O error.
type fileFragment struct {
	pos  int64
	text string
	err  error
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %q is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{path: name, info: fi, file: file}, nil
}

// readFragments reads the file fragment by fragment and sends them to out, in
// order. It stops after the first error, which is sent as well.
func readFragments(ctx context.Context, tf *textFile, fragSize int64, out chan<- fileFragment) {
	defer close(out)
	size := tf.info.Size()
	for pos := int64(0); pos < size; pos += fragSize {
		buf := make([]byte, min(fragSize, size-pos))
		frag := fileFragment{pos: pos}
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && !errors.Is(err, io.EOF) {
			frag.err = fmt.Errorf("error loading text fragment: %w", err)
		} else if cnt < len(buf) {
			frag.err = fmt.Errorf("not all bytes loaded for text fragment at %d", pos)
		}
		frag.text = string(buf[:cnt])
		select {
		case out <- frag:
		case <-ctx.Done():
			return
		}
		if frag.err != nil {
			return
		}
	}
}
