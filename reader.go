package ropes

import "io"

// Reader returns a reader for the bytes of r. The reader operates on a snapshot
// of r, so later mutations of r are not visible to it.
func (r *Rope) Reader() io.Reader {
	return &ropeReader{rope: r.Copy()}
}

type ropeReader struct {
	rope   *Rope
	cursor int
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	l := len(p)
	if rr.cursor+l > rr.rope.Len() {
		l = rr.rope.Len() - rr.cursor
		if l == 0 {
			return 0, io.EOF
		}
	}
	s, err := rr.rope.Report(rr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	rr.cursor += n
	return n, nil
}
