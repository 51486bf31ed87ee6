package ropes

// Builder incrementally stages text and finalizes it into a Rope.
//
// Builder collects text as fragments of at most the configured fragment bound
// and materializes the rope only when Rope() is called. The tree is built in a
// single bottom-up pass, which makes building a rope from many small pieces of
// text cheaper than repeatedly appending to a rope.
//
// The empty instance is a valid builder using the default configuration, but
// clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front []string
	// back keeps appended fragments in logical order.
	back []string

	cfg   Config
	done  bool
	dirty bool
	rope  *Rope
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// NewBuilderWithConfig creates a new and empty rope builder for ropes with
// configuration cfg.
func NewBuilderWithConfig(cfg Config) (*Builder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg.normalized()}, nil
}

// Rope returns the rope built from all staged fragments.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times. Every call returns an independent rope.
func (b *Builder) Rope() *Rope {
	if b == nil {
		return &Rope{}
	}
	if b.dirty || b.rope == nil {
		b.rope = b.buildRope()
		b.dirty = false
	}
	b.done = true
	if b.rope.IsVoid() {
		tracer().Debugf("rope builder: rope is void")
	}
	return b.rope.Copy()
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.rope = nil
}

// AppendString appends text to the staged build.
func (b *Builder) AppendString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if len(text) == 0 {
		return nil
	}
	bound := b.cfg.normalized().FragmentBound
	if len(b.back) > 0 { // fill up the last fragment first
		last := len(b.back) - 1
		if room := bound - len(b.back[last]); room > 0 {
			k := min(room, len(text))
			b.back[last] += text[:k]
			text = text[k:]
		}
	}
	for i := 0; i < len(text); i += bound {
		b.back = append(b.back, text[i:min(i+bound, len(text))])
	}
	b.dirty = true
	return nil
}

// PrependString prepends text to the staged build.
func (b *Builder) PrependString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if len(text) == 0 {
		return nil
	}
	bound := b.cfg.normalized().FragmentBound
	// front is stored in reverse logical order.
	for end := len(text); end > 0; end -= bound {
		b.front = append(b.front, text[max(end-bound, 0):end])
	}
	b.dirty = true
	return nil
}

func (b *Builder) buildRope() *Rope {
	cfg := b.cfg.normalized()
	o := newOwner()
	leaves := make([]*node, 0, len(b.front)+len(b.back))
	for i := len(b.front) - 1; i >= 0; i-- {
		leaves = append(leaves, makeLeaf(b.front[i], o))
	}
	for _, frag := range b.back {
		leaves = append(leaves, makeLeaf(frag, o))
	}
	return &Rope{root: buildTree(leaves, o), owner: o, cfg: cfg}
}
