package ropes

import "fmt"

const (
	// DefaultFragmentBound is the maximum number of bytes a leaf holds by default.
	DefaultFragmentBound = 64
	// DefaultMaxHeight is the tree height above which mutators rebalance a rope.
	DefaultMaxHeight = 48
)

// Config configures the tree layout of a rope.
type Config struct {
	// FragmentBound is the maximum number of bytes held by a single leaf.
	FragmentBound int
	// MaxHeight triggers a rebalance after any mutating operation which leaves
	// the tree higher than MaxHeight. A value of 0 disables automatic
	// rebalancing; clients then call Rebalance themselves.
	MaxHeight int
}

// DefaultConfig returns the configuration used by FromString and Rope{}.
func DefaultConfig() Config {
	return Config{
		FragmentBound: DefaultFragmentBound,
		MaxHeight:     DefaultMaxHeight,
	}
}

func (cfg Config) normalized() Config {
	if cfg == (Config{}) {
		return DefaultConfig()
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.FragmentBound < 1 {
		return fmt.Errorf("%w: fragment bound must be positive, is %d",
			ErrIllegalArguments, cfg.FragmentBound)
	}
	if cfg.MaxHeight < 0 {
		return fmt.Errorf("%w: max height must not be negative, is %d",
			ErrIllegalArguments, cfg.MaxHeight)
	}
	return nil
}
