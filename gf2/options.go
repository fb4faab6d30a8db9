// SPDX-License-Identifier: MIT

// Package gf2: functional configuration for the solver.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values, i.e. programmer error),
//   - gatherOptions, which resolves a ...Option list into Options.
//
// Every flag changes observable behavior and is covered by tests:
//   - maxFreeVars bounds the 2^k enumeration of the minimum-weight search.
//   - wide selects *bitset.BitSet rows instead of uint64 masks in Solve/MinPresses.
//   - decompose splits the system into independent button blocks first.
package gf2

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxFreeVars is the enumeration ceiling: at most 2^32 candidate
	// assignments per (block of a) system.
	DefaultMaxFreeVars = 32

	// MaxFreeVarsLimit is the hard upper bound accepted by WithMaxFreeVars;
	// free-variable assignments are enumerated as a uint64 counter.
	MaxFreeVarsLimit = 63

	// DefaultWide keeps the narrow uint64 representation, which fails with
	// ErrCapacity above NarrowWidth buttons.
	DefaultWide = false

	// DefaultDecompose searches the whole system at once.
	DefaultDecompose = false
)

const panicMaxFreeVarsInvalid = "gf2: WithMaxFreeVars: n must be in [0, 63]"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxFreeVars int  // DefaultMaxFreeVars
	wide        bool // DefaultWide
	decompose   bool // DefaultDecompose
}

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{
		maxFreeVars: DefaultMaxFreeVars,
		wide:        DefaultWide,
		decompose:   DefaultDecompose,
	}
}

// WithMaxFreeVars sets the enumeration ceiling of the minimum-weight search.
// Systems (or blocks, under WithDecompose) with more non-trivial free
// variables fail with ErrTooManyFreeVars. Panics if n is outside [0, 63].
func WithMaxFreeVars(n int) Option {
	if n < 0 || n > MaxFreeVarsLimit {
		panic(panicMaxFreeVarsInvalid)
	}

	return func(o *Options) { o.maxFreeVars = n }
}

// WithWideMasks makes Solve and MinPresses build rows as *bitset.BitSet,
// lifting the 64-button capacity limit.
func WithWideMasks() Option {
	return func(o *Options) { o.wide = true }
}

// WithDecompose splits the system into blocks of buttons connected through
// shared lights and searches each block on its own. The minimum is the sum
// of the block minima; the enumeration ceiling then applies per block.
func WithDecompose() Option {
	return func(o *Options) { o.decompose = true }
}

// MaxFreeVars reports the effective enumeration ceiling.
func (o Options) MaxFreeVars() int { return o.maxFreeVars }

// Wide reports whether bitset rows are selected.
func (o Options) Wide() bool { return o.wide }

// Decompose reports whether block decomposition is enabled.
func (o Options) Decompose() bool { return o.decompose }

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
