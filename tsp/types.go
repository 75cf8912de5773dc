// SPDX-License-Identifier: MIT

package tsp

import "fmt"

// Algorithm selects how Solve orders the airports.
type Algorithm int

const (
	// Auto runs ExactHeldKarp up to AutoExactLimit airports and
	// NearestNeighbor above it.
	Auto Algorithm = iota
	// ExactHeldKarp is the O(n²·2ⁿ) dynamic program. Optimal.
	ExactHeldKarp
	// NearestNeighbor greedily extends the tour, optionally refined by 2-opt.
	NearestNeighbor
)

const (
	// MaxExactAirports bounds ExactHeldKarp memory (n·2ⁿ table entries).
	MaxExactAirports = 16

	// AutoExactLimit is the largest network Auto solves exactly.
	AutoExactLimit = 12
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case ExactHeldKarp:
		return "held-karp"
	case NearestNeighbor:
		return "nearest-neighbor"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Options configures Solve.
type Options struct {
	// Start is the home airport; empty means the first vertex.
	Start string

	Algorithm Algorithm

	// LocalSearch runs 2-opt after NearestNeighbor. Default true.
	LocalSearch bool

	// MaxIters caps accepted 2-opt moves; 0 means run to a local optimum.
	MaxIters int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Auto with local search enabled.
func DefaultOptions() Options {
	return Options{Algorithm: Auto, LocalSearch: true}
}

// WithStart sets the home airport.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithAlgorithm picks the solver. Unknown values are reported by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		switch a {
		case Auto, ExactHeldKarp, NearestNeighbor:
			o.Algorithm = a
		default:
			o.err = fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
		}
	}
}

// WithLocalSearch toggles the 2-opt pass.
func WithLocalSearch(on bool) Option {
	return func(o *Options) { o.LocalSearch = on }
}

// WithMaxIters caps accepted 2-opt moves. Negative values are rejected.
func WithMaxIters(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIters=%d must be >= 0", ErrOptionViolation, n)
			return
		}
		o.MaxIters = n
	}
}

// Tour is a closed round trip through every airport.
type Tour struct {
	// Order visits each airport once, starting and ending at the home
	// airport: len(Order) == V+1.
	Order []string

	// Itinerary expands every leg of Order into the cheapest chain of
	// direct flights, so consecutive entries are always adjacent.
	Itinerary []string

	// Cost is the total fare of the itinerary.
	Cost int64

	// Algorithm is the solver that produced Order (never Auto).
	Algorithm Algorithm
}
