// Package dijkstra finds cheapest fares from one airport with Dijkstra's
// algorithm. Fares must be non-negative.
//
// Options:
//
//	Source(id)              required start airport.
//	WithReturnPath()        also return the predecessor map.
//	WithMaxDistance(d)      airports farther than d stay at MaxInt64.
//	WithInfEdgeThreshold(t) routes with fare >= t are closed.
//
// Invalid option values are recorded and returned by Dijkstra, never panicked.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flightnet/core"
)

var (
	// ErrEmptySource is returned when no Source option was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound names a missing source or target. It also matches
	// core.ErrVertexNotFound.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrNegativeWeight is returned when any route has a negative fare.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance is recorded by WithMaxDistance for d < 0.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is recorded by WithInfEdgeThreshold for t <= 0.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by Cheapest when no route reaches the target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Options holds one run's configuration.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      int64 // settle nothing beyond this fare
	InfEdgeThreshold int64 // fares at or above this are impassable

	err error
}

// Option mutates Options.
type Option func(*Options)

// Source names the start airport.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath asks Dijkstra for the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps explored fares. Negative d records ErrBadMaxDistance.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold closes every route whose fare is >= t.
// t <= 0 records ErrBadInfThreshold.
func WithInfEdgeThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold = t
	}
}

// DefaultOptions starts from source with no distance cap, no closed routes
// and no predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
