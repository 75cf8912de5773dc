// SPDX-License-Identifier: MIT

// Package prim_kruskal defines the error values, options and result type
// shared by the Prim and Kruskal backbone builders.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("prim_kruskal: graph is nil")

	// ErrEmptyRoot indicates Prim was called without a root airport.
	ErrEmptyRoot = errors.New("prim_kruskal: root vertex is empty")

	// ErrVertexNotFound indicates the Prim root does not exist.
	ErrVertexNotFound = fmt.Errorf("prim_kruskal: %w", core.ErrVertexNotFound)

	// ErrDisconnected indicates no spanning tree exists: the graph is empty
	// or has more than one component.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod is recorded by WithMethod for an unsupported Method.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Method selects the spanning-tree algorithm used by Compute.
type Method int

const (
	// MethodKruskal sorts every route and merges components.
	MethodKruskal Method = iota
	// MethodPrim grows a single tree from a root airport.
	MethodPrim
)

// String returns "kruskal" or "prim".
func (m Method) String() string {
	switch m {
	case MethodKruskal:
		return "kruskal"
	case MethodPrim:
		return "prim"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Route is one undirected edge of a backbone.
// From always precedes To in vertex insertion order.
type Route struct {
	From string
	To   string
	Fare int64
}

// Options configures Compute.
type Options struct {
	Method Method
	Root   string // used by MethodPrim; empty means the first vertex

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions selects Kruskal with no explicit root.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// WithMethod picks the algorithm. Unknown values are reported by Compute.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != MethodKruskal && m != MethodPrim {
			o.err = fmt.Errorf("%w: %v", ErrUnknownMethod, m)
			return
		}
		o.Method = m
	}
}

// WithRoot sets the Prim root airport.
func WithRoot(id string) Option {
	return func(o *Options) {
		o.Root = id
	}
}

// Compute dispatches to Kruskal or Prim according to opts.
// With MethodPrim and no root, the first vertex in insertion order is used.
func Compute(g *core.Graph, opts ...Option) ([]Route, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	if o.Method == MethodPrim {
		root := o.Root
		if root == "" {
			ids := g.Vertices()
			if len(ids) == 0 {
				return nil, 0, ErrDisconnected
			}
			root = ids[0]
		}

		return Prim(g, root)
	}

	return Kruskal(g)
}

// total sums route fares.
func total(routes []Route) int64 {
	var sum int64
	for _, r := range routes {
		sum += r.Fare
	}

	return sum
}
