// SPDX-License-Identifier: MIT
// Package: flightnet/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - BuildGraph(gopts, bopts, cons...) creates g, resolves cfg, runs cons in order.
//   - Apply(g, bopts, cons...) runs cons against an existing graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order give identical graphs.
//   - Never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching the graph
// and add vertices in ascending index order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: the sum of each constructor's cost.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, bopts, cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs cons against g. Vertices already present in g make a
// constructor fail with core.ErrDuplicateVertex; work done before the
// failure stays in g.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: %w", ErrGraphNil)
	}
	if err := apply(g, bopts, cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, bopts []BuilderOption, cons []Constructor) error {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return cfg.err
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds one route with a fare drawn from cfg.
func connect(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	fare := cfg.fareFn(cfg.rng)
	if err := g.AddEdge(u, v, fare); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, fare=%d): %w", method, u, v, fare, err)
	}

	return nil
}
