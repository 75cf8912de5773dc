// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// Solve plans a round trip from the home airport through every airport.
//
// Implementation:
//   - Stage 1: Apply options; validate graph, size and start airport.
//   - Stage 2: Build the metric closure on a snapshot (ErrNegativeWeight,
//     ErrIncompleteGraph, ErrFareOverflow). Airports without a direct flight
//     are joined by their cheapest connection.
//   - Stage 3: Order airports with the selected algorithm, reject a tour
//     whose cost overflows, and canonicalize the orientation.
//   - Stage 4: Expand each leg into direct flights for Itinerary.
//
// Complexity: O(V³) for the closure plus the solver's own cost.
func Solve(g *core.Graph, opts ...Option) (*Tour, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}

	snap := g.Snapshot()
	n := snap.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrTooFewVertices, n)
	}
	start := 0
	if o.Start != "" {
		var ok bool
		if start, ok = snap.Index(o.Start); !ok {
			return nil, &core.VertexError{Op: "Solve", ID: o.Start, Err: ErrVertexNotFound}
		}
	}

	algo := o.Algorithm
	if algo == Auto {
		algo = NearestNeighbor
		if n <= AutoExactLimit {
			algo = ExactHeldKarp
		}
	}
	if algo == ExactHeldKarp && n > MaxExactAirports {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyAirports, n, MaxExactAirports)
	}

	c, err := newClosure(snap)
	if err != nil {
		return nil, err
	}

	var order []int
	if algo == ExactHeldKarp {
		order = heldKarp(c, start)
	} else {
		order = nearestNeighbor(c, start)
		if o.LocalSearch {
			twoOpt(c, order, o.MaxIters)
		}
	}
	if order == nil {
		return nil, ErrFareOverflow
	}
	cost := c.cost(order)
	if cost == unreachable {
		return nil, ErrFareOverflow
	}
	canonicalize(order)

	return &Tour{
		Order:     labels(snap, order),
		Itinerary: labels(snap, expand(c, order)),
		Cost:      cost,
		Algorithm: algo,
	}, nil
}

// expand replaces each leg of tour by its chain of direct flights.
func expand(c *closure, tour []int) []int {
	out := []int{tour[0]}
	for i := 1; i < len(tour); i++ {
		out = append(out, c.hops(tour[i-1], tour[i])[1:]...)
	}

	return out
}

func labels(snap *core.Snapshot, idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = snap.Label(v)
	}

	return out
}
