// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flightnet/core"
)

// unreachable marks a pair with no connecting chain of flights.
const unreachable = math.MaxInt64

// closure is the metric closure of a snapshot: the cheapest fare between
// every pair of airports plus a next-hop table to rebuild the chain.
type closure struct {
	n    int
	dist [][]int64
	next [][]int
}

// newClosure runs Floyd–Warshall over the snapshot's fare matrix.
//
// Implementation:
//   - Stage 1: Seed dist with direct fares (0 on the diagonal) and reject
//     negative fares.
//   - Stage 2: Relax through every intermediate k with a strict <, so the
//     lowest-index intermediate wins ties.
//   - Stage 3: A remaining unreachable pair means ErrIncompleteGraph when the
//     airports are split, and ErrFareOverflow when the only chains between
//     them sum past MaxInt64.
//
// Complexity: O(V³) time, O(V²) space.
func newClosure(snap *core.Snapshot) (*closure, error) {
	n := snap.Len()
	c := &closure{n: n, dist: make([][]int64, n), next: make([][]int, n)}
	for i := 0; i < n; i++ {
		c.dist[i] = make([]int64, n)
		c.next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				c.dist[i][j], c.next[i][j] = 0, j
			case snap.Adjacent(i, j):
				w := snap.Weight(i, j)
				if w < 0 {
					return nil, ErrNegativeWeight
				}
				if w == unreachable {
					return nil, ErrFareOverflow
				}
				c.dist[i][j], c.next[i][j] = w, j
			default:
				c.dist[i][j], c.next[i][j] = unreachable, -1
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if c.dist[i][k] == unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if c.dist[k][j] == unreachable {
					continue
				}
				if via := addFare(c.dist[i][k], c.dist[k][j]); via < c.dist[i][j] {
					c.dist[i][j] = via
					c.next[i][j] = c.next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c.dist[i][j] != unreachable {
				continue
			}
			if !connected(snap) {
				return nil, ErrIncompleteGraph
			}
			return nil, fmt.Errorf("%w: %q to %q", ErrFareOverflow, snap.Label(i), snap.Label(j))
		}
	}

	return c, nil
}

// connected reports whether every airport is reachable from the first one.
func connected(snap *core.Snapshot) bool {
	n := snap.Len()
	seen := make([]bool, n)
	stack := []int{0}
	seen[0] = true
	for count := 1; len(stack) > 0; {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := 0; v < n; v++ {
			if !seen[v] && snap.Adjacent(u, v) {
				seen[v] = true
				count++
				stack = append(stack, v)
			}
		}
		if count == n {
			return true
		}
	}

	return n <= 1
}

// addFare adds two non-negative fares, saturating at unreachable.
func addFare(a, b int64) int64 {
	if a > unreachable-b {
		return unreachable
	}

	return a + b
}

// hops returns the vertex chain from i to j, both ends included.
func (c *closure) hops(i, j int) []int {
	out := []int{i}
	for i != j {
		i = c.next[i][j]
		out = append(out, i)
	}

	return out
}

// cost sums closure fares along a closed tour; unreachable on overflow.
func (c *closure) cost(tour []int) int64 {
	var sum int64
	for i := 1; i < len(tour); i++ {
		sum = addFare(sum, c.dist[tour[i-1]][tour[i]])
	}

	return sum
}
