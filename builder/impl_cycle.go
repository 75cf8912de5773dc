// SPDX-License-Identifier: MIT
// Package: flightnet/builder
//
// impl_cycle.go - Cycle(n): a round trip through n airports.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Path routes first, then the closing route idFn(n-1) - idFn(0).
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(methodCycle, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return connect(methodCycle, g, cfg, ids[n-1], ids[0])
	}
}
