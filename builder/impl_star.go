// SPDX-License-Identifier: MIT
// Package: flightnet/builder
//
// impl_star.go - Star(n): a hub-and-spoke network.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID HubID first, then leaves idFn(1..n-1).
//   - Spokes emitted in order HubID - leaf[i].
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// HubID is the ID of the Star center.
const HubID = "HUB"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub HubID and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(HubID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, HubID, err)
		}

		var leafID string
		for i := 1; i < n; i++ {
			leafID = cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}
			if err := connect(methodStar, g, cfg, HubID, leafID); err != nil {
				return err
			}
		}

		return nil
	}
}
