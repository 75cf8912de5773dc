// File: validators.go
// Role: Structural self-check of the matrix representation.

package core

import (
	"errors"
	"fmt"
)

// ErrInconsistent reports a broken structural invariant. It is never returned
// by a correct Graph; Validate exists for tests and debugging.
var ErrInconsistent = errors.New("core: graph state inconsistent")

// Validate checks every structural invariant of g:
//   - the matrix has one row per vertex and each row one cell per vertex,
//   - the matrix is symmetric with a zero diagonal,
//   - index maps every label to its position and holds nothing else.
//
// Complexity: O(V²).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.labels)
	if len(g.weights) != n {
		return fmt.Errorf("%w: %d rows for %d vertices", ErrInconsistent, len(g.weights), n)
	}
	if len(g.index) != n {
		return fmt.Errorf("%w: %d index entries for %d vertices", ErrInconsistent, len(g.index), n)
	}
	for i, row := range g.weights {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInconsistent, i, len(row), n)
		}
	}
	for i, id := range g.labels {
		if idx, ok := g.index[id]; !ok || idx != i {
			return fmt.Errorf("%w: index[%q]=%d, want %d", ErrInconsistent, id, idx, i)
		}
		if g.weights[i][i] != noEdge {
			return fmt.Errorf("%w: self-loop on %q", ErrInconsistent, id)
		}
		for j := i + 1; j < n; j++ {
			if g.weights[i][j] != g.weights[j][i] {
				return fmt.Errorf("%w: asymmetric cell (%d,%d)", ErrInconsistent, i, j)
			}
		}
	}

	return nil
}
