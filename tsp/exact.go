// SPDX-License-Identifier: MIT

package tsp

// heldKarp returns the optimal closed tour from start over the closure.
//
// dp[mask*n+j] is the cheapest way to leave start, visit exactly the airports
// in mask (which always contains start), and stand at j. Predecessors are
// tried in ascending index with a strict <, so ties resolve to the lowest
// index.
//
// Partial sums saturate at unreachable. A nil result means every closed tour
// costs more than MaxInt64.
//
// Time O(n²·2ⁿ), memory O(n·2ⁿ).
func heldKarp(c *closure, start int) []int {
	n := c.n
	full := 1<<n - 1
	size := (full + 1) * n

	dp := make([]int64, size)
	parent := make([]int8, size)
	for i := range dp {
		dp[i] = unreachable
		parent[i] = -1
	}
	dp[(1<<start)*n+start] = 0

	for mask := 0; mask <= full; mask++ {
		if mask&(1<<start) == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			best, from := int64(unreachable), -1
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 || dp[prev*n+k] == unreachable {
					continue
				}
				if cand := addFare(dp[prev*n+k], c.dist[k][j]); cand < best {
					best, from = cand, k
				}
			}
			dp[mask*n+j] = best
			parent[mask*n+j] = int8(from)
		}
	}

	best, last := int64(unreachable), -1
	for j := 0; j < n; j++ {
		if j == start || dp[full*n+j] == unreachable {
			continue
		}
		if total := addFare(dp[full*n+j], c.dist[j][start]); total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return nil
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = start, start
	mask, j := full, last
	for pos := n - 1; pos >= 1; pos-- {
		tour[pos] = j
		p := int(parent[mask*n+j])
		mask ^= 1 << j
		j = p
	}

	return tour
}
