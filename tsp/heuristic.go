// SPDX-License-Identifier: MIT

package tsp

// nearestNeighbor builds a closed tour by always flying to the cheapest
// unvisited airport next, lowest index first on ties. O(n²).
func nearestNeighbor(c *closure, start int) []int {
	n := c.n
	seen := make([]bool, n)
	tour := make([]int, 0, n+1)

	cur := start
	seen[cur] = true
	tour = append(tour, cur)
	for len(tour) < n {
		next, best := -1, int64(unreachable)
		for j := 0; j < n; j++ {
			if !seen[j] && c.dist[cur][j] < best {
				next, best = j, c.dist[cur][j]
			}
		}
		seen[next] = true
		tour = append(tour, next)
		cur = next
	}

	return append(tour, start)
}

// twoOpt applies first-improvement 2-opt to a closed tour in place.
//
// For positions 1 ≤ i < k ≤ n-1 with a=T[i-1], b=T[i], x=T[k], y=T[k+1],
// reversing T[i..k] swaps legs a-b and x-y for a-x and b-y. The first swap
// with d(a,x)+d(b,y) < d(a,b)+d(x,y) is applied and the scan restarts. maxIters caps the
// number of accepted moves; 0 means no cap. The start airport never moves.
//
// Complexity: O(n²) per scan, O(iter·n²) overall.
func twoOpt(c *closure, tour []int, maxIters int) {
	n := len(tour) - 1
	if n < 4 {
		return
	}
	d := c.dist

	for moves := 0; maxIters == 0 || moves < maxIters; moves++ {
		if !improve(d, tour, n) {
			return
		}
	}
}

// improve applies the first improving 2-opt move; false at a local optimum.
func improve(d [][]int64, tour []int, n int) bool {
	for i := 1; i < n-1; i++ {
		for k := i + 1; k < n; k++ {
			a, b, x, y := tour[i-1], tour[i], tour[k], tour[k+1]
			if addFare(d[a][x], d[b][y]) < addFare(d[a][b], d[x][y]) {
				reverse(tour, i, k)
				return true
			}
		}
	}

	return false
}

// reverse flips tour[i..k] in place.
func reverse(tour []int, i, k int) {
	for ; i < k; i, k = i+1, k-1 {
		tour[i], tour[k] = tour[k], tour[i]
	}
}

// canonicalize orients a closed tour so its second stop has the lower index
// of the two neighbors of start. Symmetric fares keep the cost unchanged.
func canonicalize(tour []int) {
	n := len(tour) - 1
	if n >= 3 && tour[1] > tour[n-1] {
		reverse(tour, 1, n-1)
	}
}
