// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/flightnet/core"
)

// candidate is an upper-triangle matrix entry.
type candidate struct {
	u, v int
	fare int64
}

// dsu is a slice-backed disjoint-set with path halving and union by rank.
type dsu struct {
	parent []int
	rank   []uint8
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of a and b; false if they were already joined.
func (d *dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}

// Kruskal computes the minimum-fare backbone of g.
//
// Implementation:
//   - Stage 1: Snapshot g; zero vertices is ErrDisconnected, one vertex is
//     an empty backbone.
//   - Stage 2: Collect the upper triangle of the matrix row by row and
//     stable-sort by fare, so equal fares keep insertion order.
//   - Stage 3: Accept each route joining two components until V-1 routes
//     are chosen; fewer means ErrDisconnected.
//
// Negative fares are allowed.
//
// Complexity:
//   - Time O(V² + E log E), Space O(V + E).
func Kruskal(g *core.Graph) ([]Route, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	snap := g.Snapshot()
	n := snap.Len()
	switch n {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []Route{}, 0, nil
	}

	cands := make([]candidate, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if snap.Adjacent(i, j) {
				cands = append(cands, candidate{u: i, v: j, fare: snap.Weight(i, j)})
			}
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].fare < cands[b].fare
	})

	sets := newDSU(n)
	routes := make([]Route, 0, n-1)
	for _, c := range cands {
		if !sets.union(c.u, c.v) {
			continue
		}
		routes = append(routes, Route{From: snap.Label(c.u), To: snap.Label(c.v), Fare: c.fare})
		if len(routes) == n-1 {
			break
		}
	}
	if len(routes) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return routes, total(routes), nil
}
