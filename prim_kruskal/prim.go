// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// edgePQ is a min-heap of crossing routes ordered by fare, then by the
// endpoints' indices.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].fare != pq[j].fare {
		return pq[i].fare < pq[j].fare
	}
	if pq[i].v != pq[j].v {
		return pq[i].v < pq[j].v
	}

	return pq[i].u < pq[j].u
}
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}

// Prim grows the minimum-fare backbone outward from root.
//
// Candidates hold u inside the tree and v outside it. Stale candidates whose
// v joined the tree after they were pushed are discarded at pop time.
// Routes are returned in the order they were added, each normalized so From
// precedes To in insertion order.
//
// Errors:
//   - ErrGraphNil, ErrEmptyRoot.
//   - *core.VertexError wrapping ErrVertexNotFound for an unknown root.
//   - ErrDisconnected if some airport cannot be reached from root.
//
// Complexity: O(V² log V) time on the matrix, O(V²) heap space worst case.
func Prim(g *core.Graph, root string) ([]Route, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}

	snap := g.Snapshot()
	start, ok := snap.Index(root)
	if !ok {
		return nil, 0, &core.VertexError{Op: "Prim", ID: root, Err: ErrVertexNotFound}
	}
	n := snap.Len()
	if n == 1 {
		return []Route{}, 0, nil
	}

	inTree := make([]bool, n)
	pq := make(edgePQ, 0, n)
	grow := func(u int) {
		inTree[u] = true
		for v := 0; v < n; v++ {
			if !inTree[v] && snap.Adjacent(u, v) {
				heap.Push(&pq, candidate{u: u, v: v, fare: snap.Weight(u, v)})
			}
		}
	}

	grow(start)
	routes := make([]Route, 0, n-1)
	for pq.Len() > 0 && len(routes) < n-1 {
		c := heap.Pop(&pq).(candidate)
		if inTree[c.v] {
			continue
		}
		from, to := c.u, c.v
		if from > to {
			from, to = to, from
		}
		routes = append(routes, Route{From: snap.Label(from), To: snap.Label(to), Fare: c.fare})
		grow(c.v)
	}
	if len(routes) < n-1 {
		return nil, 0, fmt.Errorf("%w: %d of %d airports reachable from %q",
			ErrDisconnected, len(routes)+1, n, root)
	}

	return routes, total(routes), nil
}
