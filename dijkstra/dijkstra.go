// Package dijkstra implements Dijkstra's cheapest-route algorithm over the
// adjacency matrix of a flightnet core.Graph.
//
// Notes on implementation choices:
//
//   - We scan the snapshot once up front to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/flightnet/core"
)

// Dijkstra computes the cheapest distances from Options.Source to every vertex.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the cheapest route to v goes through u; "" if none.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	snap := g.Snapshot()
	src, ok := snap.Index(cfg.Source)
	if !ok {
		return nil, nil, &core.VertexError{Op: "Dijkstra", ID: cfg.Source, Err: ErrVertexNotFound}
	}

	n := snap.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := snap.Weight(i, j); w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s–%s weight=%d",
					ErrNegativeWeight, snap.Label(i), snap.Label(j), w)
			}
		}
	}

	r := &runner{
		snap:    snap,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(src)
	r.process()

	dist := make(map[string]int64, n)
	for i, d := range r.dist {
		dist[snap.Label(i)] = d
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[string]string, n)
	for i, p := range r.prev {
		if p >= 0 {
			prev[snap.Label(i)] = snap.Label(p)
		} else {
			prev[snap.Label(i)] = ""
		}
	}

	return dist, prev, nil
}

// Cheapest returns the minimum total fare from source to target and the route.
// Equal endpoints yield a zero-cost single-vertex route.
func Cheapest(g *core.Graph, source, target string, opts ...Option) (int64, []string, error) {
	opts = append(opts, Source(source), WithReturnPath())
	dist, prev, err := Dijkstra(g, opts...)
	if err != nil {
		return 0, nil, err
	}
	d, ok := dist[target]
	if !ok {
		return 0, nil, &core.VertexError{Op: "Cheapest", ID: target, Err: ErrVertexNotFound}
	}
	if d == math.MaxInt64 {
		return 0, nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, source)
	}

	path := []string{target}
	for cur := target; prev[cur] != ""; cur = prev[cur] {
		path = append(path, prev[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return d, path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// All slices are indexed by snapshot position.
type runner struct {
	snap    *core.Snapshot
	options Options
	dist    []int64 // current best distance from Source
	prev    []int   // predecessor index, -1 if none
	visited []bool  // distance finalized
	pq      nodePQ  // lazy min-heap
}

// init sets every distance to +∞ and pushes the source with distance 0.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly settles the closest vertex until the heap is empty or
// the closest distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		r.relax(item.idx)
	}
}

// relax scans the matrix row of u and improves neighbor distances.
func (r *runner) relax(u int) {
	for v := 0; v < r.snap.Len(); v++ {
		if !r.snap.Adjacent(u, v) || r.visited[v] {
			continue
		}
		w := r.snap.Weight(u, v)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > math.MaxInt64-r.dist[u] {
			continue // the sum would overflow; treat the route as a wall
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem represents a vertex index and its tentative distance.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by index.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
