// Package matrix renders the adjacency matrix of a core.Graph as text.
package matrix

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/flightnet/core"
)

const (
	headerLead = "   "  // before the first header label
	headerGap  = "    " // after every header label
	rowGap     = "  "   // after the row label
	cellGap    = "    " // after every cell
)

// WriteAdjacency writes the full V×V weight matrix of g to w.
//
// Layout:
//
//	"   " + each label + "    " + "\n"
//	for every row: label + "  " + each weight + "    " + "\n"
//
// Cells without an edge print as 0. Rows and columns follow vertex insertion
// order. An empty graph produces the bare header line.
//
// Complexity: O(V²) time, O(V²) for the snapshot.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	if w == nil {
		return ErrNilWriter
	}
	if g == nil {
		return ErrGraphNil
	}

	snap := g.Snapshot()
	bw := bufio.NewWriter(w)

	bw.WriteString(headerLead)
	for i := 0; i < snap.Len(); i++ {
		bw.WriteString(snap.Label(i))
		bw.WriteString(headerGap)
	}
	bw.WriteByte('\n')

	for i := 0; i < snap.Len(); i++ {
		bw.WriteString(snap.Label(i))
		bw.WriteString(rowGap)
		for j := 0; j < snap.Len(); j++ {
			bw.WriteString(strconv.FormatInt(snap.Weight(i, j), 10))
			bw.WriteString(cellGap)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteEdges writes one "SRC->DST" line per ordered edge pair of g, in the
// row-major order of core.Graph.Edges. Each undirected edge appears twice.
func WriteEdges(w io.Writer, g *core.Graph) error {
	if w == nil {
		return ErrNilWriter
	}
	if g == nil {
		return ErrGraphNil
	}

	bw := bufio.NewWriter(w)
	for src, dst := range g.Edges() {
		bw.WriteString(src)
		bw.WriteString("->")
		bw.WriteString(dst)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
