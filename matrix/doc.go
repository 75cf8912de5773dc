// Package matrix offers text renderings of a flightnet core.Graph.
//
// The matrix package provides:
//
//   - WriteAdjacency: the plain V×V weight grid, labels on the first row and
//     column, in vertex insertion order.
//   - RenderTable: the same grid as a bordered lipgloss table, with
//     WithBorder, WithBorderColor and WithHideZero options.
//   - WriteEdges: every ordered edge pair as a "SRC->DST" line.
//
// All renderers work on a core.Snapshot and never mutate the graph.
package matrix
