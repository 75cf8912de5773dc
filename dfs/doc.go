// Package dfs provides depth-first traversal over a flightnet core.Graph.
//
// What
//
//	DFS(g, start) returns the pre-order in which airports are first reached.
//	The traversal uses an explicit LIFO stack of matrix indices:
//
//	  push(start)
//	  while stack not empty:
//	      v := pop()
//	      if visited[v] { continue }      // stale entry
//	      visited[v] = true; record(v)
//	      for j := V-1; j >= 0; j--:      // highest index pushed first
//	          if adj(v, j) && !visited[j] { push(j) }
//
//	Because the lowest index is pushed last it is popped first, so ties are
//	broken in insertion order just like bfs.
//
// Why an explicit stack
//
//	A recursive walk over a dense network can nest as deep as V frames.
//	The slice-backed stack keeps memory on the heap and makes the stale-entry
//	behavior observable through DFSResult.StalePops.
//
// Consistency
//
//	DFS runs on a core.Snapshot; hooks may mutate the graph safely.
package dfs
