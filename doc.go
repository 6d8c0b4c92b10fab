// Package fibpath is an in-memory toolkit for single-source shortest paths
// over weighted graphs, built around a Fibonacci-heap priority queue.
//
// 🚀 What is fibpath?
//
//	A small, thread-safe library plus CLI that brings together:
//		• fibheap: a generic Fibonacci heap with O(1) amortized decrease-key
//		• core: a generic V→(V→Edge) graph with an Infinity sentinel
//		• dijkstra: early-exit Search, full ShortestPaths tables and Path,
//		  each on a Fibonacci heap or a lazy binary heap
//		• builder: deterministic synthetic graphs (path, cycle, grid, complete, random)
//		• graphio: YAML and JSON graph documents
//
// ✨ Guarantees
//
//   - Unreachable vertices map to core.Infinity; "no path" is never an error
//   - Negative weights met during relaxation yield dijkstra.ErrNegativeWeight
//   - Fibonacci and binary-heap variants return identical tables
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("A", "C", 4)
//	_ = g.AddEdge("B", "C", 1)
//	d, ok, _ := dijkstra.Search(g, "A", "C") // 2, true
//
// The fibpath command (cmd/fibpath) exposes search, table and generate
// over graph documents.
//
//	go install github.com/katalvlaran/fibpath/cmd/fibpath@latest
package fibpath
