// Package astar finds lowest-cost paths through three-dimensional weighted
// grids with the A* algorithm.
//
// 🚀 What is astar?
//
//	A small, focused pathfinding library built from three pieces:
//		• grid/    — a dense 3D grid graph: one node per (x,y,z), directed
//		             weighted edges generated from a connectivity style
//		             (Manhattan 6-connected or Diagonal 26-connected),
//		             plus per-arc mutation and per-node entry costs
//		• minheap/ — a generic array-backed binary min-heap keyed by a
//		             caller-supplied extractor, used as the open set
//		• astar    — the engine: best-first expansion minimizing f = g + h,
//		             true decrease-key on the open set, and came-from
//		             path reconstruction
//
// ✨ Why choose astar?
//
//   - Typed errors everywhere – contract violations return sentinel errors,
//     never terminate the process
//   - Deterministic – insertion-ordered edges and structural tie-breaks make
//     repeated searches over the same topology return identical paths
//   - Reusable graphs – Reset clears search state in place, so one graph
//     serves any number of sequential queries
//   - Pure Go – no cgo, no runtime dependencies
//
// Quick example, a 3×3×3 unit-cost grid:
//
//	g, _ := grid.New(3, 3, 3, grid.Manhattan)
//	start, _ := g.Node(0, 0, 0)
//	goal, _ := g.Node(2, 2, 2)
//	engine, _ := astar.New(g)
//	path, _ := engine.Search(start, goal) // 7 nodes, cost 6
//
// Thread safety:
//
//	A Graph and its engine are single-threaded by contract. Search mutates
//	per-node g/f/came-from state shared across the whole graph, so at most
//	one search may run against a graph at a time.
package astar
