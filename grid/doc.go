// Package grid models a three-dimensional weighted grid as a directed
// graph suitable for shortest-path search.
//
// What:
//
//   - Graph owns one Node per (x,y,z) coordinate in a dense arena; node
//     identity is the flattened x-major index, so predecessor links are
//     plain integers rather than raw pointers.
//   - Connectivity is generated once at construction from a Style:
//     Manhattan (6-connected, ±1 on exactly one axis) or Diagonal
//     (26-connected, every nonzero offset in {-1,0,1}³).
//   - Each Edge is a one-way arc carrying the cost of moving from its
//     owning node into its target. At construction that cost is the
//     target's entry weight (uniform 1 by default, or per-node costs via
//     WithWeights); a weight of 0 marks the target impassable.
//   - AddEdge / RemoveEdge mutate individual arcs after construction,
//     independent of the style that produced the initial topology.
//     Redundant calls (duplicate add, missing remove) are logged no-ops.
//   - Reset clears per-node search state (g, f, came-from) in place so the
//     same topology can be searched repeatedly without rebuilding.
//
// Why:
//
//   - Voxel maps and layered tile worlds: route units through 3D terrain.
//   - Warehouse / lift-and-corridor models: floors connected by shafts.
//   - As the substrate for the A* engine in the parent astar package.
//
// Complexity:
//
//   - New:                O(N·d) time and memory (N = nodes, d = 6 or 26).
//   - Node / NodeAt:      O(1).
//   - AddEdge/RemoveEdge: O(deg(from)), deg ≤ 26 for generated topology.
//   - Reset:              O(N).
//
// Errors:
//
//   - ErrBadDimensions: an extent lies outside [1, MaxExtent].
//   - ErrBadStyle:      unknown connectivity style.
//   - ErrBadWeights:    weight slice of wrong length or with negative entries.
//   - ErrBadWeight:     negative weight passed to AddEdge.
//   - ErrOutOfBounds:   coordinate or index outside the grid (contract
//     violation; returned, never a process exit).
//   - ErrNilNode / ErrForeignNode: edge mutation with a nil node or a node
//     from another graph.
//
// Concurrency:
//
//   - A Graph is exclusively owned by its creator. Searches mutate shared
//     per-node g/f/came-from state, so running two searches against the
//     same Graph concurrently is unsupported.
package grid
