// Package grid models a dense three-dimensional weighted grid as a directed
// graph. Nodes live in a single arena indexed by flattened coordinates;
// edges are generated once at construction from the chosen connectivity
// style and may afterwards be mutated one arc at a time.
package grid

import (
	"fmt"
	"log/slog"
	"strings"
)

// Graph owns one Node per (x,y,z) coordinate of a 3D grid with immutable
// extents. Connectivity is generated at construction time from the chosen
// Style; AddEdge and RemoveEdge mutate individual arcs afterwards,
// independent of the style that produced the initial topology.
//
// A Graph is not safe for concurrent use: searches mutate shared per-node
// search state (g, f, cameFrom), so at most one search may run against a
// Graph at a time. This is a hard precondition, not an implementation gap.
type Graph struct {
	nodes   []Node
	xSize   int
	ySize   int
	zSize   int
	style   Style
	offsets [][3]int
	logger  *slog.Logger
}

// manhattanOffsets are the six unit-axis neighbor offsets of a 3D grid.
var manhattanOffsets = [][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// diagonalOffsets enumerates every nonzero offset in {-1,0,1}³, in a fixed
// order so that edge generation is deterministic.
func diagonalOffsets() [][3]int {
	offsets := make([][3]int, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offsets = append(offsets, [3]int{dx, dy, dz})
			}
		}
	}

	return offsets
}

// New constructs a Graph with the given extents and connectivity style.
//
// One Node is allocated per coordinate; then, for every node, each in-bounds
// style offset produces one directed edge into the neighbor, weighted by the
// neighbor's entry cost (uniform 1 unless WithWeights overrides it).
// Out-of-bounds offsets are silently skipped. Impassable neighbors
// (weight 0) still receive weight-0 edges; search algorithms skip them.
//
// Returns ErrBadDimensions if any extent is outside [1, MaxExtent],
// ErrBadStyle for an unknown style, and ErrBadWeights if the supplied
// weight slice has the wrong length or a negative entry.
//
// Complexity: O(N·d) time and memory, N = xSize·ySize·zSize, d = 6 or 26.
func New(xSize, ySize, zSize int, style Style, opts ...Option) (*Graph, error) {
	// 1) Apply functional options over defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate extents and style before allocating anything.
	if xSize < 1 || xSize > MaxExtent ||
		ySize < 1 || ySize > MaxExtent ||
		zSize < 1 || zSize > MaxExtent {
		return nil, fmt.Errorf("%w: got %d×%d×%d", ErrBadDimensions, xSize, ySize, zSize)
	}
	if style != Manhattan && style != Diagonal {
		return nil, fmt.Errorf("%w: %d", ErrBadStyle, style)
	}

	n := xSize * ySize * zSize

	// 3) Validate the optional weight slice: full coverage, no negatives.
	if cfg.Weights != nil {
		if len(cfg.Weights) != n {
			return nil, fmt.Errorf("%w: got %d weights for %d nodes", ErrBadWeights, len(cfg.Weights), n)
		}
		for i, w := range cfg.Weights {
			if w < 0 {
				return nil, fmt.Errorf("%w: weight %d at index %d", ErrBadWeights, w, i)
			}
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Graph{
		nodes:  make([]Node, n),
		xSize:  xSize,
		ySize:  ySize,
		zSize:  zSize,
		style:  style,
		logger: logger,
	}
	if style == Diagonal {
		g.offsets = diagonalOffsets()
	} else {
		g.offsets = manhattanOffsets
	}

	// 4) Initialize the node arena: coordinates, entry weights, search state.
	for i := range g.nodes {
		x, y, z := g.Coordinate(i)
		weight := int64(1)
		if cfg.Weights != nil {
			weight = cfg.Weights[i]
		}
		g.nodes[i] = Node{
			index:    i,
			x:        x,
			y:        y,
			z:        z,
			weight:   weight,
			g:        Unreached,
			f:        Unreached,
			cameFrom: NoPredecessor,
		}
	}

	// 5) Generate connectivity: one directed edge per in-bounds neighbor,
	//    charged with the destination node's entry weight.
	for i := range g.nodes {
		node := &g.nodes[i]
		for _, d := range g.offsets {
			nx, ny, nz := node.x+d[0], node.y+d[1], node.z+d[2]
			if !g.InBounds(nx, ny, nz) {
				continue
			}
			to := g.index(nx, ny, nz)
			node.edges = append(node.edges, Edge{To: to, Weight: g.nodes[to].weight})
		}
	}

	return g, nil
}

// XSize returns the extent of the x axis.
func (g *Graph) XSize() int { return g.xSize }

// YSize returns the extent of the y axis.
func (g *Graph) YSize() int { return g.ySize }

// ZSize returns the extent of the z axis.
func (g *Graph) ZSize() int { return g.zSize }

// Style returns the connectivity style the graph was built with.
func (g *Graph) Style() Style { return g.style }

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// InBounds reports whether (x,y,z) lies within the grid extents.
// Complexity: O(1).
func (g *Graph) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.xSize &&
		y >= 0 && y < g.ySize &&
		z >= 0 && z < g.zSize
}

// index maps (x,y,z) to an x-major dense index: (x*ySize+y)*zSize + z.
// Callers must bounds-check first. Complexity: O(1).
func (g *Graph) index(x, y, z int) int {
	return (x*g.ySize+y)*g.zSize + z
}

// Coordinate converts a dense index back to (x,y,z). Complexity: O(1).
func (g *Graph) Coordinate(index int) (x, y, z int) {
	z = index % g.zSize
	y = (index / g.zSize) % g.ySize
	x = index / (g.zSize * g.ySize)

	return x, y, z
}

// Node returns the node at (x,y,z).
//
// Out-of-bounds coordinates are a caller contract violation and surface as
// ErrOutOfBounds rather than terminating the process.
// Complexity: O(1).
func (g *Graph) Node(x, y, z int) (*Node, error) {
	if !g.InBounds(x, y, z) {
		return nil, fmt.Errorf("%w: (%d,%d,%d)", ErrOutOfBounds, x, y, z)
	}

	return &g.nodes[g.index(x, y, z)], nil
}

// NodeAt returns the node at the given dense index, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Graph) NodeAt(index int) (*Node, error) {
	if index < 0 || index >= len(g.nodes) {
		return nil, fmt.Errorf("%w: index %d", ErrOutOfBounds, index)
	}

	return &g.nodes[index], nil
}

// Target resolves an edge previously obtained from one of this graph's
// nodes to the node it points at. The edge must belong to this graph.
// Complexity: O(1).
func (g *Graph) Target(e Edge) *Node {
	return &g.nodes[e.To]
}

// Contains reports whether n is a node owned by this graph's arena.
// Complexity: O(1).
func (g *Graph) Contains(n *Node) bool {
	return n != nil && n.index >= 0 && n.index < len(g.nodes) && &g.nodes[n.index] == n
}

// AddEdge creates a one-way edge from one node to another with the given
// weight. The endpoints need not be style neighbors: arbitrary arcs may be
// added on top of the generated topology.
//
// Adding an edge that already exists is a logged no-op, never an error.
// Returns ErrNilNode, ErrForeignNode or ErrBadWeight on contract violations.
// Complexity: O(deg(from)).
func (g *Graph) AddEdge(from, to *Node, weight int64) error {
	if err := g.checkEndpoints(from, to); err != nil {
		return err
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if from.hasEdgeTo(to.index) {
		g.logger.Warn("grid: edge already exists; not added again",
			"from", from.String(), "to", to.String())

		return nil
	}
	from.edges = append(from.edges, Edge{To: to.index, Weight: weight})

	return nil
}

// RemoveEdge deletes the one-way edge between the two nodes, preserving the
// insertion order of the remaining edges.
//
// Removing an edge that does not exist is a logged no-op, never an error.
// Returns ErrNilNode or ErrForeignNode on contract violations.
// Complexity: O(deg(from)).
func (g *Graph) RemoveEdge(from, to *Node) error {
	if err := g.checkEndpoints(from, to); err != nil {
		return err
	}
	for i, e := range from.edges {
		if e.To == to.index {
			from.edges = append(from.edges[:i], from.edges[i+1:]...)

			return nil
		}
	}
	g.logger.Warn("grid: edge does not exist; nothing removed",
		"from", from.String(), "to", to.String())

	return nil
}

// Reset reinitializes every node's search state (g, f, cameFrom) in place,
// leaving topology untouched, so the graph can be searched repeatedly
// without rebuilding. Complexity: O(N).
func (g *Graph) Reset() {
	for i := range g.nodes {
		g.nodes[i].Reset()
	}
}

// checkEndpoints validates the shared AddEdge/RemoveEdge contract.
func (g *Graph) checkEndpoints(from, to *Node) error {
	if from == nil || to == nil {
		return ErrNilNode
	}
	if !g.Contains(from) {
		return fmt.Errorf("%w: from %s", ErrForeignNode, from)
	}
	if !g.Contains(to) {
		return fmt.Errorf("%w: to %s", ErrForeignNode, to)
	}

	return nil
}

// String renders the grid layer by layer as a matrix of node entry weights,
// e.g. for a 2×2×1 grid: "Graph 2×2×1 (Manhattan)\nz=0:\n1 1\n1 1\n".
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph %d×%d×%d (%s)\n", g.xSize, g.ySize, g.zSize, g.style)
	for z := 0; z < g.zSize; z++ {
		fmt.Fprintf(&b, "z=%d:\n", z)
		for y := 0; y < g.ySize; y++ {
			for x := 0; x < g.xSize; x++ {
				if x > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%d", g.nodes[g.index(x, y, z)].weight)
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}
