package grid

import "fmt"

// Node is a vertex of a Graph. Its identity is the coordinate triple
// (x,y,z), mapped to a dense index into the graph's node arena.
//
// A Node carries two kinds of state:
//
//   - Topology: the ordered list of outgoing edges. Insertion order is
//     stable within a run and only changes through AddEdge/RemoveEdge.
//   - Search state: g (best known cost from the start node), f (g plus the
//     heuristic estimate to the goal) and cameFrom (dense index of the
//     predecessor on the best path found so far). Search state is owned by
//     whichever algorithm is currently running against the graph and is
//     reset by Graph.Reset before every search.
type Node struct {
	index    int
	x, y, z  int
	weight   int64
	edges    []Edge
	g, f     int64
	cameFrom int
}

// Index returns the node's dense index into its graph's arena.
// Complexity: O(1).
func (n *Node) Index() int { return n.index }

// X returns the node's x coordinate.
func (n *Node) X() int { return n.x }

// Y returns the node's y coordinate.
func (n *Node) Y() int { return n.y }

// Z returns the node's z coordinate.
func (n *Node) Z() int { return n.z }

// Weight returns the cost of entering this node. A weight of 0 marks the
// node impassable: edges into it carry weight 0 and are never relaxed.
func (n *Node) Weight() int64 { return n.weight }

// G returns the best known cost from the start node to this node,
// or Unreached if no search has touched it since the last reset.
func (n *Node) G() int64 { return n.g }

// F returns the estimated total cost of a path through this node
// (g plus the heuristic estimate to the goal), or Unreached.
func (n *Node) F() int64 { return n.f }

// CameFrom returns the dense index of the node preceding this one on the
// best path found so far, or NoPredecessor.
func (n *Node) CameFrom() int { return n.cameFrom }

// SetG records the cost of the best known path from the start to this node.
func (n *Node) SetG(g int64) { n.g = g }

// SetF records the estimated total cost of a path through this node.
func (n *Node) SetF(f int64) { n.f = f }

// SetCameFrom records the dense index of this node's predecessor on the
// best path found so far.
func (n *Node) SetCameFrom(index int) { n.cameFrom = index }

// Edges returns the node's outgoing edges in insertion order.
// The returned slice is owned by the node; callers must not modify it.
// Complexity: O(1).
func (n *Node) Edges() []Edge { return n.edges }

// Reset reinitializes the node's search state (g, f, cameFrom) without
// discarding its edges, so the same topology can be searched repeatedly.
// Complexity: O(1).
func (n *Node) Reset() {
	n.g = Unreached
	n.f = Unreached
	n.cameFrom = NoPredecessor
}

// String renders the node as its coordinate triple, e.g. "(1,2,0)".
func (n *Node) String() string {
	return fmt.Sprintf("(%d,%d,%d)", n.x, n.y, n.z)
}

// hasEdgeTo reports whether the node already owns an edge into the node at
// dense index to. Linear in the edge count (at most 26 for grid topology).
func (n *Node) hasEdgeTo(to int) bool {
	for _, e := range n.edges {
		if e.To == to {
			return true
		}
	}

	return false
}
