// Package astar implements the A* shortest-path search over a 3D weighted
// grid graph. This file declares the engine type and its sentinel errors.
package astar

import (
	"errors"

	"github.com/RichTGale/astar/grid"
	"github.com/RichTGale/astar/minheap"
)

// Sentinel errors returned by the A* engine.
var (
	// ErrNilGraph indicates that a nil *grid.Graph was passed to New.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilNode indicates that Search was called with a nil start or goal.
	ErrNilNode = errors.New("astar: start or goal node is nil")

	// ErrForeignNode indicates a start or goal node that does not belong to
	// the graph the engine was created for.
	ErrForeignNode = errors.New("astar: node does not belong to the search graph")

	// ErrBrokenPath indicates that Cost was given a node sequence with two
	// consecutive nodes not joined by an edge.
	ErrBrokenPath = errors.New("astar: consecutive path nodes are not connected")
)

// Astar searches one *grid.Graph for lowest-cost paths. It borrows the
// graph for the duration of each Search call and owns the open-set heap and
// the result path, both of which are cleared at the start of every search.
//
// An Astar (and its graph) must not be used by more than one search at a
// time: Search mutates per-node g/f/came-from state shared across the whole
// graph. This is a hard precondition of the design.
type Astar struct {
	g    *grid.Graph
	open *minheap.Heap[*grid.Node]
	path []*grid.Node
}

// New returns an engine bound to the given graph, with an open set keyed by
// node f-score. Returns ErrNilGraph if g is nil.
func New(g *grid.Graph) (*Astar, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Astar{
		g:    g,
		open: minheap.New(func(n *grid.Node) int64 { return n.F() }),
	}, nil
}
