package astar

import (
	"fmt"

	"github.com/RichTGale/astar/grid"
)

// Search finds the lowest-cost path from start to goal and returns it as an
// ordered node sequence from start to goal inclusive.
//
// An empty (nil) path with a nil error means no path exists — an expected
// negative outcome, not an error. A nil, or foreign, start or goal is a
// caller contract violation and fails fast with ErrNilNode/ErrForeignNode.
//
// Open-set policy: a neighbor is pushed at most once; when a strictly
// cheaper route to an already-queued neighbor is found, its f-score is
// rewritten in place and the heap entry repositioned (true decrease-key),
// so the ordering key never goes stale.
//
// The graph's per-node search state is reset before every call, so repeated
// searches against the same topology are independent and deterministic.
// The returned slice is reused by the next Search call; copy it if it must
// outlive that.
//
// Complexity: O(E·V) worst case — each relaxation may scan the open set
// (O(V) membership check), a known ceiling inherited from the design.
// In practice the open set stays small relative to the grid.
func (a *Astar) Search(start, goal *grid.Node) ([]*grid.Node, error) {
	// 1) Validate the caller contract before touching any state.
	if start == nil || goal == nil {
		return nil, ErrNilNode
	}
	if !a.g.Contains(start) {
		return nil, fmt.Errorf("%w: start %s", ErrForeignNode, start)
	}
	if !a.g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrForeignNode, goal)
	}

	// 2) Reset: graph search state, open set, previous result.
	a.g.Reset()
	a.open.Clear()
	a.path = a.path[:0]

	// 3) Seed the open set with the start node at cost zero.
	start.SetG(0)
	start.SetF(Heuristic(start, goal, a.g.Style()))
	a.open.Push(start)

	// 4) Expand until the goal is finalized or the frontier empties.
	for !a.open.IsEmpty() {
		current, err := a.open.PopMin()
		if err != nil {
			return nil, err // unreachable: guarded by IsEmpty
		}
		if current == goal {
			a.reconstruct(start, current)

			return a.path, nil
		}
		a.relax(current, goal)
	}

	// 5) Open set exhausted without popping the goal: no path exists.
	return nil, nil
}

// Path returns the node sequence produced by the most recent Search, empty
// if no search has run or no path was found. The slice is reused by the
// next Search call.
func (a *Astar) Path() []*grid.Node {
	return a.path
}

// relax scores every traversable outgoing edge of current and records any
// strictly cheaper route to a neighbor. Newly discovered neighbors are
// pushed onto the open set; already-queued neighbors are repositioned via
// decrease-key after their f-score is lowered in place.
func (a *Astar) relax(current, goal *grid.Node) {
	for _, e := range current.Edges() {
		// Weight 0 marks an impassable destination; never traverse it.
		if e.Weight <= 0 {
			continue
		}
		neighbor := a.g.Target(e)

		// current was popped, so its g is finite and this cannot overflow.
		tentative := current.G() + e.Weight
		if tentative >= neighbor.G() {
			continue
		}

		// Strictly better route: record predecessor, cost, and estimate.
		neighbor.SetCameFrom(current.Index())
		neighbor.SetG(tentative)
		neighbor.SetF(tentative + Heuristic(neighbor, goal, a.g.Style()))

		if a.open.Contains(neighbor) {
			// f only ever decreases here, so Fix sifts the entry up.
			a.open.Fix(neighbor)
		} else {
			a.open.Push(neighbor)
		}
	}
}

// reconstruct walks came-from indices from the goal back to the start and
// stores the resulting start→goal sequence in a.path. The chain is acyclic:
// a predecessor is only ever recorded for a strictly cheaper route, which
// cannot form cycles under non-negative weights.
func (a *Astar) reconstruct(start, current *grid.Node) {
	a.path = append(a.path, current)
	for current != start {
		prev, err := a.g.NodeAt(current.CameFrom())
		if err != nil {
			break // unreachable: indices are written by relax from the same arena
		}
		a.path = append(a.path, prev)
		current = prev
	}
	// The walk collects goal→start; flip it in place.
	for i, j := 0, len(a.path)-1; i < j; i, j = i+1, j-1 {
		a.path[i], a.path[j] = a.path[j], a.path[i]
	}
}

// Cost sums the edge weights traversed by a path previously produced
// against g. A path of zero or one node costs 0. Returns ErrBrokenPath if
// two consecutive nodes are not joined by an edge.
//
// Complexity: O(len(path)·deg).
func Cost(g *grid.Graph, path []*grid.Node) (int64, error) {
	var total int64
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		found := false
		for _, e := range from.Edges() {
			if e.To == to.Index() {
				total += e.Weight
				found = true

				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %s→%s", ErrBrokenPath, from, to)
		}
	}

	return total, nil
}
