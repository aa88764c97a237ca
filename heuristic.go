package astar

import "github.com/RichTGale/astar/grid"

// Heuristic estimates the remaining cost from node a to node b under the
// given connectivity style, using the absolute per-axis coordinate
// differences dx, dy, dz:
//
//   - Manhattan: dx + dy + dz. Admissible and consistent on 6-connected
//     grids with uniform unit costs.
//   - Diagonal:  (dx + dy + dz) - 2·min(dx, dy, dz). An octile-style
//     estimate for 26-connected movement where a diagonal step costs no
//     more than an axis-aligned one; admissible only while diagonal edge
//     weights are not inflated above axis-aligned weights.
//
// Per-node weights above 1 keep both estimates admissible, since every
// step then costs at least as much as the unit step the estimate assumes.
func Heuristic(a, b *grid.Node, style grid.Style) int64 {
	dx := abs(a.X() - b.X())
	dy := abs(a.Y() - b.Y())
	dz := abs(a.Z() - b.Z())

	if style == grid.Diagonal {
		return int64(dx + dy + dz - 2*min(dx, dy, dz))
	}

	return int64(dx + dy + dz)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
