// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/RichTGale/astar.
package grid

import (
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a grid extent outside the supported range.
	ErrBadDimensions = errors.New("grid: extents must be between 1 and 65535")
	// ErrBadStyle indicates an unknown connectivity style.
	ErrBadStyle = errors.New("grid: unknown connectivity style")
	// ErrBadWeights indicates a node-weight slice of the wrong length or with negative entries.
	ErrBadWeights = errors.New("grid: node weights must be non-negative and cover every node")
	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("grid: edge weight must be non-negative")
	// ErrOutOfBounds indicates a coordinate or index outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNilNode indicates a nil *Node was passed where a grid node is required.
	ErrNilNode = errors.New("grid: node is nil")
	// ErrForeignNode indicates a *Node that does not belong to this graph.
	ErrForeignNode = errors.New("grid: node does not belong to this graph")
)

// MaxExtent is the largest supported size of a single axis.
// Coordinates are designed to fit a 16-bit unsigned range.
const MaxExtent = math.MaxUint16

// Unreached is the sentinel cost carried by a node that no search has
// touched yet. It doubles as "+infinity" in relaxation comparisons.
const Unreached int64 = math.MaxInt64

// NoPredecessor is the came-from index of a node that has no recorded
// predecessor on the current search path.
const NoPredecessor = -1

// Style selects neighbor connectivity: axis-aligned only (Manhattan,
// 6-connected in 3D) or including diagonals (Diagonal, 26-connected).
type Style int

const (
	// Manhattan connects each node to neighbors differing by ±1 on exactly one axis.
	Manhattan Style = iota
	// Diagonal connects each node to every neighbor whose offset is a nonzero
	// vector in {-1,0,1}³.
	Diagonal
)

// String returns the canonical name of the style.
func (s Style) String() string {
	switch s {
	case Manhattan:
		return "Manhattan"
	case Diagonal:
		return "Diagonal"
	default:
		return "Unknown"
	}
}

// Edge is a directed arc from its owning node to the node at dense index To.
// Weight is the cost of moving from the owning node into To; a weight of 0
// marks the arc as impassable and search algorithms must not traverse it.
type Edge struct {
	To     int
	Weight int64
}

// Options contains tunable parameters for graph construction.
//
// Weights  – optional per-node entry costs, flattened x-major
//
//	(index = (x*ySize+y)*zSize + z). Length must equal the node count.
//	A weight of 0 marks the node impassable. Defaults to uniform 1.
//
// Logger   – destination for benign-redundancy diagnostics (duplicate edge
//
//	addition, removal of a missing edge). Defaults to slog.Default().
type Options struct {
	Weights []int64
	Logger  *slog.Logger
}

// Option represents a functional option for configuring graph construction.
type Option func(*Options)

// WithWeights supplies per-node entry costs, flattened x-major.
// A node with weight 0 is impassable: every edge into it is created with
// weight 0 and excluded from relaxation by search algorithms.
func WithWeights(weights []int64) Option {
	return func(o *Options) {
		o.Weights = weights
	}
}

// WithLogger routes diagnostics for logged no-ops (duplicate AddEdge,
// RemoveEdge of a missing edge) to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// uniform weight 1 for every node and the process-default slog logger.
func DefaultOptions() Options {
	return Options{
		Weights: nil,
		Logger:  slog.Default(),
	}
}
