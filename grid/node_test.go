package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RichTGale/astar/grid"
)

// TestNode_InitialSearchState expects fresh nodes to carry the sentinel
// "infinite" costs and no predecessor.
func TestNode_InitialSearchState(t *testing.T) {
	g, err := grid.New(2, 1, 1, grid.Manhattan)
	require.NoError(t, err)

	n, err := g.Node(0, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, grid.Unreached, n.G())
	assert.Equal(t, grid.Unreached, n.F())
	assert.Equal(t, grid.NoPredecessor, n.CameFrom())
}

func TestNode_SettersAndReset(t *testing.T) {
	g, err := grid.New(2, 1, 1, grid.Manhattan)
	require.NoError(t, err)

	n, _ := g.Node(1, 0, 0)
	n.SetG(2)
	n.SetF(5)
	n.SetCameFrom(0)

	assert.Equal(t, int64(2), n.G())
	assert.Equal(t, int64(5), n.F())
	assert.Equal(t, 0, n.CameFrom())

	n.Reset()
	assert.Equal(t, grid.Unreached, n.G())
	assert.Equal(t, grid.Unreached, n.F())
	assert.Equal(t, grid.NoPredecessor, n.CameFrom())
	assert.Len(t, n.Edges(), 1, "Reset keeps edges intact")
}

func TestNode_String(t *testing.T) {
	g, err := grid.New(3, 3, 3, grid.Manhattan)
	require.NoError(t, err)

	n, _ := g.Node(1, 2, 0)
	assert.Equal(t, "(1,2,0)", n.String())
}

func TestStyle_String(t *testing.T) {
	assert.Equal(t, "Manhattan", grid.Manhattan.String())
	assert.Equal(t, "Diagonal", grid.Diagonal.String())
	assert.Equal(t, "Unknown", grid.Style(9).String())
}
