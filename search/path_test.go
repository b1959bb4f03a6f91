package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-solver/grid"
)

// TestReconstructUndiscovered verifies a failed walk reports no path and marks nothing
func TestReconstructUndiscovered(t *testing.T) {
	g := mustGrid(t, "S..,...,..E")

	path, err := Reconstruct(g, g.Goal())
	assert.Nil(t, path)
	require.ErrorIs(t, err, ErrNoPath)

	var noPath *NoPathError
	require.ErrorAs(t, err, &noPath)
	assert.Equal(t, g.Goal(), noPath.Point)
	assert.Equal(t, 0, g.FinalCount())
}

func TestReconstructBrokenChain(t *testing.T) {
	g := mustGrid(t, "S..,...,..E")
	g.MarkStart()

	// goal hangs off a cell that was never linked to the start
	linked, err := g.Discover(g.Goal(), pt(1, 1))
	require.NoError(t, err)
	require.True(t, linked)

	_, err = Reconstruct(g, g.Goal())
	require.ErrorIs(t, err, ErrNoPath)
	assert.Contains(t, err.Error(), "chain broken at (1,1)")
	assert.Equal(t, 0, g.FinalCount())
}

func TestReconstructCycle(t *testing.T) {
	g := mustGrid(t, "S..,...,..E")
	g.MarkStart()

	for _, link := range [][2]grid.Point{
		{pt(1, 1), pt(1, 2)},
		{pt(1, 2), pt(2, 2)},
		{pt(2, 2), pt(1, 1)},
	} {
		linked, err := g.Discover(link[0], link[1])
		require.NoError(t, err)
		require.True(t, linked)
	}

	_, err := Reconstruct(g, g.Goal())
	require.ErrorIs(t, err, ErrNoPath)
	assert.Contains(t, err.Error(), "does not terminate")
	assert.Equal(t, 0, g.FinalCount())
}

func TestReconstructOutOfBounds(t *testing.T) {
	g := mustGrid(t, "S..,...,..E")
	_, err := Reconstruct(g, pt(5, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestReconstructStartOnly(t *testing.T) {
	g := mustGrid(t, "S..,...,..E")
	g.MarkStart()

	path, err := Reconstruct(g, g.Start())
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{g.Start()}, path)
	assert.Equal(t, 1, g.FinalCount())
}
