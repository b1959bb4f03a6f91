package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMask(rows, cols int) []bool {
	return make([]bool, rows*cols)
}

// TestNewComputesDistances verifies every open cell gets its Euclidean goal distance
func TestNewComputesDistances(t *testing.T) {
	mask := openMask(3, 4)
	mask[1*4+2] = true

	g, err := New(3, 4, mask, Point{0, 0}, Point{2, 3})
	require.NoError(t, err)

	goal, err := g.At(Point{2, 3})
	require.NoError(t, err)
	d, ok := goal.Distance()
	require.True(t, ok)
	assert.Equal(t, 0.0, d, "goal distance must be exactly zero")

	start, _ := g.At(Point{0, 0})
	d, ok = start.Distance()
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(9+4), d, 1e-12)

	wall, _ := g.At(Point{1, 2})
	_, ok = wall.Distance()
	assert.False(t, ok, "blocked cells keep the undefined distance")
}

// TestDistanceWriteOnce verifies a second write never replaces the first value
func TestDistanceWriteOnce(t *testing.T) {
	c := newCell(0, 0, false)
	assert.True(t, c.setDistance(1.5))
	assert.False(t, c.setDistance(7))
	d, _ := c.Distance()
	assert.Equal(t, 1.5, d)

	g, err := New(2, 2, openMask(2, 2), Point{0, 0}, Point{1, 1})
	require.NoError(t, err)
	before, _ := g.At(Point{0, 0})
	want, _ := before.Distance()

	g.goal = Point{0, 1}
	g.ComputeGoalDistances()
	after, _ := g.At(Point{0, 0})
	got, _ := after.Distance()
	assert.Equal(t, want, got, "recomputation with different goal data must be a no-op")
}

func TestNewRejectsInvalidLayouts(t *testing.T) {
	walled := openMask(3, 3)
	walled[4] = true

	tests := []struct {
		name        string
		rows, cols  int
		mask        []bool
		start, goal Point
	}{
		{"start equals goal", 3, 3, openMask(3, 3), Point{1, 1}, Point{1, 1}},
		{"start out of bounds", 3, 3, openMask(3, 3), Point{-1, 0}, Point{2, 2}},
		{"goal out of bounds", 3, 3, openMask(3, 3), Point{0, 0}, Point{3, 0}},
		{"start blocked", 3, 3, walled, Point{1, 1}, Point{0, 0}},
		{"goal blocked", 3, 3, walled, Point{0, 0}, Point{1, 1}},
		{"mask length", 3, 3, openMask(2, 2), Point{0, 0}, Point{1, 1}},
		{"zero rows", 0, 3, nil, Point{0, 0}, Point{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.cols, tt.mask, tt.start, tt.goal)
			assert.Nil(t, g)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLayout))

			var layoutErr *InvalidLayoutError
			assert.True(t, errors.As(err, &layoutErr))
		})
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g, err := New(2, 3, openMask(2, 3), Point{0, 0}, Point{1, 2})
	require.NoError(t, err)

	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		c, err := g.At(p)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		var oob *OutOfBoundsError
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, p, oob.Point)
	}

	c, err := g.At(Point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Row())
	assert.Equal(t, 2, c.Col())
}

// TestNeighborsOrder verifies the fixed up, left, down, right order and bounds filtering
func TestNeighborsOrder(t *testing.T) {
	g, err := New(3, 3, openMask(3, 3), Point{0, 0}, Point{2, 2})
	require.NoError(t, err)

	assert.Equal(t, []Point{{0, 1}, {1, 0}, {2, 1}, {1, 2}}, g.Neighbors(Point{1, 1}))
	assert.Equal(t, []Point{{1, 0}, {0, 1}}, g.Neighbors(Point{0, 0}))
	assert.Equal(t, []Point{{1, 2}, {2, 1}}, g.Neighbors(Point{2, 2}))
}

func TestDiscoverLinksOnce(t *testing.T) {
	mask := openMask(2, 2)
	mask[1] = true
	g, err := New(2, 2, mask, Point{0, 0}, Point{1, 1})
	require.NoError(t, err)

	g.MarkStart()
	assert.True(t, g.IsRoot(Point{0, 0}))
	_, ok := g.Parent(Point{0, 0})
	assert.False(t, ok, "start sentinel has no real predecessor")

	linked, err := g.Discover(Point{1, 0}, Point{0, 0})
	require.NoError(t, err)
	assert.True(t, linked)

	linked, err = g.Discover(Point{1, 0}, Point{1, 1})
	require.NoError(t, err)
	assert.False(t, linked, "already discovered cells are never re-linked")
	parent, ok := g.Parent(Point{1, 0})
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, parent)

	linked, err = g.Discover(Point{0, 1}, Point{0, 0})
	require.NoError(t, err)
	assert.False(t, linked, "blocked cells are never discovered")

	_, err = g.Discover(Point{5, 5}, Point{0, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.Equal(t, 2, g.DiscoveredCount())
}

func TestMarkFinalAndReset(t *testing.T) {
	mask := openMask(2, 2)
	mask[1] = true
	g, err := New(2, 2, mask, Point{0, 0}, Point{1, 1})
	require.NoError(t, err)

	g.MarkStart()
	_, _ = g.Discover(Point{1, 0}, Point{0, 0})
	require.NoError(t, g.MarkFinal(Point{1, 0}))
	assert.ErrorIs(t, g.MarkFinal(Point{0, 1}), ErrInvalidLayout)
	assert.ErrorIs(t, g.MarkFinal(Point{2, 0}), ErrOutOfBounds)
	assert.Equal(t, 1, g.FinalCount())

	g.Reset()
	assert.Equal(t, 0, g.DiscoveredCount())
	assert.Equal(t, 0, g.FinalCount())

	wall, _ := g.At(Point{0, 1})
	assert.True(t, wall.Blocked(), "reset keeps blocked flags")
	start, _ := g.At(Point{0, 0})
	_, ok := start.Distance()
	assert.True(t, ok, "reset keeps distances")
}

func TestAdjacent(t *testing.T) {
	assert.True(t, Adjacent(Point{1, 1}, Point{0, 1}))
	assert.True(t, Adjacent(Point{1, 1}, Point{1, 2}))
	assert.False(t, Adjacent(Point{1, 1}, Point{2, 2}))
	assert.False(t, Adjacent(Point{1, 1}, Point{1, 1}))
	assert.False(t, Adjacent(Point{0, 0}, Point{0, 2}))
}
