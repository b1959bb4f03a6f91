package search

import "github.com/lixenwraith/maze-solver/grid"

// Category is the display class of one cell in a snapshot
type Category uint8

// Categories in priority order: an earlier one wins when several apply
const (
	CategoryBlocked Category = iota
	CategoryStart
	CategoryGoal
	CategoryCurrent
	CategoryOnFinalPath
	CategoryVisited
	CategoryOpen
)

var categoryNames = [...]string{
	CategoryBlocked:     "blocked",
	CategoryStart:       "start",
	CategoryGoal:        "goal",
	CategoryCurrent:     "current",
	CategoryOnFinalPath: "final",
	CategoryVisited:     "visited",
	CategoryOpen:        "open",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Snapshot is a row-major categorisation of the grid at one point of a run.
// Each emission owns its Cells slice.
type Snapshot struct {
	Rows, Cols int
	Cells      []Category

	Current    grid.Point
	HasCurrent bool

	// Step is the move count when the snapshot was taken
	Step int
	// Final is set on the snapshot emitted after termination
	Final bool
}

// At returns the category at row, col
func (s Snapshot) At(row, col int) Category {
	return s.Cells[row*s.Cols+col]
}

// Count returns how many cells fall in category c
func (s Snapshot) Count(c Category) int {
	n := 0
	for _, v := range s.Cells {
		if v == c {
			n++
		}
	}
	return n
}

// Initial is the layout before the first expansion: step 0, nothing current.
// The engine never emits it; callers that show the maze up front send it themselves.
func Initial(g *grid.Grid) Snapshot {
	return Categorize(g, grid.Point{}, false)
}

// Categorize derives a snapshot from the grid state
func Categorize(g *grid.Grid, current grid.Point, hasCurrent bool) Snapshot {
	snap := Snapshot{
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Cells:      make([]Category, 0, g.Size()),
		Current:    current,
		HasCurrent: hasCurrent,
	}
	start, goal := g.Start(), g.Goal()

	g.Each(func(c *grid.Cell) {
		p := c.Point()
		var cat Category
		switch {
		case c.Blocked():
			cat = CategoryBlocked
		case p == start:
			cat = CategoryStart
		case p == goal:
			cat = CategoryGoal
		case hasCurrent && p == current:
			cat = CategoryCurrent
		case c.OnFinalPath():
			cat = CategoryOnFinalPath
		case c.Discovered():
			cat = CategoryVisited
		default:
			cat = CategoryOpen
		}
		snap.Cells = append(snap.Cells, cat)
	})

	return snap
}
