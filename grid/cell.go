package grid

import "math"

// noParent marks a cell that has not been discovered yet
const noParent = -1

// undefinedDistance is held by blocked cells and by cells whose distance has not been computed
var undefinedDistance = math.Inf(1)

// Point is a row/column coordinate on the grid
type Point struct {
	Row, Col int
}

// Adjacent reports whether a and b share an edge (no diagonals)
func Adjacent(a, b Point) bool {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Cell is the per-position search state.
// Coordinates and the blocked flag never change after construction.
// parent doubles as the visited flag: noParent until discovery, own index for the start cell.
type Cell struct {
	row, col int
	blocked  bool

	parent   int
	distance float64
	hasDist  bool
	final    bool
}

func newCell(row, col int, blocked bool) Cell {
	return Cell{
		row:      row,
		col:      col,
		blocked:  blocked,
		parent:   noParent,
		distance: undefinedDistance,
	}
}

func (c *Cell) Row() int         { return c.row }
func (c *Cell) Col() int         { return c.col }
func (c *Cell) Point() Point     { return Point{Row: c.row, Col: c.col} }
func (c *Cell) Blocked() bool    { return c.blocked }
func (c *Cell) Discovered() bool { return c.parent != noParent }

// OnFinalPath reports whether path reconstruction has marked this cell
func (c *Cell) OnFinalPath() bool { return c.final }

// Distance returns the straight-line distance to the goal.
// ok is false for blocked cells, which never receive one.
func (c *Cell) Distance() (d float64, ok bool) {
	return c.distance, c.hasDist
}

// setDistance stores d on first call only; later calls leave the first value and return false
func (c *Cell) setDistance(d float64) bool {
	if c.hasDist {
		return false
	}
	c.distance = d
	c.hasDist = true
	return true
}

// reset clears per-run state, keeping blocked and distance
func (c *Cell) reset() {
	c.parent = noParent
	c.final = false
}
