package grid

import "math"

// Neighbor offsets in expansion order: up, left, down, right.
// The order decides which of several equidistant cells is discovered first.
var neighborOffsets = [4]Point{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
}

// Grid owns the cells of one maze in row-major order.
// Parent links are indices into cells so the whole grid is a single allocation.
type Grid struct {
	rows, cols  int
	start, goal Point
	cells       []Cell
}

// New builds a grid from a blocked mask (row-major, rows*cols long) and computes goal distances
func New(rows, cols int, blocked []bool, start, goal Point) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, NewInvalidLayout("dimensions %dx%d must be positive", rows, cols)
	}
	if len(blocked) != rows*cols {
		return nil, NewInvalidLayout("blocked mask has %d entries, want %d", len(blocked), rows*cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		start: start,
		goal:  goal,
		cells: make([]Cell, rows*cols),
	}

	if !g.InBounds(start) {
		return nil, NewInvalidLayoutAt(start, "start outside grid")
	}
	if !g.InBounds(goal) {
		return nil, NewInvalidLayoutAt(goal, "goal outside grid")
	}
	if start == goal {
		return nil, NewInvalidLayoutAt(start, "start and goal coincide")
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			g.cells[i] = newCell(r, c, blocked[i])
		}
	}

	if g.cells[g.index(start)].blocked {
		return nil, NewInvalidLayoutAt(start, "start on blocked cell")
	}
	if g.cells[g.index(goal)].blocked {
		return nil, NewInvalidLayoutAt(goal, "goal on blocked cell")
	}

	g.ComputeGoalDistances()
	return g, nil
}

// ComputeGoalDistances sets the Euclidean distance to the goal on every open cell.
// Distances are write-once, so calling it again changes nothing.
func (g *Grid) ComputeGoalDistances() {
	for i := range g.cells {
		c := &g.cells[i]
		if c.blocked {
			continue
		}
		dc := float64(g.goal.Col - c.col)
		dr := float64(g.goal.Row - c.row)
		c.setDistance(math.Sqrt(dc*dc + dr*dr))
	}
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Cols() int    { return g.cols }
func (g *Grid) Start() Point { return g.start }
func (g *Grid) Goal() Point  { return g.goal }
func (g *Grid) Size() int    { return len(g.cells) }

// InBounds reports whether p addresses a cell of this grid
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

func (g *Grid) point(i int) Point {
	return Point{Row: i / g.cols, Col: i % g.cols}
}

func (g *Grid) outOfBounds(p Point) error {
	return &OutOfBoundsError{Point: p, Rows: g.rows, Cols: g.cols}
}

// At returns the cell at p
func (g *Grid) At(p Point) (*Cell, error) {
	if !g.InBounds(p) {
		return nil, g.outOfBounds(p)
	}
	return &g.cells[g.index(p)], nil
}

// Neighbors returns the in-bounds orthogonal neighbors of p in up, left, down, right order.
// Blocked cells are included; filtering is the caller's decision.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// MarkStart self-links the start cell, the root of the discovery tree
func (g *Grid) MarkStart() {
	i := g.index(g.start)
	g.cells[i].parent = i
}

// Discover links p to the cell it was reached from.
// Returns false without change when p is blocked or already discovered; a cell is never re-linked.
func (g *Grid) Discover(p, from Point) (bool, error) {
	if !g.InBounds(p) {
		return false, g.outOfBounds(p)
	}
	if !g.InBounds(from) {
		return false, g.outOfBounds(from)
	}
	c := &g.cells[g.index(p)]
	if c.blocked || c.parent != noParent {
		return false, nil
	}
	c.parent = g.index(from)
	return true, nil
}

// Parent returns the cell that discovered p.
// ok is false for undiscovered cells and for the self-linked start.
func (g *Grid) Parent(p Point) (Point, bool) {
	if !g.InBounds(p) {
		return Point{}, false
	}
	i := g.index(p)
	parent := g.cells[i].parent
	if parent == noParent || parent == i {
		return Point{}, false
	}
	return g.point(parent), true
}

// IsRoot reports whether p is the self-linked start of the discovery tree
func (g *Grid) IsRoot(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	i := g.index(p)
	return g.cells[i].parent == i
}

// MarkFinal flags p as part of the reconstructed path
func (g *Grid) MarkFinal(p Point) error {
	if !g.InBounds(p) {
		return g.outOfBounds(p)
	}
	c := &g.cells[g.index(p)]
	if c.blocked {
		return NewInvalidLayoutAt(p, "blocked cell cannot be on a path")
	}
	c.final = true
	return nil
}

// Reset clears discovery and path state so the grid can be searched again
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// DiscoveredCount returns how many cells carry a parent link, start included
func (g *Grid) DiscoveredCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].parent != noParent {
			n++
		}
	}
	return n
}

// FinalCount returns how many cells are marked on the final path
func (g *Grid) FinalCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].final {
			n++
		}
	}
	return n
}

// Each visits cells in row-major order
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}
