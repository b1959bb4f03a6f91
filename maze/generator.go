package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/maze-solver/grid"
)

// Config controls maze generation
type Config struct {
	Rows, Cols int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends).
	// Higher values add cycles; plazas and pillars are never created.
	Braiding float64

	Start *grid.Point // Optional (nil = top-left room)
	Goal  *grid.Point // Optional (nil = bottom-right room)
	Seed  int64       // Optional (0 = time based)
}

var (
	carveDirs = []grid.Point{{Row: -2, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: -2}, {Row: 0, Col: 2}}
	orthoDirs = []grid.Point{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}
)

// Generate carves a maze with a recursive backtracker and optionally braids it.
// Even dimensions are rounded down to the nearest odd number so rooms sit on odd coordinates.
func Generate(cfg Config) (Layout, error) {
	rows := ensureOdd(cfg.Rows)
	cols := ensureOdd(cfg.Cols)

	l := Layout{
		Rows:    rows,
		Cols:    cols,
		Blocked: make([]bool, rows*cols),
	}
	for i := range l.Blocked {
		l.Blocked[i] = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	l.Start = resolvePoint(rows, cols, cfg.Start, grid.Point{Row: 1, Col: 1})
	l.Goal = resolvePoint(rows, cols, cfg.Goal, grid.Point{Row: rows - 2, Col: cols - 2})
	if l.Start == l.Goal {
		return Layout{}, grid.NewInvalidLayoutAt(l.Start, "generated start and goal coincide in %dx%d maze", rows, cols)
	}

	carve(&l, l.Start, rng)

	if cfg.Braiding > 0 {
		braid(&l, cfg.Braiding, rng)
	}

	l.forceOpen(l.Start)
	l.forceOpen(l.Goal)

	return l, nil
}

func (l *Layout) set(p grid.Point, blocked bool) {
	l.Blocked[p.Row*l.Cols+p.Col] = blocked
}

func (l *Layout) inside(p grid.Point) bool {
	return p.Row >= 0 && p.Row < l.Rows && p.Col >= 0 && p.Col < l.Cols
}

// carve runs the recursive backtracker from the room nearest to start, producing a spanning tree of rooms
func carve(l *Layout, start grid.Point, rng *rand.Rand) {
	origin := grid.Point{Row: start.Row | 1, Col: start.Col | 1}
	if origin.Row >= l.Rows-1 || origin.Col >= l.Cols-1 {
		origin = grid.Point{Row: 1, Col: 1}
	}

	stack := []grid.Point{origin}
	l.set(origin, false)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates := make([]grid.Point, 0, 4)

		for _, d := range carveDirs {
			n := grid.Point{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			// Leave the outer ring as wall
			if n.Row > 0 && n.Row < l.Rows-1 && n.Col > 0 && n.Col < l.Cols-1 && l.blockedAt(n) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		l.set(grid.Point{Row: cur.Row + d.Row/2, Col: cur.Col + d.Col/2}, false)
		next := grid.Point{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
		l.set(next, false)
		stack = append(stack, next)
	}
}

// braid opens a wall next to dead-end rooms with the given probability, adding cycles
func braid(l *Layout, probability float64, rng *rand.Rand) {
	for r := 1; r < l.Rows-1; r += 2 {
		for c := 1; c < l.Cols-1; c += 2 {
			room := grid.Point{Row: r, Col: c}
			if l.blockedAt(room) {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				if !l.blockedAt(grid.Point{Row: r + d.Row, Col: c + d.Col}) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]grid.Point, 0, 4)
			for _, d := range carveDirs {
				n := grid.Point{Row: r + d.Row, Col: c + d.Col}
				w := grid.Point{Row: r + d.Row/2, Col: c + d.Col/2}
				if l.inside(n) && !l.blockedAt(n) && l.blockedAt(w) && l.canOpen(w) {
					candidates = append(candidates, w)
				}
			}
			if len(candidates) > 0 {
				l.set(candidates[rng.Intn(len(candidates))], false)
			}
		}
	}
}

// canOpen reports whether opening w keeps the maze free of 2x2 open plazas and isolated wall pillars
func (l *Layout) canOpen(w grid.Point) bool {
	open := func(r, c int) bool {
		p := grid.Point{Row: r, Col: c}
		return l.inside(p) && !l.blockedAt(p)
	}
	r, c := w.Row, w.Col

	// Any 2x2 quadrant around w that would become fully open
	if open(r-1, c-1) && open(r-1, c) && open(r, c-1) {
		return false
	}
	if open(r-1, c) && open(r-1, c+1) && open(r, c+1) {
		return false
	}
	if open(r, c-1) && open(r+1, c-1) && open(r+1, c) {
		return false
	}
	if open(r, c+1) && open(r+1, c) && open(r+1, c+1) {
		return false
	}

	// A neighboring wall left with no other wall attached becomes a pillar
	for _, d := range orthoDirs {
		n := grid.Point{Row: r + d.Row, Col: c + d.Col}
		if !l.inside(n) || !l.blockedAt(n) {
			continue
		}
		links := 0
		for _, d2 := range orthoDirs {
			nn := grid.Point{Row: n.Row + d2.Row, Col: n.Col + d2.Col}
			if nn == w {
				continue
			}
			if l.inside(nn) && l.blockedAt(nn) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

// forceOpen clears p and, if it is then walled in, opens one interior neighbor
func (l *Layout) forceOpen(p grid.Point) {
	l.set(p, false)

	for _, d := range orthoDirs {
		n := grid.Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if l.inside(n) && !l.blockedAt(n) {
			return
		}
	}
	for _, d := range orthoDirs {
		n := grid.Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if n.Row > 0 && n.Row < l.Rows-1 && n.Col > 0 && n.Col < l.Cols-1 {
			l.set(n, false)
			return
		}
	}
}

// ShortestPath returns a shortest four-directional path from start to goal by breadth-first search,
// or nil when the goal is unreachable. It is the optimal baseline the greedy search is measured against.
func ShortestPath(l Layout) []grid.Point {
	if l.blockedAt(l.Start) || l.blockedAt(l.Goal) {
		return nil
	}

	prev := make([]int, l.Rows*l.Cols)
	for i := range prev {
		prev[i] = -1
	}
	idx := func(p grid.Point) int { return p.Row*l.Cols + p.Col }

	queue := []grid.Point{l.Start}
	prev[idx(l.Start)] = idx(l.Start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == l.Goal {
			var path []grid.Point
			for i := idx(cur); ; i = prev[i] {
				path = append(path, grid.Point{Row: i / l.Cols, Col: i % l.Cols})
				if i == idx(l.Start) {
					break
				}
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range orthoDirs {
			n := grid.Point{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !l.blockedAt(n) && prev[idx(n)] == -1 {
				prev[idx(n)] = idx(cur)
				queue = append(queue, n)
			}
		}
	}
	return nil
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func resolvePoint(rows, cols int, p *grid.Point, def grid.Point) grid.Point {
	if p == nil {
		return def
	}
	out := *p
	out.Row = min(max(out.Row, 0), rows-1)
	out.Col = min(max(out.Col, 0), cols-1)
	return out
}
