package search

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/maze-solver/grid"
)

var ErrNoPath = errors.New("no path to reconstruct")

// NoPathError reports a reconstruction from a cell that has no chain back to the start
type NoPathError struct {
	Point  grid.Point
	Reason string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("%v from (%d,%d): %s", ErrNoPath, e.Point.Row, e.Point.Col, e.Reason)
}

func (e *NoPathError) Is(target error) bool { return target == ErrNoPath }

// Reconstruct walks parent links from target back to the self-linked start, marking every cell on the way.
// The returned path runs start to target.
func Reconstruct(g *grid.Grid, target grid.Point) ([]grid.Point, error) {
	c, err := g.At(target)
	if err != nil {
		return nil, err
	}
	if !c.Discovered() {
		return nil, &NoPathError{Point: target, Reason: "cell was never discovered"}
	}

	// Walk first, mark after: a broken chain leaves the grid untouched
	path := []grid.Point{target}
	cur := target
	for !g.IsRoot(cur) {
		if len(path) > g.Size() {
			return nil, &NoPathError{Point: target, Reason: "parent chain does not terminate"}
		}
		prev, ok := g.Parent(cur)
		if !ok {
			return nil, &NoPathError{Point: target, Reason: fmt.Sprintf("chain broken at (%d,%d)", cur.Row, cur.Col)}
		}
		path = append(path, prev)
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for _, p := range path {
		if err := g.MarkFinal(p); err != nil {
			return nil, err
		}
	}
	return path, nil
}
