// Package maze turns maze text into grid layouts and generates new mazes.
//
// Maze text is a sequence of equal-length rows joined by a separator:
//
//	.  open cell
//	#  blocked cell
//	S  start (open)
//	E  goal (open)
package maze

import (
	"strings"

	"github.com/lixenwraith/maze-solver/grid"
)

// Maze characters
const (
	CharOpen    = '.'
	CharBlocked = '#'
	CharStart   = 'S'
	CharGoal    = 'E'

	// DefaultSeparator joins rows in the reference maze strings
	DefaultSeparator = ','
)

// Layout is a parsed maze: shape, blocked mask and the two endpoints
type Layout struct {
	Rows, Cols  int
	Blocked     []bool // row-major
	Start, Goal grid.Point
}

// Parse splits text on sep and parses each piece as a row.
// Newlines are always accepted as row separators and a separator right before a newline
// counts once. Surrounding spaces and blank pieces at either end are ignored; a blank row
// between two rows is an invalid layout.
func Parse(text string, sep rune) (Layout, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var pieces []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), string(sep))
		for _, p := range strings.Split(line, string(sep)) {
			pieces = append(pieces, strings.TrimSpace(p))
		}
	}

	for len(pieces) > 0 && pieces[0] == "" {
		pieces = pieces[1:]
	}
	for len(pieces) > 0 && pieces[len(pieces)-1] == "" {
		pieces = pieces[:len(pieces)-1]
	}
	for r, p := range pieces {
		if p == "" {
			return Layout{}, grid.NewInvalidLayoutAt(grid.Point{Row: r},
				"row length 0, want %d", len(pieces[0]))
		}
	}
	return ParseLines(pieces)
}

// ParseLines parses one string per row
func ParseLines(rows []string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, grid.NewInvalidLayout("maze has no rows")
	}

	cols := len(rows[0])
	l := Layout{
		Rows:    len(rows),
		Cols:    cols,
		Blocked: make([]bool, 0, len(rows)*cols),
	}
	var haveStart, haveGoal bool

	for r, row := range rows {
		if len(row) != cols {
			return Layout{}, grid.NewInvalidLayoutAt(grid.Point{Row: r, Col: 0},
				"row length %d, want %d", len(row), cols)
		}
		for c := 0; c < len(row); c++ {
			p := grid.Point{Row: r, Col: c}
			switch row[c] {
			case CharOpen:
				l.Blocked = append(l.Blocked, false)
			case CharBlocked:
				l.Blocked = append(l.Blocked, true)
			case CharStart:
				if haveStart {
					return Layout{}, grid.NewInvalidLayoutAt(p, "duplicate start marker")
				}
				haveStart = true
				l.Start = p
				l.Blocked = append(l.Blocked, false)
			case CharGoal:
				if haveGoal {
					return Layout{}, grid.NewInvalidLayoutAt(p, "duplicate goal marker")
				}
				haveGoal = true
				l.Goal = p
				l.Blocked = append(l.Blocked, false)
			default:
				return Layout{}, grid.NewInvalidLayoutAt(p, "unknown character %q", row[c])
			}
		}
	}

	if !haveStart {
		return Layout{}, grid.NewInvalidLayout("missing start marker %q", CharStart)
	}
	if !haveGoal {
		return Layout{}, grid.NewInvalidLayout("missing goal marker %q", CharGoal)
	}
	return l, nil
}

// Grid builds a fresh search grid from the layout
func (l Layout) Grid() (*grid.Grid, error) {
	return grid.New(l.Rows, l.Cols, l.Blocked, l.Start, l.Goal)
}

// Lines encodes the layout back into maze rows
func (l Layout) Lines() []string {
	out := make([]string, l.Rows)
	var b strings.Builder
	for r := 0; r < l.Rows; r++ {
		b.Reset()
		for c := 0; c < l.Cols; c++ {
			p := grid.Point{Row: r, Col: c}
			switch {
			case p == l.Start:
				b.WriteByte(CharStart)
			case p == l.Goal:
				b.WriteByte(CharGoal)
			case l.Blocked[r*l.Cols+c]:
				b.WriteByte(CharBlocked)
			default:
				b.WriteByte(CharOpen)
			}
		}
		out[r] = b.String()
	}
	return out
}

// String renders one row per line
func (l Layout) String() string {
	return strings.Join(l.Lines(), "\n") + "\n"
}

// Join renders rows joined by sep, the form the reference mazes are written in
func (l Layout) Join(sep rune) string {
	return strings.Join(l.Lines(), string(sep))
}

func (l Layout) blockedAt(p grid.Point) bool {
	if p.Row < 0 || p.Row >= l.Rows || p.Col < 0 || p.Col >= l.Cols {
		return true
	}
	return l.Blocked[p.Row*l.Cols+p.Col]
}
