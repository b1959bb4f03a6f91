// Package render turns search snapshots into text, plain or coloured.
package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/maze-solver/search"
)

// Glyphs per category; blocked, open, start and goal match the maze input characters
var glyphs = [...]byte{
	search.CategoryBlocked:     '#',
	search.CategoryStart:       'S',
	search.CategoryGoal:        'E',
	search.CategoryCurrent:     'x',
	search.CategoryOnFinalPath: '*',
	search.CategoryVisited:     '+',
	search.CategoryOpen:        '.',
}

// Glyph returns the display character for a category
func Glyph(c search.Category) byte {
	if int(c) < len(glyphs) {
		return glyphs[c]
	}
	return '?'
}

// Text renders a snapshot one row per line, each row newline terminated
func Text(s search.Snapshot) string {
	var b strings.Builder
	b.Grow((s.Cols + 1) * s.Rows)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			b.WriteByte(Glyph(s.At(r, c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary is the line written after a run
func Summary(res search.Result) string {
	line := fmt.Sprintf("moves: %d status: %s", res.Moves, res.Status)
	if res.Status == search.StatusGoalFound {
		line += fmt.Sprintf(" path: %d", len(res.Path))
	}
	if res.Interrupted {
		line += " (interrupted)"
	}
	return line
}

// Legend describes every glyph
func Legend() string {
	entries := []struct {
		cat  search.Category
		text string
	}{
		{search.CategoryStart, "start"},
		{search.CategoryGoal, "end"},
		{search.CategoryOpen, "open cell"},
		{search.CategoryBlocked, "closed cell"},
		{search.CategoryCurrent, "current cell"},
		{search.CategoryVisited, "visited cell"},
		{search.CategoryOnFinalPath, "final path"},
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteByte(Glyph(e.cat))
		b.WriteString(" - ")
		b.WriteString(e.text)
		b.WriteByte('\n')
	}
	return b.String()
}
