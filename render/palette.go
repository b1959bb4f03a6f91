package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/maze-solver/search"
)

// Category colours, shared with the live viewer
var (
	ColorBlocked = lipgloss.Color("#565F89") // Slate wall
	ColorStart   = lipgloss.Color("#9ECE6A") // Green
	ColorGoal    = lipgloss.Color("#F7768E") // Red
	ColorCurrent = lipgloss.Color("#FF9E64") // Orange
	ColorFinal   = lipgloss.Color("#E0AF68") // Gold
	ColorVisited = lipgloss.Color("#7AA2F7") // Blue
	ColorOpen    = lipgloss.Color("#3B4261") // Dim gray

	ColorSuccess = lipgloss.Color("#9ECE6A")
	ColorFailure = lipgloss.Color("#F7768E")
)

// Palette holds one lipgloss style per category
type Palette struct {
	styles  [search.CategoryOpen + 1]lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// NewPalette builds the default palette against the given renderer; nil uses the lipgloss default renderer
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		success: r.NewStyle().Bold(true).Foreground(ColorSuccess),
		failure: r.NewStyle().Bold(true).Foreground(ColorFailure),
	}
	p.styles[search.CategoryBlocked] = r.NewStyle().Foreground(ColorBlocked)
	p.styles[search.CategoryStart] = r.NewStyle().Bold(true).Foreground(ColorStart)
	p.styles[search.CategoryGoal] = r.NewStyle().Bold(true).Foreground(ColorGoal)
	p.styles[search.CategoryCurrent] = r.NewStyle().Bold(true).Foreground(ColorCurrent)
	p.styles[search.CategoryOnFinalPath] = r.NewStyle().Bold(true).Foreground(ColorFinal)
	p.styles[search.CategoryVisited] = r.NewStyle().Foreground(ColorVisited)
	p.styles[search.CategoryOpen] = r.NewStyle().Foreground(ColorOpen)
	return p
}

// Cell renders one glyph in its category colour
func (p *Palette) Cell(c search.Category) string {
	g := string(Glyph(c))
	if int(c) >= len(p.styles) {
		return g
	}
	return p.styles[c].Render(g)
}

// Summary colours the summary line by outcome
func (p *Palette) Summary(res search.Result, line string) string {
	if res.Status == search.StatusGoalFound {
		return p.success.Render(line)
	}
	return p.failure.Render(line)
}
