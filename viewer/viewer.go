// Package viewer draws a running search on a terminal screen.
//
// The viewer is a search.Sink: every emitted snapshot is drawn, then the
// viewer waits for the step delay or for input. Space toggles pause, n
// advances one step while paused, q / Esc / Ctrl-C cancel the run.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-solver/render"
	"github.com/lixenwraith/maze-solver/search"
)

const statusGap = 1 // blank rows between grid and status line

// Options configures a Viewer
type Options struct {
	// Delay between steps while running
	Delay time.Duration
	// StartPaused waits for input before the first step is released
	StartPaused bool
	// HoldOnFinish waits for a key after the summary is drawn
	HoldOnFinish bool
}

// Option modifies Options
type Option func(*Options)

// WithDelay sets the pause between steps; 0 runs as fast as the terminal draws
func WithDelay(d time.Duration) Option {
	return func(o *Options) { o.Delay = d }
}

func WithStartPaused(p bool) Option {
	return func(o *Options) { o.StartPaused = p }
}

func WithHoldOnFinish(h bool) Option {
	return func(o *Options) { o.HoldOnFinish = h }
}

// Viewer renders snapshots to a tcell screen
type Viewer struct {
	screen tcell.Screen
	cancel context.CancelFunc
	opts   Options
	styles [search.CategoryOpen + 1]tcell.Style
	text   tcell.Style

	events chan tcell.Event
	paused bool
	quit   bool
	last   search.Snapshot
}

// Open creates and initialises the terminal screen
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// New wraps an initialised screen. cancel is invoked when the user quits.
func New(screen tcell.Screen, cancel context.CancelFunc, options ...Option) *Viewer {
	opts := Options{Delay: 50 * time.Millisecond}
	for _, o := range options {
		o(&opts)
	}

	v := &Viewer{
		screen: screen,
		cancel: cancel,
		opts:   opts,
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		events: make(chan tcell.Event, 100),
		paused: opts.StartPaused,
	}
	v.styles[search.CategoryBlocked] = styleFor(render.ColorBlocked, false)
	v.styles[search.CategoryStart] = styleFor(render.ColorStart, true)
	v.styles[search.CategoryGoal] = styleFor(render.ColorGoal, true)
	v.styles[search.CategoryCurrent] = styleFor(render.ColorCurrent, true).Reverse(true)
	v.styles[search.CategoryOnFinalPath] = styleFor(render.ColorFinal, true)
	v.styles[search.CategoryVisited] = styleFor(render.ColorVisited, false)
	v.styles[search.CategoryOpen] = styleFor(render.ColorOpen, false)

	screen.HideCursor()
	screen.Clear()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(v.events)
				return
			}
			v.events <- ev
		}
	}()

	return v
}

// styleFor maps a palette colour to a tcell style
func styleFor(c lipgloss.Color, bold bool) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.GetColor(string(c))).Bold(bold)
}

// Close releases the terminal
func (v *Viewer) Close() {
	v.screen.Fini()
}

// Emit draws the snapshot and paces the run
func (v *Viewer) Emit(snap search.Snapshot) error {
	v.last = snap
	v.draw(snap, v.statusLine(snap))
	if snap.Final || v.quit {
		return nil
	}
	v.wait()
	return nil
}

// Finish draws the summary line and optionally waits for a key
func (v *Viewer) Finish(res search.Result) error {
	v.draw(v.last, render.Summary(res)+"   [any key] exit")
	if v.opts.HoldOnFinish && !v.quit {
		for ev := range v.events {
			if _, ok := ev.(*tcell.EventKey); ok {
				break
			}
		}
	}
	return nil
}

func (v *Viewer) statusLine(snap search.Snapshot) string {
	state := "running"
	if v.paused {
		state = "paused"
	}
	return fmt.Sprintf("step %d  %s   [space] pause  [n] step  [q] quit", snap.Step, state)
}

// wait returns when the next step may proceed: delay elapsed, step key, or quit
func (v *Viewer) wait() {
	var timer <-chan time.Time
	for {
		if !v.paused {
			if v.opts.Delay <= 0 {
				v.drain()
				return
			}
			if timer == nil {
				timer = time.After(v.opts.Delay)
			}
		} else {
			timer = nil
		}

		select {
		case <-timer:
			return
		case ev, ok := <-v.events:
			if !ok {
				v.stop()
				return
			}
			if v.handle(ev) {
				return
			}
		}
	}
}

// drain processes queued input without blocking
func (v *Viewer) drain() {
	for {
		select {
		case ev, ok := <-v.events:
			if !ok {
				v.stop()
				return
			}
			v.handle(ev)
		default:
			return
		}
	}
}

// handle applies one event; true releases the pending step
func (v *Viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			v.stop()
			return true
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				v.stop()
				return true
			case ' ':
				v.paused = !v.paused
				v.draw(v.last, v.statusLine(v.last))
				return !v.paused && v.opts.Delay <= 0
			case 'n', 'N':
				return v.paused
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw(v.last, v.statusLine(v.last))
	}
	return false
}

func (v *Viewer) stop() {
	if v.quit {
		return
	}
	v.quit = true
	v.paused = false
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *Viewer) draw(snap search.Snapshot, status string) {
	v.screen.Clear()
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			cat := snap.At(r, c)
			style := tcell.StyleDefault
			if int(cat) < len(v.styles) {
				style = v.styles[cat]
			}
			v.screen.SetContent(c, r, rune(render.Glyph(cat)), nil, style)
		}
	}
	y := snap.Rows + statusGap
	for i, ch := range status {
		v.screen.SetContent(i, y, ch, nil, v.text)
	}
	v.screen.Show()
}
