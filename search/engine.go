// Package search runs a greedy best-first traversal over a grid.
//
// The frontier is ordered by straight-line distance to the goal only; no
// cost-so-far term is added, so the path found is the one greedy expansion
// reaches first, not necessarily the shortest.
package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/maze-solver/grid"
)

// Status is the engine lifecycle state
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusGoalFound
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusGoalFound:
		return "goal_found"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether the run has ended
func (s Status) Terminal() bool {
	return s == StatusGoalFound || s == StatusExhausted
}

// Result summarises a finished run
type Result struct {
	Status Status
	// Moves counts frontier pops, the goal pop included
	Moves int
	// Path runs start to goal; nil unless Status is StatusGoalFound
	Path []grid.Point
	// Discovered counts cells reached, start included
	Discovered int
	// Interrupted is set when cancellation or the move bound ended the run early
	Interrupted bool
}

// Options defines engine parameters
type Options struct {
	Frontier FrontierKind
	// MaxMoves bounds frontier pops; 0 is unbounded
	MaxMoves int
	Logger   *slog.Logger
}

// Option modifies Options
type Option func(*Options)

// WithFrontier selects the frontier implementation
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) { o.Frontier = kind }
}

// WithMaxMoves bounds the number of frontier pops before the run is declared exhausted
func WithMaxMoves(n int) Option {
	return func(o *Options) { o.MaxMoves = n }
}

// WithLogger routes engine logging to l
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Engine owns one run over a grid. It is single-threaded; the grid must not be shared while a run is active.
type Engine struct {
	grid *grid.Grid
	sink Sink
	opts Options
	log  *slog.Logger

	frontier frontier
	seq      int
	status   Status
	moves    int
	path     []grid.Point

	interrupted bool
}

// New prepares an engine. Nothing touches the grid until the first Step.
func New(g *grid.Grid, sink Sink, options ...Option) *Engine {
	opts := Options{Frontier: FrontierSort}
	for _, o := range options {
		o(&opts)
	}
	if sink == nil {
		sink = Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine{
		grid:     g,
		sink:     sink,
		opts:     opts,
		log:      logger,
		frontier: newFrontier(opts.Frontier, g.Size()/4+1),
		status:   StatusNotStarted,
	}
}

func (e *Engine) Status() Status { return e.status }
func (e *Engine) Moves() int     { return e.moves }

// Frontier lists queued cells in pop order
func (e *Engine) Frontier() []grid.Point { return e.frontier.points() }

// Result reports the run so far
func (e *Engine) Result() Result {
	return Result{
		Status:      e.status,
		Moves:       e.moves,
		Path:        e.path,
		Discovered:  e.grid.DiscoveredCount(),
		Interrupted: e.interrupted,
	}
}

func (e *Engine) begin() {
	start := e.grid.Start()
	e.grid.MarkStart()
	e.enqueue(start)
	e.frontier.settle()
	e.status = StatusRunning
	e.log.Debug("search started",
		"rows", e.grid.Rows(), "cols", e.grid.Cols(),
		"start", start, "goal", e.grid.Goal(),
		"frontier", e.opts.Frontier.String())
}

func (e *Engine) enqueue(p grid.Point) {
	c, _ := e.grid.At(p)
	d, _ := c.Distance()
	e.frontier.push(frontierItem{point: p, distance: d, seq: e.seq})
	e.seq++
}

// Step performs one loop iteration: pop, goal test, expand, re-sort, emit.
// It returns true once the engine is in a terminal state; further calls are no-ops.
func (e *Engine) Step() (bool, error) {
	switch e.status {
	case StatusGoalFound, StatusExhausted:
		return true, nil
	case StatusNotStarted:
		e.begin()
	}

	if e.opts.MaxMoves > 0 && e.moves >= e.opts.MaxMoves {
		e.log.Info("move bound reached", "max_moves", e.opts.MaxMoves)
		e.interrupted = true
		return true, e.finish(StatusExhausted)
	}

	item, ok := e.frontier.pop()
	if !ok {
		return true, e.finish(StatusExhausted)
	}
	e.moves++
	current := item.point

	if current == e.grid.Goal() {
		path, err := Reconstruct(e.grid, current)
		if err != nil {
			return true, fmt.Errorf("reconstruct path: %w", err)
		}
		e.path = path
		return true, e.finish(StatusGoalFound)
	}

	added := 0
	for _, n := range e.grid.Neighbors(current) {
		linked, err := e.grid.Discover(n, current)
		if err != nil {
			return true, fmt.Errorf("expand (%d,%d): %w", current.Row, current.Col, err)
		}
		if linked {
			e.enqueue(n)
			added++
		}
	}
	e.frontier.settle()

	e.log.Debug("expanded",
		"move", e.moves, "row", current.Row, "col", current.Col,
		"distance", item.distance, "added", added, "frontier", e.frontier.len())

	snap := Categorize(e.grid, current, true)
	snap.Step = e.moves
	if err := e.sink.Emit(snap); err != nil {
		return false, fmt.Errorf("emit step %d: %w", e.moves, err)
	}
	return false, nil
}

// Run steps until the goal is found or the frontier is exhausted.
// Cancellation is checked before each iteration and ends the run exhausted, without reconstruction;
// the result is returned alongside ctx.Err().
func (e *Engine) Run(ctx context.Context) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			if !e.status.Terminal() {
				e.interrupted = true
				if ferr := e.finish(StatusExhausted); ferr != nil {
					return e.Result(), ferr
				}
			}
			return e.Result(), err
		}

		done, err := e.Step()
		if err != nil {
			return e.Result(), err
		}
		if done {
			return e.Result(), nil
		}
	}
}

func (e *Engine) finish(status Status) error {
	e.status = status
	res := e.Result()

	e.log.Info("search finished",
		"status", status.String(), "moves", res.Moves,
		"discovered", res.Discovered, "path_len", len(res.Path),
		"interrupted", res.Interrupted)

	snap := Categorize(e.grid, grid.Point{}, false)
	snap.Step = e.moves
	snap.Final = true
	if err := e.sink.Emit(snap); err != nil {
		return fmt.Errorf("emit final snapshot: %w", err)
	}
	if err := e.sink.Finish(res); err != nil {
		return fmt.Errorf("finish sink: %w", err)
	}
	return nil
}
