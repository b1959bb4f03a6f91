package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/maze-solver/audio"
	"github.com/lixenwraith/maze-solver/maze"
	"github.com/lixenwraith/maze-solver/render"
	"github.com/lixenwraith/maze-solver/search"
	"github.com/lixenwraith/maze-solver/viewer"
)

// Output styles for solve
const (
	stylePlain = "plain"
	styleColor = "color"
	styleLive  = "live"
)

type solveOptions struct {
	file     string
	sep      string
	frontier string
	maxMoves int
	style    string
	delay    time.Duration
	paused   bool
	sound    bool
	volume   float64
	quiet    bool
}

func newSolveCmd(a *app) *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve [name]",
		Short: "Solve a built-in maze or a maze file",
		Example: `  mazesolver solve one
  mazesolver solve --file maze.txt --sep ';' --style live --sound`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, o, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "f", "", "read the maze from a file instead of a built-in")
	f.StringVar(&o.sep, "sep", string(maze.DefaultSeparator), "row separator used in the maze file")
	f.StringVar(&o.frontier, "frontier", search.FrontierSort.String(), "frontier implementation: sort, heap")
	f.IntVar(&o.maxMoves, "max-moves", 0, "stop after this many moves (0 = unbounded)")
	f.StringVar(&o.style, "style", stylePlain, "output style: plain, color, live")
	f.DurationVar(&o.delay, "delay", 50*time.Millisecond, "pause between steps in live style")
	f.BoolVar(&o.paused, "paused", false, "start the live view paused")
	f.BoolVar(&o.sound, "sound", false, "play an outcome cue, plus a tone per expansion in live style")
	f.Float64Var(&o.volume, "volume", 0.5, "sound volume, 0 to 1")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "print only the final grid and summary")
	return cmd
}

func (o *solveOptions) layout(args []string) (maze.Layout, error) {
	sep, size := utf8.DecodeRuneInString(o.sep)
	if size == 0 || size != len(o.sep) {
		return maze.Layout{}, fmt.Errorf("--sep must be a single character, got %q", o.sep)
	}
	switch {
	case o.file != "" && len(args) > 0:
		return maze.Layout{}, errors.New("give either a maze name or --file, not both")
	case o.file != "":
		return maze.Load(o.file, sep)
	case len(args) == 1:
		return maze.Builtin(args[0])
	}
	return maze.Layout{}, errors.New("no maze given: pass a built-in name (see list) or --file")
}

func (a *app) solve(cmd *cobra.Command, o *solveOptions, args []string) error {
	layout, err := o.layout(args)
	if err != nil {
		return err
	}
	kind, ok := search.ParseFrontierKind(o.frontier)
	if !ok {
		return fmt.Errorf("unknown frontier %q", o.frontier)
	}
	if o.maxMoves < 0 {
		return fmt.Errorf("--max-moves must not be negative, got %d", o.maxMoves)
	}
	g, err := layout.Grid()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		sinks   []search.Sink
		summary string
	)
	switch o.style {
	case stylePlain, styleColor:
		opts := []render.SinkOption{render.WithQuiet(o.quiet)}
		if o.style == styleColor {
			opts = append(opts, render.WithPalette(render.NewPalette(lipgloss.NewRenderer(cmd.OutOrStdout()))))
		}
		sinks = append(sinks, render.NewWriterSink(cmd.OutOrStdout(), opts...))
	case styleLive:
		screen, err := viewer.Open()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		v := viewer.New(screen, cancel,
			viewer.WithDelay(o.delay),
			viewer.WithStartPaused(o.paused),
			viewer.WithHoldOnFinish(true),
		)
		defer func() {
			v.Close()
			// the screen is gone after Close; keep the outcome on the normal terminal
			if summary != "" {
				fmt.Fprintln(cmd.OutOrStdout(), summary)
			}
		}()
		sinks = append(sinks, v)
	default:
		return fmt.Errorf("unknown style %q", o.style)
	}

	if o.sound {
		player := &audio.SpeakerPlayer{}
		if err := player.Init(); err != nil {
			a.logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer player.Close()
			// only the live viewer paces steps; elsewhere the tones would all start at once
			steps := o.style == styleLive
			if !steps {
				a.logger.Info("step tones need --style live, playing the outcome cue only")
			}
			sinks = append(sinks, audio.NewCueSink(player, g, o.volume, audio.WithStepTones(steps)))
		}
	}

	sink := search.MultiSink(sinks...)
	if err := sink.Emit(search.Initial(g)); err != nil {
		return fmt.Errorf("show maze: %w", err)
	}

	engine := search.New(g, sink,
		search.WithFrontier(kind),
		search.WithMaxMoves(o.maxMoves),
		search.WithLogger(a.logger),
	)
	res, err := engine.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	summary = render.Summary(res)
	if res.Status != search.StatusGoalFound {
		return &exitCodeError{code: exitNoPath}
	}
	return nil
}
