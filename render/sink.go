package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/maze-solver/search"
)

// WriterSink prints snapshots to a writer: each followed by a blank line, then the summary line
type WriterSink struct {
	w       *bufio.Writer
	palette *Palette
	quiet   bool
}

// SinkOption configures a WriterSink
type SinkOption func(*WriterSink)

// WithPalette colours the output
func WithPalette(p *Palette) SinkOption {
	return func(s *WriterSink) { s.palette = p }
}

// WithQuiet skips per-step snapshots, keeping the final one and the summary
func WithQuiet(quiet bool) SinkOption {
	return func(s *WriterSink) { s.quiet = quiet }
}

// NewWriterSink creates a sink writing plain text unless a palette is given
func NewWriterSink(w io.Writer, opts ...SinkOption) *WriterSink {
	s := &WriterSink{w: bufio.NewWriter(w)}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *WriterSink) Emit(snap search.Snapshot) error {
	if s.quiet && !snap.Final {
		return nil
	}
	if _, err := s.w.WriteString(s.render(snap)); err != nil {
		return err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	return s.w.Flush()
}

func (s *WriterSink) Finish(res search.Result) error {
	line := Summary(res)
	if s.palette != nil {
		line = s.palette.Summary(res, line)
	}
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return err
	}
	return s.w.Flush()
}

func (s *WriterSink) render(snap search.Snapshot) string {
	if s.palette == nil {
		return Text(snap)
	}
	var b strings.Builder
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			b.WriteString(s.palette.Cell(snap.At(r, c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
