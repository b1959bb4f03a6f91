package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/maze-solver/grid"
	"github.com/lixenwraith/maze-solver/search"
)

// Pitch range for step tones: far from the goal plays LowFreq, on the goal HighFreq
const (
	LowFreq  = 220.0 // A3
	HighFreq = 880.0 // A5

	stepDuration = 40 * time.Millisecond
	noteDuration = 120 * time.Millisecond
)

// Player consumes finished streamers
type Player interface {
	Play(s beep.Streamer)
}

// SpeakerPlayer plays through the system audio device
type SpeakerPlayer struct {
	mu          sync.Mutex
	initialized bool
}

// Init opens the audio device; safe to call more than once
func (p *SpeakerPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

func (p *SpeakerPlayer) Play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Play(s)
	}
}

// PlayAndWait plays s and blocks until it has drained
func (p *SpeakerPlayer) PlayAndWait(s beep.Streamer) {
	done := make(chan struct{})
	p.Play(beep.Seq(s, beep.Callback(func() { close(done) })))
	p.mu.Lock()
	ok := p.initialized
	p.mu.Unlock()
	if ok {
		<-done
	}
}

// Close releases the audio device
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// CueSink is a search.Sink producing one tone per expansion and a closing cue
type CueSink struct {
	player  Player
	goal    grid.Point
	maxDist float64
	volume  float64
	steps   bool
}

// CueOption configures a CueSink
type CueOption func(*CueSink)

// WithStepTones toggles the per-expansion tone. Without something pacing the run,
// such as the live viewer, all step tones start together; keep only the outcome cue then.
func WithStepTones(on bool) CueOption {
	return func(c *CueSink) { c.steps = on }
}

// NewCueSink maps distances on g to pitch. volume is linear, 1.0 is unity.
func NewCueSink(player Player, g *grid.Grid, volume float64, opts ...CueOption) *CueSink {
	c := &CueSink{
		player:  player,
		goal:    g.Goal(),
		maxDist: math.Hypot(float64(g.Rows()-1), float64(g.Cols()-1)),
		volume:  volume,
		steps:   true,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Frequency returns the step pitch for a cell at distance d from the goal.
// Pitch is exponential in closeness so equal steps sound like equal intervals.
func (c *CueSink) Frequency(d float64) float64 {
	if c.maxDist <= 0 {
		return HighFreq
	}
	closeness := 1 - math.Min(d/c.maxDist, 1)
	return LowFreq * math.Pow(HighFreq/LowFreq, closeness)
}

func (c *CueSink) Emit(snap search.Snapshot) error {
	if !c.steps || snap.Final || !snap.HasCurrent {
		return nil
	}
	dr := float64(c.goal.Row - snap.Current.Row)
	dc := float64(c.goal.Col - snap.Current.Col)
	c.player.Play(phrase(c.volume*0.5, shaped(c.Frequency(math.Hypot(dr, dc)), stepDuration, WaveTriangle)))
	return nil
}

// Finish plays the outcome cue, blocking until it drains when the player supports it
func (c *CueSink) Finish(res search.Result) error {
	cue := OutcomeCue(res, c.volume)
	if w, ok := c.player.(interface{ PlayAndWait(beep.Streamer) }); ok {
		w.PlayAndWait(cue)
		return nil
	}
	c.player.Play(cue)
	return nil
}

// OutcomeCue is a rising major arpeggio when the goal was found, a falling pair of low square notes otherwise
func OutcomeCue(res search.Result, volume float64) beep.Streamer {
	if res.Status == search.StatusGoalFound {
		return phrase(volume,
			shaped(523.25, noteDuration, WaveSine), // C5
			shaped(659.25, noteDuration, WaveSine), // E5
			shaped(783.99, noteDuration, WaveSine), // G5
			shaped(1046.5, 2*noteDuration, WaveSine),
		)
	}
	return phrase(volume*0.4,
		shaped(196.0, noteDuration, WaveSquare), // G3
		shaped(130.81, 2*noteDuration, WaveSquare),
	)
}
