// Package audio sonifies a search: a short tone per expansion whose pitch
// rises as the expanded cell nears the goal, and a closing cue per outcome.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate used for every generated tone
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// at returns the wave value for a phase in [0, 1)
func (w WaveType) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}

// Note is a single tone with linear fades at both ends
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	FadeIn   time.Duration
	FadeOut  time.Duration
}

// shaped is a note with the fades used for every cue: a quick attack and a longer tail
func shaped(freq float64, d time.Duration, wave WaveType) Note {
	return Note{Freq: freq, Duration: d, Wave: wave, FadeIn: d / 10, FadeOut: d / 3}
}

// Streamer renders the note as stereo samples at rate
func (n Note) Streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(n.Duration)
	in := min(rate.N(n.FadeIn), total)
	out := min(rate.N(n.FadeOut), total-in)
	return &voice{
		wave:    n.Wave,
		step:    n.Freq / float64(rate),
		total:   total,
		fadeIn:  in,
		fadeOut: out,
	}
}

// voice streams one note
type voice struct {
	wave  WaveType
	phase float64
	step  float64

	pos     int
	total   int
	fadeIn  int
	fadeOut int
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if v.pos >= v.total {
		return 0, false
	}
	n := min(len(samples), v.total-v.pos)
	for i := 0; i < n; i++ {
		s := v.wave.at(v.phase) * v.level()
		samples[i] = [2]float64{s, s}

		v.phase += v.step
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return n, true
}

func (v *voice) Err() error { return nil }

// level is the fade gain at the current sample
func (v *voice) level() float64 {
	switch {
	case v.pos < v.fadeIn:
		return float64(v.pos) / float64(v.fadeIn)
	case v.pos >= v.total-v.fadeOut:
		return float64(v.total-v.pos) / float64(v.fadeOut)
	}
	return 1
}

// phrase plays notes back to back at a linear volume; 0 or less is silent
func phrase(vol float64, notes ...Note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.Streamer(SampleRate)
	}
	seq := beep.Seq(parts...)
	if vol <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(vol)}
}
