package audio

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-solver/maze"
	"github.com/lixenwraith/maze-solver/search"
)

// drain streams s to completion and returns the sample count and peak magnitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

type recordingPlayer struct {
	played []beep.Streamer
}

func (p *recordingPlayer) Play(s beep.Streamer) { p.played = append(p.played, s) }

// TestNoteLength verifies a note stops after its duration and stays in range
func TestNoteLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		s := Note{Freq: 440, Duration: 100 * time.Millisecond, Wave: wave}.Streamer(SampleRate)
		n, peak := drain(s)
		assert.Equal(t, SampleRate.N(100*time.Millisecond), n)
		assert.LessOrEqual(t, peak, 1.0)
		assert.Greater(t, peak, 0.5)
		assert.NoError(t, s.Err())
	}
}

// TestSquareWaveValues verifies an unfaded square wave only produces full-scale samples
func TestSquareWaveValues(t *testing.T) {
	s := Note{Freq: 220, Duration: 10 * time.Millisecond, Wave: WaveSquare}.Streamer(SampleRate)
	buf := make([][2]float64, 100)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, math.Abs(buf[i][0]))
		assert.Equal(t, buf[i][0], buf[i][1])
	}
}

// TestNoteFades verifies the fade in starts silent and the fade out ends near silence
func TestNoteFades(t *testing.T) {
	d := 50 * time.Millisecond
	s := Note{Duration: d, Wave: WaveSquare, FadeIn: 10 * time.Millisecond, FadeOut: 10 * time.Millisecond}.Streamer(SampleRate)

	total := SampleRate.N(d)
	buf := make([][2]float64, total+10)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, total, n)

	assert.Equal(t, 0.0, buf[0][0], "fade in starts from silence")
	assert.InDelta(t, 1.0, buf[total/2][0], 1e-9, "full scale between fades")
	assert.Less(t, buf[total-1][0], 0.01, "fade out ends near silence")

	n, ok = s.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok, "drained note reports done")
}

func TestFrequencyRange(t *testing.T) {
	l, err := maze.Builtin("one")
	require.NoError(t, err)
	g, err := l.Grid()
	require.NoError(t, err)

	c := NewCueSink(&recordingPlayer{}, g, 1)
	assert.InDelta(t, HighFreq, c.Frequency(0), 1e-9)
	assert.InDelta(t, LowFreq, c.Frequency(100), 1e-9)
	assert.Greater(t, c.Frequency(2), c.Frequency(5), "closer cells sound higher")
}

// TestCueSinkPerStep verifies one tone per expansion and one closing cue
func TestCueSinkPerStep(t *testing.T) {
	l, err := maze.Builtin("one")
	require.NoError(t, err)
	g, err := l.Grid()
	require.NoError(t, err)

	player := &recordingPlayer{}
	res, err := search.New(g, NewCueSink(player, g, 0.8)).Run(context.Background())
	require.NoError(t, err)

	// goal pop emits no step tone, the outcome cue takes its place
	require.Len(t, player.played, res.Moves)

	n, _ := drain(player.played[0])
	assert.Equal(t, SampleRate.N(stepDuration), n)

	n, _ = drain(player.played[len(player.played)-1])
	assert.Equal(t, 5*SampleRate.N(noteDuration), n, "goal cue is the four-note arpeggio")
}

func TestCueSinkOutcomeOnly(t *testing.T) {
	l, err := maze.Builtin("two")
	require.NoError(t, err)
	g, err := l.Grid()
	require.NoError(t, err)

	player := &recordingPlayer{}
	_, err = search.New(g, NewCueSink(player, g, 0.8, WithStepTones(false))).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, player.played, 1)
	n, _ := drain(player.played[0])
	assert.Equal(t, 5*SampleRate.N(noteDuration), n)
}

func TestOutcomeCueExhausted(t *testing.T) {
	n, peak := drain(OutcomeCue(search.Result{Status: search.StatusExhausted}, 1))
	assert.Equal(t, 3*SampleRate.N(noteDuration), n)
	assert.LessOrEqual(t, peak, 0.41)

	n, peak = drain(OutcomeCue(search.Result{Status: search.StatusGoalFound}, 0))
	assert.Equal(t, 5*SampleRate.N(noteDuration), n)
	assert.Equal(t, 0.0, peak, "zero volume is silent")
}
