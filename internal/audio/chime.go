// Package audio synthesizes the confirmation chime played on submit.
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/spidr-form/internal/config"
)

const (
	toneLength = 120 * time.Millisecond
	attack     = 5 * time.Millisecond
	release    = 80 * time.Millisecond
)

// chimeNotes are played back to back.
var chimeNotes = []float64{880, 1318.5}

// tone is a sine oscillator with a linear attack/release envelope.
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	attack   int
	release  int
	rate     beep.SampleRate
}

func newTone(freq float64, rate beep.SampleRate) *tone {
	return &tone{
		freq:    freq,
		length:  rate.N(toneLength),
		attack:  rate.N(attack),
		release: rate.N(release),
		rate:    rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		val := math.Sin(2*math.Pi*o.phase) * o.envelope()
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

func (o *tone) envelope() float64 {
	switch {
	case o.position < o.attack:
		return float64(o.position) / float64(o.attack)
	case o.position >= o.length-o.release:
		return float64(o.length-o.position) / float64(o.release)
	default:
		return 1
	}
}

// Chime plays the submit confirmation and reports its output level.
// A chime whose speaker failed to start stays silent.
type Chime struct {
	rate   beep.SampleRate
	volume float64
	silent bool
	logger *log.Logger

	mu  sync.Mutex
	tap *Tap
}

// NewChime prepares the speaker when enabled. Failure to open an audio
// device is logged, not returned.
func NewChime(enabled bool, volume float64, logger *log.Logger) *Chime {
	c := &Chime{
		rate:   beep.SampleRate(config.SampleRate),
		volume: volume,
		silent: !enabled,
		logger: logger,
	}
	if !enabled {
		return c
	}

	if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
		logger.Printf("audio: %v; chime disabled", err)
		c.silent = true
	}
	return c
}

// Silent reports whether Play is a no-op.
func (c *Chime) Silent() bool {
	return c.silent
}

// Play starts the chime, replacing one that is still ringing.
func (c *Chime) Play() {
	if c.silent {
		return
	}

	t := NewTap(c.streamer(), config.TapRingSize)
	c.mu.Lock()
	c.tap = t
	c.mu.Unlock()

	speaker.Clear()
	speaker.Play(beep.Seq(t, beep.Callback(t.Reset)))
}

// Level is the RMS of what the chime played most recently, zero once it
// has finished.
func (c *Chime) Level() float64 {
	c.mu.Lock()
	t := c.tap
	c.mu.Unlock()
	if t == nil {
		return 0
	}
	return t.Level(config.LevelWindow)
}

func (c *Chime) streamer() beep.Streamer {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, f := range chimeNotes {
		notes = append(notes, newTone(f, c.rate))
	}
	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   c.volume,
	}
}

// Close stops playback.
func (c *Chime) Close() {
	if c.silent {
		return
	}
	speaker.Clear()
}
