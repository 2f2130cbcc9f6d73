package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	noteLength = 90 * time.Millisecond
	lowNote    = 880.0
	highNote   = 1320.0
)

// Chime plays a short two-note tone whenever the target is caught. It is
// silent until Initialize succeeds; a missing audio device is not an error
// for the game.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

// NewChime creates an enabled, uninitialized chime
func NewChime() *Chime {
	return &Chime{
		mixer:   &beep.Mixer{},
		enabled: true,
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup drops any queued sound
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Toggle flips the enabled flag and returns the new value
func (c *Chime) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enabled = !c.enabled
	slog.Info("Sound toggled", "enabled", c.enabled)
	return c.enabled
}

// Enabled reports whether Play makes a sound
func (c *Chime) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Play queues one chime
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.enabled {
		return
	}

	speaker.Lock()
	c.mixer.Add(Streamer())
	speaker.Unlock()
}

// Streamer returns a fresh chime: a low note followed by a high one.
func Streamer() beep.Streamer {
	n := sampleRate.N(noteLength)
	return beep.Seq(
		beep.Take(n, NewToneGenerator(sampleRate, lowNote, noteLength)),
		beep.Take(n, NewToneGenerator(sampleRate, highNote, noteLength)),
	)
}

// ToneGenerator is a sine tone with a short attack and a linear decay over
// its length.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

// NewToneGenerator creates a tone of freq Hz fading out over length
func NewToneGenerator(sr beep.SampleRate, freq float64, length time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		length: sr.N(length),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.005, 1.0)
		decay := 1.0
		if g.length > 0 {
			decay = math.Max(1.0-float64(g.pos)/float64(g.length), 0)
		}

		sample := 0.25 * attack * decay * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
