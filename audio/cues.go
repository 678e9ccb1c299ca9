package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cues plays short tones for run events. Every method is a no-op until
// Initialize succeeds, so a machine without an audio device still runs.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewCues() *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.mixer.Clear()
	c.initialized = false
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.mixer.Add(s)
}

// PlayFood is a short rising chirp.
func (c *Cues) PlayFood() {
	c.play(beep.Take(sampleRate.N(time.Millisecond*80), NewChime(sampleRate, 880)))
}

// PlayGoal marks a completed run.
func (c *Cues) PlayGoal() {
	c.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*120), NewChime(sampleRate, 660)),
		beep.Take(sampleRate.N(time.Millisecond*200), NewChime(sampleRate, 990)),
	))
}

// PlayCollision is a low buzz.
func (c *Cues) PlayCollision() {
	c.play(beep.Take(sampleRate.N(time.Millisecond*250), NewChime(sampleRate, 110)))
}
