package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Chime is a sine tone with a 10ms attack. It streams forever; bound it
// with beep.Take.
type Chime struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewChime(sr beep.SampleRate, freq float64) *Chime {
	return &Chime{
		sr:   sr,
		freq: freq,
	}
}

func (g *Chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.01, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Chime) Err() error {
	return nil
}
