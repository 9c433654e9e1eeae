package sound

import (
	"math"

	"github.com/faiface/beep"
)

// chime is a short sine tone with an exponential decay.
type chime struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	decay  float64 // envelope falloff per second
	pos    int
	length int
}

func newChime(sr beep.SampleRate, freq, volume float64, length int) *chime {
	return &chime{
		sr:     sr,
		freq:   freq,
		volume: volume,
		decay:  9,
		length: length,
	}
}

func (c *chime) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if c.pos >= c.length {
			return i, i > 0
		}
		t := float64(c.pos) / float64(c.sr)
		v := c.volume * math.Exp(-c.decay*t) * math.Sin(2*math.Pi*c.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }

// pentatonic steps above A4 so neighbouring sections sound related.
var scale = []float64{440, 493.88, 554.37, 659.25, 739.99, 880}

// noteFor returns the chime frequency for the n-th section.
func noteFor(n int) float64 {
	if n < 0 {
		n = -n
	}
	return scale[n%len(scale)]
}
