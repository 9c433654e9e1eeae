package field

import (
	"image/color"
	"math"
	"math/rand"
)

// Vec2 is a 2D float vector.
type Vec2 struct {
	X, Y float64
}

// Particle is one moving point of the network.
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// Params controls particle allocation and drawing.
type Params struct {
	DensityDivisor float64 // one particle per this many pixels of width
	MaxCount       int
	Speed          float64 // per-axis velocity range is [-Speed, Speed]
	MinRadius      float64
	MaxRadius      float64

	LinkDistance float64
	LinkWidth    float64

	Background    color.NRGBA
	ParticleColor color.NRGBA
	LinkColor     color.NRGBA // alpha is replaced per link
}

// DefaultParams mirrors the look of the portfolio site.
func DefaultParams() Params {
	return Params{
		DensityDivisor: 10,
		MaxCount:       100,
		Speed:          0.25,
		MinRadius:      1,
		MaxRadius:      3,
		LinkDistance:   150,
		LinkWidth:      0.5,
		Background:     color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
		ParticleColor:  color.NRGBA{R: 16, G: 185, B: 129, A: 128},
		LinkColor:      color.NRGBA{R: 16, G: 185, B: 129, A: 255},
	}
}

// Count returns how many particles a surface of the given width gets.
func Count(width float64, p Params) int {
	if width <= 0 || p.DensityDivisor <= 0 {
		return 0
	}
	n := int(math.Floor(width / p.DensityDivisor))
	if n > p.MaxCount {
		n = p.MaxCount
	}
	return n
}

func newParticle(rng *rand.Rand, w, h float64, p Params) Particle {
	return Particle{
		Pos: Vec2{X: rng.Float64() * w, Y: rng.Float64() * h},
		Vel: Vec2{
			X: (rng.Float64()*2 - 1) * p.Speed,
			Y: (rng.Float64()*2 - 1) * p.Speed,
		},
		Radius: p.MinRadius + rng.Float64()*(p.MaxRadius-p.MinRadius),
	}
}

// advance moves the particle one step and reflects velocity on any axis
// whose coordinate left [0, bound]. Position is not clamped.
func (pt *Particle) advance(w, h float64) {
	pt.Pos.X += pt.Vel.X
	pt.Pos.Y += pt.Vel.Y

	if pt.Pos.X < 0 || pt.Pos.X > w {
		pt.Vel.X = -pt.Vel.X
	}
	if pt.Pos.Y < 0 || pt.Pos.Y > h {
		pt.Vel.Y = -pt.Vel.Y
	}
}

// LinkOpacity returns the opacity of a connection between two points d
// apart, and false when they are too far apart to be linked.
func LinkOpacity(d, threshold float64) (float64, bool) {
	if d >= threshold || threshold <= 0 {
		return 0, false
	}
	return 1 - d/threshold, true
}
