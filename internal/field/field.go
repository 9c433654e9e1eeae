// Package field animates the particle network drawn behind the portfolio.
//
// A Field owns its particle slice, its surface handle and its pending frame
// for as long as it is mounted. All methods are expected to run on the host's
// render goroutine; the field does no locking of its own.
package field

import (
	"log/slog"
	"math"
	"math/rand"
)

// Stats describes the most recent frame.
type Stats struct {
	Frame     uint64
	Particles int
	Links     int
}

// Field is a mounted particle network.
type Field struct {
	params    Params
	surface   Surface
	scheduler Scheduler
	rng       *rand.Rand

	width, height float64
	particles     []Particle

	frame      FrameID
	stopResize func()
	closed     bool

	stats Stats
}

// Mount allocates the particle set for the viewport's current size, starts
// listening for resizes and requests the first frame. A nil surface leaves
// nothing to draw on, so Mount returns nil and the caller gets a no-op field.
func Mount(vp Viewport, surface Surface, scheduler Scheduler, p Params, rng *rand.Rand) *Field {
	if surface == nil || vp == nil || scheduler == nil {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	w, h := vp.Size()
	f := &Field{
		params:    p,
		surface:   surface,
		scheduler: scheduler,
		rng:       rng,
		width:     float64(w),
		height:    float64(h),
	}

	n := Count(f.width, p)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = newParticle(rng, f.width, f.height, p)
	}

	f.stopResize = vp.OnResize(f.resize)
	f.frame = scheduler.RequestFrame(f.step)

	slog.Info("field mounted", "width", w, "height", h, "particles", n)
	return f
}

func (f *Field) resize(w, h int) {
	if f.closed {
		return
	}
	f.width = float64(w)
	f.height = float64(h)
}

// step is one frame: advance, draw and schedule the next one.
func (f *Field) step() {
	if f.closed {
		return
	}
	f.Advance()
	f.Render(f.surface)
	f.frame = f.scheduler.RequestFrame(f.step)
}

// Advance moves every particle by its velocity, reflecting at the edges.
func (f *Field) Advance() {
	for i := range f.particles {
		f.particles[i].advance(f.width, f.height)
	}
}

// Render paints the background, the particles and their links onto s.
func (f *Field) Render(s Surface) {
	p := f.params
	s.FillRect(0, 0, f.width, f.height, p.Background)

	for i := range f.particles {
		pt := &f.particles[i]
		s.FillCircle(pt.Pos.X, pt.Pos.Y, pt.Radius, p.ParticleColor)
	}

	links := 0
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i].Pos
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j].Pos
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			opacity, ok := LinkOpacity(d, p.LinkDistance)
			if !ok {
				continue
			}
			c := p.LinkColor
			c.A = uint8(math.Round(opacity * 255))
			s.StrokeLine(a.X, a.Y, b.X, b.Y, p.LinkWidth, c)
			links++
		}
	}

	f.stats.Frame++
	f.stats.Particles = len(f.particles)
	f.stats.Links = links
}

// Close cancels the pending frame and stops listening for resizes.
// It is safe to call on a nil field and more than once.
func (f *Field) Close() {
	if f == nil || f.closed {
		return
	}
	f.closed = true
	f.scheduler.CancelFrame(f.frame)
	if f.stopResize != nil {
		f.stopResize()
		f.stopResize = nil
	}
	slog.Info("field unmounted", "frames", f.stats.Frame)
}

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	if f == nil {
		return nil
	}
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Size returns the surface dimensions the field currently draws to.
func (f *Field) Size() (w, h float64) {
	if f == nil {
		return 0, 0
	}
	return f.width, f.height
}

// Stats reports counters for the last rendered frame.
func (f *Field) Stats() Stats {
	if f == nil {
		return Stats{}
	}
	return f.stats
}
