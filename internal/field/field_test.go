package field

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

type op struct {
	kind  string
	args  []float64
	color color.Color
}

type spySurface struct {
	ops []op
}

func (s *spySurface) FillRect(x, y, w, h float64, c color.Color) {
	s.ops = append(s.ops, op{"rect", []float64{x, y, w, h}, c})
}

func (s *spySurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	s.ops = append(s.ops, op{"line", []float64{x0, y0, x1, y1, width}, c})
}

func (s *spySurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.ops = append(s.ops, op{"circle", []float64{cx, cy, r}, c})
}

func (s *spySurface) count(kind string) int {
	n := 0
	for _, o := range s.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

type fakeViewport struct {
	w, h   int
	nextID int
	subs   map[int]func(w, h int)
}

func newFakeViewport(w, h int) *fakeViewport {
	return &fakeViewport{w: w, h: h, subs: map[int]func(w, h int){}}
}

func (v *fakeViewport) Size() (int, int) { return v.w, v.h }

func (v *fakeViewport) OnResize(fn func(w, h int)) func() {
	v.nextID++
	id := v.nextID
	v.subs[id] = fn
	return func() { delete(v.subs, id) }
}

func (v *fakeViewport) resize(w, h int) {
	v.w, v.h = w, h
	for _, fn := range v.subs {
		fn(w, h)
	}
}

type manualScheduler struct {
	next    FrameID
	pending map[FrameID]func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: map[FrameID]func(){}}
}

func (s *manualScheduler) RequestFrame(fn func()) FrameID {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *manualScheduler) CancelFrame(id FrameID) { delete(s.pending, id) }

func (s *manualScheduler) tick() {
	due := s.pending
	s.pending = map[FrameID]func(){}
	for _, fn := range due {
		fn()
	}
}

func mountTest(t *testing.T, w, h int) (*Field, *spySurface, *fakeViewport, *manualScheduler) {
	t.Helper()
	vp := newFakeViewport(w, h)
	surf := &spySurface{}
	sched := newManualScheduler()
	f := Mount(vp, surf, sched, DefaultParams(), rand.New(rand.NewSource(1)))
	if f == nil {
		t.Fatal("expected mounted field")
	}
	return f, surf, vp, sched
}

func TestCount(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		width float64
		want  int
	}{
		{-5, 0},
		{0, 0},
		{9, 0},
		{10, 1},
		{105, 10},
		{999, 99},
		{1000, 100},
		{5000, 100},
	}
	for _, tc := range tests {
		if got := Count(tc.width, p); got != tc.want {
			t.Errorf("Count(%v) = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestMountAllocatesParticles(t *testing.T) {
	f, _, vp, sched := mountTest(t, 800, 600)
	p := DefaultParams()

	particles := f.Particles()
	if len(particles) != 80 {
		t.Fatalf("expected 80 particles, got %d", len(particles))
	}
	for i, pt := range particles {
		if pt.Pos.X < 0 || pt.Pos.X > 800 || pt.Pos.Y < 0 || pt.Pos.Y > 600 {
			t.Errorf("particle %d out of surface: %+v", i, pt.Pos)
		}
		if math.Abs(pt.Vel.X) > p.Speed || math.Abs(pt.Vel.Y) > p.Speed {
			t.Errorf("particle %d velocity out of range: %+v", i, pt.Vel)
		}
		if pt.Radius < p.MinRadius || pt.Radius > p.MaxRadius {
			t.Errorf("particle %d radius out of range: %f", i, pt.Radius)
		}
	}
	if len(vp.subs) != 1 {
		t.Errorf("expected one resize subscriber, got %d", len(vp.subs))
	}
	if len(sched.pending) != 1 {
		t.Errorf("expected one pending frame, got %d", len(sched.pending))
	}
}

func TestMountWithoutSurfaceIsNoop(t *testing.T) {
	vp := newFakeViewport(800, 600)
	sched := newManualScheduler()

	f := Mount(vp, nil, sched, DefaultParams(), nil)
	if f != nil {
		t.Fatal("expected nil field without a surface")
	}
	if len(vp.subs) != 0 || len(sched.pending) != 0 {
		t.Error("no-op mount must not register anything")
	}

	// nil field methods must not panic
	f.Close()
	if f.Particles() != nil {
		t.Error("expected no particles from nil field")
	}
	if s := f.Stats(); s != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", s)
	}
}

func TestPositionsStayWithinBounds(t *testing.T) {
	f, _, _, _ := mountTest(t, 120, 80)
	tol := DefaultParams().Speed

	for step := 0; step < 20000; step++ {
		f.Advance()
		for i, pt := range f.particles {
			if pt.Pos.X < -tol || pt.Pos.X > 120+tol || pt.Pos.Y < -tol || pt.Pos.Y > 80+tol {
				t.Fatalf("step %d: particle %d escaped: %+v", step, i, pt.Pos)
			}
		}
	}
}

func TestReflection(t *testing.T) {
	tests := []struct {
		name    string
		pos     Vec2
		vel     Vec2
		wantVel Vec2
	}{
		{"interior", Vec2{50, 50}, Vec2{0.2, -0.1}, Vec2{0.2, -0.1}},
		{"left edge", Vec2{0.1, 50}, Vec2{-0.25, 0.1}, Vec2{0.25, 0.1}},
		{"right edge", Vec2{99.9, 50}, Vec2{0.25, 0.1}, Vec2{-0.25, 0.1}},
		{"top edge", Vec2{50, 0.05}, Vec2{0.1, -0.2}, Vec2{0.1, 0.2}},
		{"bottom edge", Vec2{50, 99.95}, Vec2{0.1, 0.2}, Vec2{0.1, -0.2}},
		{"corner", Vec2{0, 0}, Vec2{-0.1, -0.1}, Vec2{0.1, 0.1}},
		{"near edge stays", Vec2{99.5, 50}, Vec2{0.2, 0}, Vec2{0.2, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pt := Particle{Pos: tc.pos, Vel: tc.vel, Radius: 1}
			pt.advance(100, 100)
			if pt.Vel != tc.wantVel {
				t.Errorf("velocity = %+v, want %+v", pt.Vel, tc.wantVel)
			}
			want := Vec2{tc.pos.X + tc.vel.X, tc.pos.Y + tc.vel.Y}
			if pt.Pos != want {
				t.Errorf("position = %+v, want %+v (no clamping)", pt.Pos, want)
			}
		})
	}
}

func TestLinkOpacity(t *testing.T) {
	tests := []struct {
		d      float64
		want   float64
		linked bool
	}{
		{0, 1, true},
		{75, 0.5, true},
		{149.9, 1 - 149.9/150, true},
		{150, 0, false},
		{400, 0, false},
	}
	for _, tc := range tests {
		got, ok := LinkOpacity(tc.d, 150)
		if ok != tc.linked || math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("LinkOpacity(%v) = %v, %v; want %v, %v", tc.d, got, ok, tc.want, tc.linked)
		}
	}
}

func TestRenderDrawsLinksWithinThreshold(t *testing.T) {
	f, _, _, _ := mountTest(t, 1000, 1000)
	f.particles = []Particle{
		{Pos: Vec2{100, 100}, Radius: 2},
		{Pos: Vec2{175, 100}, Radius: 2}, // 75 from the first
		{Pos: Vec2{100, 400}, Radius: 2}, // far from both
	}

	surf := &spySurface{}
	f.Render(surf)

	if surf.ops[0].kind != "rect" {
		t.Fatalf("first op must clear the surface, got %s", surf.ops[0].kind)
	}
	if got := surf.count("circle"); got != 3 {
		t.Errorf("expected 3 circles, got %d", got)
	}
	if got := surf.count("line"); got != 1 {
		t.Fatalf("expected 1 link, got %d", got)
	}
	for _, o := range surf.ops {
		if o.kind != "line" {
			continue
		}
		c := o.color.(color.NRGBA)
		if c.A != 128 {
			t.Errorf("expected alpha 128 for half distance, got %d", c.A)
		}
		if o.args[4] != DefaultParams().LinkWidth {
			t.Errorf("expected line width %v, got %v", DefaultParams().LinkWidth, o.args[4])
		}
	}
	if s := f.Stats(); s.Links != 1 || s.Particles != 3 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestEachPairLinkedOnce(t *testing.T) {
	f, _, _, _ := mountTest(t, 1000, 1000)
	f.particles = []Particle{
		{Pos: Vec2{10, 10}},
		{Pos: Vec2{20, 10}},
		{Pos: Vec2{30, 10}},
		{Pos: Vec2{40, 10}},
	}
	surf := &spySurface{}
	f.Render(surf)
	// 4 close particles form 6 unordered pairs
	if got := surf.count("line"); got != 6 {
		t.Errorf("expected 6 links, got %d", got)
	}
}

func TestFrameLoop(t *testing.T) {
	f, surf, _, sched := mountTest(t, 300, 200)

	for i := 0; i < 5; i++ {
		sched.tick()
	}
	if got := surf.count("rect"); got != 5 {
		t.Errorf("expected 5 cleared frames, got %d", got)
	}
	if f.Stats().Frame != 5 {
		t.Errorf("expected frame counter 5, got %d", f.Stats().Frame)
	}
	if len(sched.pending) != 1 {
		t.Errorf("expected the next frame to be scheduled, got %d pending", len(sched.pending))
	}
}

func TestCloseStopsDrawing(t *testing.T) {
	f, surf, vp, sched := mountTest(t, 300, 200)
	sched.tick()
	before := len(surf.ops)

	f.Close()
	if len(sched.pending) != 0 {
		t.Errorf("expected pending frame to be cancelled, got %d", len(sched.pending))
	}
	if len(vp.subs) != 0 {
		t.Errorf("expected resize handler removed, got %d", len(vp.subs))
	}

	sched.tick()
	vp.resize(50, 50)
	if len(surf.ops) != before {
		t.Errorf("surface mutated after close: %d ops, want %d", len(surf.ops), before)
	}

	// second close is harmless
	f.Close()
}

func TestStaleFrameAfterCloseIsIgnored(t *testing.T) {
	vp := newFakeViewport(300, 200)
	surf := &spySurface{}
	var held func()
	sched := &captureScheduler{capture: func(fn func()) { held = fn }}

	f := Mount(vp, surf, sched, DefaultParams(), rand.New(rand.NewSource(2)))
	f.Close()
	held()

	if len(surf.ops) != 0 {
		t.Errorf("frame callback drew after close: %d ops", len(surf.ops))
	}
}

type captureScheduler struct {
	capture func(fn func())
}

func (s *captureScheduler) RequestFrame(fn func()) FrameID { s.capture(fn); return 1 }
func (s *captureScheduler) CancelFrame(FrameID)            {}

func TestResizeKeepsParticles(t *testing.T) {
	f, surf, vp, sched := mountTest(t, 800, 600)
	before := f.Particles()

	vp.resize(200, 100)

	w, h := f.Size()
	if w != 200 || h != 100 {
		t.Errorf("expected size 200x100, got %vx%v", w, h)
	}
	after := f.Particles()
	if len(after) != len(before) {
		t.Fatalf("particle count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("particle %d changed on resize", i)
		}
	}

	sched.tick()
	rect := surf.ops[0]
	if rect.kind != "rect" || rect.args[2] != 200 || rect.args[3] != 100 {
		t.Errorf("expected background fill at new size, got %+v", rect)
	}
}
