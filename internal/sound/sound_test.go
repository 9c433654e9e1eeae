package sound

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestChimeLengthAndDrain(t *testing.T) {
	c := newChime(beep.SampleRate(1000), 440, 0.5, 250)
	buf := make([][2]float64, 100)

	total := 0
	for i := 0; i < 10; i++ {
		n, ok := c.Stream(buf)
		total += n
		if !ok {
			if n != 0 {
				t.Errorf("drained stream returned %d samples", n)
			}
			break
		}
	}
	if total != 250 {
		t.Errorf("expected 250 samples, got %d", total)
	}
	if n, ok := c.Stream(buf); n != 0 || ok {
		t.Errorf("expected (0, false) after drain, got (%d, %v)", n, ok)
	}
}

func TestChimeDecaysWithinVolume(t *testing.T) {
	sr := beep.SampleRate(8000)
	c := newChime(sr, 440, 0.3, sr.N(400*time.Millisecond))
	buf := make([][2]float64, sr.N(400*time.Millisecond))
	n, _ := c.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range buf[from:to] {
			m = math.Max(m, math.Abs(s[0]))
			if s[0] != s[1] {
				t.Fatal("chime should be identical on both channels")
			}
		}
		return m
	}
	head := peak(0, n/4)
	tail := peak(3*n/4, n)
	if head > 0.3 {
		t.Errorf("peak %v exceeds volume", head)
	}
	if tail >= head/4 {
		t.Errorf("expected decay: head peak %v, tail peak %v", head, tail)
	}
}

func TestNoteFor(t *testing.T) {
	if noteFor(0) != 440 {
		t.Errorf("first section should be A4, got %v", noteFor(0))
	}
	if noteFor(len(scale)) != noteFor(0) {
		t.Error("notes should wrap around the scale")
	}
	if noteFor(-1) != noteFor(1) {
		t.Error("negative indices should map like positive ones")
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	called := false
	restore := initSpeaker
	initSpeaker = func(beep.SampleRate, int) error { called = true; return nil }
	defer func() { initSpeaker = restore }()

	p := NewPlayer(Options{Enabled: false, Volume: 0.2, SampleRate: 44100})
	if called {
		t.Error("disabled player must not open the device")
	}
	if !p.Muted() {
		t.Error("disabled player should report muted")
	}
	p.Chime(1)
	p.Close()
}

func TestPlayerInitFailure(t *testing.T) {
	restore := initSpeaker
	initSpeaker = func(beep.SampleRate, int) error { return errors.New("no device") }
	defer func() { initSpeaker = restore }()

	p := NewPlayer(Options{Enabled: true, Volume: 0.2, SampleRate: 44100})
	if p.ready {
		t.Error("player should not be ready after init failure")
	}
	// must be harmless
	p.Chime(2)
	if p.ToggleMute() != true {
		t.Error("toggle should mute")
	}
	p.Close()
}

func TestNilPlayer(t *testing.T) {
	var p *Player
	p.Chime(0)
	p.Close()
	if !p.Muted() {
		t.Error("nil player is muted")
	}
}
