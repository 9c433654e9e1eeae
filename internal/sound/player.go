// Package sound plays the short chime heard when jumping between sections.
package sound

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Options configure the player.
type Options struct {
	Enabled    bool
	Volume     float64
	SampleRate int
}

// Player mixes chimes into a single speaker stream.
type Player struct {
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	ready  bool
	muted  bool
}

// initSpeaker is swapped out in tests.
var initSpeaker = func(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

// NewPlayer opens the audio device unless sound is disabled. A device that
// fails to open is logged and leaves the player silent; sound is never
// required to run.
func NewPlayer(opts Options) *Player {
	p := &Player{
		sr:     beep.SampleRate(opts.SampleRate),
		volume: opts.Volume,
		mixer:  &beep.Mixer{},
		muted:  !opts.Enabled,
	}
	if !opts.Enabled {
		return p
	}
	if err := p.open(); err != nil {
		slog.Warn("audio disabled", "err", err)
		return p
	}
	return p
}

func (p *Player) open() error {
	if p.sr <= 0 {
		return fmt.Errorf("sample rate %d must be positive", int(p.sr))
	}
	bufferSize := p.sr.N(time.Second / 20)
	if err := initSpeaker(p.sr, bufferSize); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Chime plays the note for the n-th section.
func (p *Player) Chime(n int) {
	if p == nil || !p.ready || p.muted {
		return
	}
	c := newChime(p.sr, noteFor(n), p.volume, p.sr.N(400*time.Millisecond))
	speaker.Lock()
	p.mixer.Add(c)
	speaker.Unlock()
}

// ToggleMute flips muting and reports the new state.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.muted = !p.muted
	if p.muted && p.ready {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return p.muted
}

// Muted reports whether chimes are suppressed.
func (p *Player) Muted() bool { return p == nil || p.muted }

// Close stops playback and releases the device.
func (p *Player) Close() {
	if p == nil || !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
