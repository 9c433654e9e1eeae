// Package telemetry aggregates frame timings and writes them out.
package telemetry

import (
	"log/slog"
	"time"
)

// FrameSample is what the host records for every rendered frame.
type FrameSample struct {
	Duration  time.Duration
	Particles int
	Links     int
	Width     int
	Height    int
}

// WindowStats summarizes one window of frames. It is also the CSV row.
type WindowStats struct {
	Window        int     `csv:"window"`
	Frames        int     `csv:"frames"`
	AvgFrameUS    int64   `csv:"avg_frame_us"`
	MaxFrameUS    int64   `csv:"max_frame_us"`
	Particles     int     `csv:"particles"`
	AvgLinks      float64 `csv:"avg_links"`
	MaxLinks      int     `csv:"max_links"`
	SurfaceWidth  int     `csv:"surface_width"`
	SurfaceHeight int     `csv:"surface_height"`
}

// Sink receives completed windows.
type Sink interface {
	WriteFrames(WindowStats) error
}

// FrameCollector accumulates samples and flushes a WindowStats every
// windowSize frames.
type FrameCollector struct {
	windowSize int
	window     int
	sink       Sink

	frames   int
	total    time.Duration
	max      time.Duration
	links    int
	maxLinks int
	last     FrameSample
}

// NewFrameCollector creates a collector. sink may be nil, in which case
// windows are only logged.
func NewFrameCollector(windowSize int, sink Sink) *FrameCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameCollector{windowSize: windowSize, sink: sink}
}

// Record adds one frame and flushes when the window is full.
func (c *FrameCollector) Record(s FrameSample) {
	c.frames++
	c.total += s.Duration
	if s.Duration > c.max {
		c.max = s.Duration
	}
	c.links += s.Links
	if s.Links > c.maxLinks {
		c.maxLinks = s.Links
	}
	c.last = s

	if c.frames >= c.windowSize {
		c.Flush()
	}
}

// Flush emits the partial window, if any, and starts a new one.
func (c *FrameCollector) Flush() {
	if c.frames == 0 {
		return
	}
	stats := WindowStats{
		Window:        c.window,
		Frames:        c.frames,
		AvgFrameUS:    (c.total / time.Duration(c.frames)).Microseconds(),
		MaxFrameUS:    c.max.Microseconds(),
		Particles:     c.last.Particles,
		AvgLinks:      float64(c.links) / float64(c.frames),
		MaxLinks:      c.maxLinks,
		SurfaceWidth:  c.last.Width,
		SurfaceHeight: c.last.Height,
	}

	slog.Info("frames",
		"window", stats.Window,
		"frames", stats.Frames,
		"avg_us", stats.AvgFrameUS,
		"max_us", stats.MaxFrameUS,
		"particles", stats.Particles,
		"avg_links", stats.AvgLinks,
	)
	if c.sink != nil {
		if err := c.sink.WriteFrames(stats); err != nil {
			slog.Error("writing frame stats", "err", err)
		}
	}

	c.window++
	c.frames = 0
	c.total = 0
	c.max = 0
	c.links = 0
	c.maxLinks = 0
}
