// Package game hosts the particle backdrop and the portfolio page in an
// ebiten window.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/network-backdrop/internal/config"
	"github.com/iburimskiy/network-backdrop/internal/content"
	"github.com/iburimskiy/network-backdrop/internal/field"
	"github.com/iburimskiy/network-backdrop/internal/page"
	"github.com/iburimskiy/network-backdrop/internal/sound"
	"github.com/iburimskiy/network-backdrop/internal/telemetry"
)

// Options carries the collaborators created by the command.
type Options struct {
	Seed      int64
	Sound     *sound.Player
	Telemetry *telemetry.FrameCollector
}

// Game implements ebiten.Game.
type Game struct {
	cfg    *config.Config
	params field.Params
	rng    *rand.Rand

	viewport *resizeBus
	frames   *frameQueue
	screen   *screenSurface
	surface  field.Surface
	field    *field.Field

	page      *page.Page
	sound     *sound.Player
	telemetry *telemetry.FrameCollector

	// opens external links; replaced in tests
	openLink func(url string)

	// input edge detection
	prevKey  map[ebiten.Key]bool
	hoverURL string
	hoverNav page.Section

	closed bool
}

// New creates the game. The field is mounted on the first Layout call,
// when the window size is known.
func New(cfg *config.Config, portfolio *content.Portfolio, opts Options) *Game {
	g := &Game{
		cfg:       cfg,
		params:    cfg.FieldParams(),
		rng:       rand.New(rand.NewSource(opts.Seed)),
		viewport:  newResizeBus(),
		frames:    &frameQueue{},
		screen:    &screenSurface{},
		sound:     opts.Sound,
		telemetry: opts.Telemetry,
		prevKey:   map[ebiten.Key]bool{},
		openLink:  confirmAndOpen,
	}
	g.surface = g.screen
	g.page = page.New(portfolio, page.Options{
		WheelStep:       cfg.Page.WheelStep,
		Smoothing:       cfg.Page.Smoothing,
		NavbarThreshold: cfg.Page.NavbarThreshold,
		NavbarHeight:    cfg.Page.NavbarHeight,
	}, cfg.Window.Width, cfg.Window.Height)
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	sectionKeys := []struct {
		key     ebiten.Key
		section page.Section
	}{
		{ebiten.KeyHome, page.SectionHero},
		{ebiten.Key1, page.SectionAbout},
		{ebiten.Key2, page.SectionSkills},
		{ebiten.Key3, page.SectionProjects},
		{ebiten.Key4, page.SectionContact},
	}
	for _, sk := range sectionKeys {
		if justPressed(sk.key) {
			g.navigate(sk.section)
		}
	}
	if justPressed(ebiten.KeyM) {
		muted := g.sound.ToggleMute()
		slog.Info("sound toggled", "muted", muted)
	}

	_, wheelY := ebiten.Wheel()
	g.page.Wheel(wheelY)

	mouseX, mouseY := ebiten.CursorPosition()
	g.hover(mouseX, mouseY)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.click(mouseX, mouseY)
	}

	g.page.Update()
	return nil
}

func (g *Game) hover(x, y int) {
	g.hoverURL, _ = g.page.LinkAt(x, y)
	g.hoverNav, _ = g.page.NavAt(x, y)
	if g.hoverURL != "" || g.hoverNav != "" {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// click handles a left click at a screen point.
func (g *Game) click(x, y int) {
	if s, ok := g.page.NavAt(x, y); ok {
		g.navigate(s)
		return
	}
	url, ok := g.page.LinkAt(x, y)
	if !ok {
		return
	}
	if s, ok := page.AnchorTarget(url); ok {
		g.navigate(s)
		return
	}
	slog.Info("link clicked", "url", url)
	g.openLink(url)
}

func (g *Game) navigate(s page.Section) {
	if !g.page.ScrollTo(s) {
		return
	}
	g.sound.Chime(sectionIndex(s))
	slog.Info("navigate", "section", string(s))
}

func sectionIndex(s page.Section) int {
	switch s {
	case page.SectionAbout:
		return 1
	case page.SectionSkills:
		return 2
	case page.SectionProjects:
		return 3
	case page.SectionContact:
		return 4
	}
	return 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.target = screen
	start := time.Now()
	ran := g.frames.run()
	elapsed := time.Since(start)
	g.screen.target = nil

	if ran && g.telemetry != nil {
		st := g.field.Stats()
		w, h := g.viewport.Size()
		g.telemetry.Record(telemetry.FrameSample{
			Duration:  elapsed,
			Particles: st.Particles,
			Links:     st.Links,
			Width:     w,
			Height:    h,
		})
	}

	g.drawPage(screen)
}

// Layout makes the logical screen match the window so the drawing surface
// always covers the whole viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.closed {
		return outsideWidth, outsideHeight
	}
	if g.viewport.set(outsideWidth, outsideHeight) {
		g.page.Resize(outsideWidth, outsideHeight)
		slog.Debug("viewport resized", "width", outsideWidth, "height", outsideHeight)
	}
	if g.field == nil {
		g.field = field.Mount(g.viewport, g.surface, g.frames, g.params, g.rng)
	}
	return outsideWidth, outsideHeight
}

// Close unmounts the field and flushes the last telemetry window.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.field.Close()
	if g.telemetry != nil {
		g.telemetry.Flush()
	}
}
