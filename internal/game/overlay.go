package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/network-backdrop/internal/page"
)

// Debug font baseline offset inside a line box.
const textInset = 2

func (g *Game) drawPage(screen *ebiten.Image) {
	w, h := g.viewport.Size()
	scroll := int(g.page.Scroll())
	navH := g.page.NavbarHeight()

	g.drawSectionPanels(screen, w, h, scroll)

	for _, l := range g.page.Lines() {
		sy := l.Y - scroll
		if sy < navH || sy > h {
			continue
		}
		g.drawLine(screen, l, sy)
	}

	g.drawNavbar(screen, w)
	g.drawStatus(screen, h)
}

// drawSectionPanels shades the about and projects bands like the site's
// translucent section backgrounds.
func (g *Game) drawSectionPanels(screen *ebiten.Image, w, h, scroll int) {
	bands := []struct {
		from, to page.Section
		alpha    float64
	}{
		{page.SectionAbout, page.SectionSkills, 0.3},
		{page.SectionProjects, page.SectionContact, 0.5},
	}
	for _, b := range bands {
		top, ok1 := g.page.Anchor(b.from)
		bottom, ok2 := g.page.Anchor(b.to)
		if !ok1 || !ok2 {
			continue
		}
		y0, y1 := top-scroll, bottom-scroll
		if y1 < 0 || y0 > h {
			continue
		}
		vector.DrawFilledRect(screen, 0, float32(y0), float32(w), float32(y1-y0), withAlpha(colorPanel, b.alpha), false)
		vector.StrokeLine(screen, 0, float32(y0), float32(w), float32(y0), 1, withAlpha(colorBorder, 0.5), false)
	}
}

func (g *Game) drawLine(screen *ebiten.Image, l page.Line, sy int) {
	x, y := float32(l.X), float32(sy)
	width := float32(l.Width())

	switch l.Style {
	case page.StyleHeading:
		vector.DrawFilledRect(screen, x-10, y, 4, page.LineHeight, colorAccent, false)
	case page.StyleTag:
		vector.DrawFilledRect(screen, x-2, y, width+4, page.LineHeight, withAlpha(colorPanel, 0.8), false)
		vector.StrokeRect(screen, x-2, y, width+4, page.LineHeight, 1, colorTag, false)
	case page.StyleAccent:
		vector.DrawFilledRect(screen, x-2, y, width+4, page.LineHeight, withAlpha(colorAccent, 0.1), false)
	}

	if l.URL != "" {
		c := withAlpha(colorAccent, 0.6)
		if l.URL == g.hoverURL {
			c = colorAccentSoft
		}
		vector.StrokeLine(screen, x, y+page.LineHeight-1, x+width, y+page.LineHeight-1, 1, c, false)
	}

	ebitenutil.DebugPrintAt(screen, l.Text, l.X, sy+textInset)
}

func (g *Game) drawNavbar(screen *ebiten.Image, w int) {
	navH := float32(g.page.NavbarHeight())

	// fade the solid navbar in over the scroll threshold
	fade := clamp01(g.page.Scroll() / (2 * g.cfg.Page.NavbarThreshold))
	if g.page.Scrolled() {
		vector.DrawFilledRect(screen, 0, 0, float32(w), navH, withAlpha(colorPanel, 0.9*fade+0.1), false)
		vector.StrokeLine(screen, 0, navH, float32(w), navH, 1, colorBorder, false)
	}

	textY := int(navH)/2 - page.LineHeight/2 + textInset
	ebitenutil.DebugPrintAt(screen, g.page.Brand(), 24, textY)

	active := g.page.Active()
	for _, n := range g.page.Nav() {
		ebitenutil.DebugPrintAt(screen, n.Label, n.X, textY)
		if n.Target == active || n.Target == g.hoverNav {
			c := colorAccent
			if n.Target != active {
				c = withAlpha(colorAccentSoft, 0.6)
			}
			uy := float32(textY + page.LineHeight)
			vector.StrokeLine(screen, float32(n.X), uy, float32(n.X+n.Width()), uy, 2, c, false)
		}
	}
}

func (g *Game) drawStatus(screen *ebiten.Image, h int) {
	status := "Home/1-4: jump  Wheel: scroll  Click: open link  M: sound  Esc/Q: quit"
	if g.sound.Muted() {
		status += "  [muted]"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, h-page.LineHeight-4)
}
