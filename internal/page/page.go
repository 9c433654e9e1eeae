// Package page lays out the portfolio sections and tracks scrolling.
package page

import (
	"math"
	"strings"

	"github.com/iburimskiy/network-backdrop/internal/content"
)

// Section names an anchor on the page.
type Section string

const (
	SectionHero     Section = "hero"
	SectionAbout    Section = "about"
	SectionSkills   Section = "skills"
	SectionProjects Section = "projects"
	SectionContact  Section = "contact"
	SectionFooter   Section = "footer"
)

var sectionOrder = []Section{
	SectionHero, SectionAbout, SectionSkills, SectionProjects, SectionContact, SectionFooter,
}

// NavItem is a navbar entry, in screen coordinates.
type NavItem struct {
	Label  string
	Target Section
	X      int
}

// Width returns the entry's clickable width in pixels.
func (n NavItem) Width() int { return len(n.Label) * CharWidth }

// Options tune scrolling and the navbar.
type Options struct {
	WheelStep       float64
	Smoothing       float64
	NavbarThreshold float64
	NavbarHeight    int
}

// Page is the scrollable overlay drawn above the particle field.
type Page struct {
	portfolio *content.Portfolio
	opts      Options

	width, height int
	lines         []Line
	anchors       map[Section]int
	contentHeight int
	nav           []NavItem

	scroll    float64
	target    float64
	hasTarget bool
}

// New lays the portfolio out for a width x height viewport.
func New(p *content.Portfolio, opts Options, width, height int) *Page {
	pg := &Page{portfolio: p, opts: opts}
	pg.Resize(width, height)
	return pg
}

// Resize re-flows the page for a new viewport size. It is a no-op when the
// size is unchanged.
func (p *Page) Resize(width, height int) {
	if width == p.width && height == p.height && p.lines != nil {
		return
	}
	p.width, p.height = width, height
	p.lines, p.anchors, p.contentHeight = layout(p.portfolio, width, height)
	p.nav = navItems(width)
	p.scroll = p.clamp(p.scroll)
	if p.hasTarget {
		p.target = p.clamp(p.target)
	}
}

func navItems(width int) []NavItem {
	items := []NavItem{
		{Label: "About Me", Target: SectionAbout},
		{Label: "Skills", Target: SectionSkills},
		{Label: "Projects", Target: SectionProjects},
		{Label: "Contact", Target: SectionContact},
	}
	const spacing = 4 * CharWidth
	x := width - margin
	for i := len(items) - 1; i >= 0; i-- {
		x -= items[i].Width()
		items[i].X = x
		x -= spacing
	}
	return items
}

func (p *Page) maxScroll() float64 {
	return math.Max(0, float64(p.contentHeight-p.height))
}

func (p *Page) clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), p.maxScroll())
}

// ScrollTo starts a smooth scroll that brings s just below the navbar.
func (p *Page) ScrollTo(s Section) bool {
	y, ok := p.anchors[s]
	if !ok {
		return false
	}
	p.target = p.clamp(float64(y - p.opts.NavbarHeight))
	p.hasTarget = true
	return true
}

// Wheel scrolls by whole notches; positive moves toward the top.
// It interrupts any smooth scroll in progress.
func (p *Page) Wheel(notches float64) {
	if notches == 0 {
		return
	}
	p.hasTarget = false
	p.scroll = p.clamp(p.scroll - notches*p.opts.WheelStep)
}

// Update advances a smooth scroll by one tick.
func (p *Page) Update() {
	if !p.hasTarget {
		return
	}
	d := p.target - p.scroll
	if math.Abs(d) < 0.5 {
		p.scroll = p.target
		p.hasTarget = false
		return
	}
	p.scroll = p.clamp(p.scroll + d*p.opts.Smoothing)
}

// Scroll returns the current vertical offset in pixels.
func (p *Page) Scroll() float64 { return p.scroll }

// Scrolling reports whether a smooth scroll is still running.
func (p *Page) Scrolling() bool { return p.hasTarget }

// Scrolled reports whether the navbar should use its solid style.
func (p *Page) Scrolled() bool { return p.scroll > p.opts.NavbarThreshold }

// ContentHeight returns the total page height.
func (p *Page) ContentHeight() int { return p.contentHeight }

// Lines returns every laid-out line in page coordinates.
func (p *Page) Lines() []Line { return p.lines }

// Nav returns the navbar entries.
func (p *Page) Nav() []NavItem { return p.nav }

// NavbarHeight returns the height of the navbar strip.
func (p *Page) NavbarHeight() int { return p.opts.NavbarHeight }

// Brand returns the navbar brand text.
func (p *Page) Brand() string { return p.portfolio.Brand }

// Anchor returns the page y of a section.
func (p *Page) Anchor(s Section) (int, bool) {
	y, ok := p.anchors[s]
	return y, ok
}

// Active returns the section currently under the navbar.
func (p *Page) Active() Section {
	probe := int(p.scroll) + p.opts.NavbarHeight + 1
	active := SectionHero
	for _, s := range sectionOrder {
		if y, ok := p.anchors[s]; ok && y <= probe {
			active = s
		}
	}
	return active
}

// NavAt returns the navbar target under the screen point, if any.
func (p *Page) NavAt(x, y int) (Section, bool) {
	if y < 0 || y >= p.opts.NavbarHeight {
		return "", false
	}
	for _, n := range p.nav {
		if x >= n.X && x < n.X+n.Width() {
			return n.Target, true
		}
	}
	return "", false
}

// LinkAt returns the URL of the link line under the screen point. The
// navbar covers the top of the page, so points inside it never hit a line.
func (p *Page) LinkAt(x, y int) (string, bool) {
	if y < p.opts.NavbarHeight {
		return "", false
	}
	py := y + int(p.scroll)
	for _, l := range p.lines {
		if l.URL == "" {
			continue
		}
		if py >= l.Y && py < l.Y+LineHeight && x >= l.X && x < l.X+l.Width() {
			return l.URL, true
		}
	}
	return "", false
}

// AnchorTarget turns an in-page URL such as "#projects" into its section.
func AnchorTarget(url string) (Section, bool) {
	if !strings.HasPrefix(url, "#") {
		return "", false
	}
	s := Section(strings.TrimPrefix(url, "#"))
	for _, known := range sectionOrder {
		if s == known {
			return s, true
		}
	}
	return "", false
}
