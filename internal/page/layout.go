package page

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/network-backdrop/internal/content"
)

// Glyph metrics of the debug font the overlay is printed with.
const (
	CharWidth  = 6
	LineHeight = 16
)

const (
	margin         = 24
	minColumns     = 20
	sectionPadding = 64
)

// Style tells the renderer how to paint a line.
type Style int

const (
	StyleText Style = iota
	StyleHeading
	StyleSubheading
	StyleMuted
	StyleTag
	StyleLink
	StyleAccent
)

// Line is one printed row of the page, in page coordinates.
type Line struct {
	Text    string
	X, Y    int
	Style   Style
	URL     string // "#section" for in-page anchors
	Section Section
}

// Width returns the rendered width in pixels.
func (l Line) Width() int { return len(l.Text) * CharWidth }

type builder struct {
	lines   []Line
	anchors map[Section]int
	width   int
	cols    int
	y       int
	section Section
	center  bool
}

func (b *builder) begin(s Section) {
	b.section = s
	b.anchors[s] = b.y
}

func (b *builder) gap(px int) { b.y += px }

func (b *builder) add(text string, style Style, url string) {
	x := margin
	if b.center {
		x = (b.width - len(text)*CharWidth) / 2
		if x < margin {
			x = margin
		}
	}
	b.lines = append(b.lines, Line{Text: text, X: x, Y: b.y, Style: style, URL: url, Section: b.section})
	b.y += LineHeight
}

func (b *builder) para(text string, style Style) {
	for _, l := range Wrap(text, b.cols) {
		b.add(l, style, "")
	}
}

// layout lays the portfolio out for a viewport of the given size.
func layout(p *content.Portfolio, width, height int) ([]Line, map[Section]int, int) {
	cols := (width - 2*margin) / CharWidth
	if cols < minColumns {
		cols = minColumns
	}
	b := &builder{anchors: map[Section]int{}, width: width, cols: cols}

	// hero fills the first screen with its block vertically centered
	b.begin(SectionHero)
	b.center = true
	heroLines := 9 + len(Wrap(p.IntroHeadline, cols)) + len(Wrap(p.Tagline, cols))
	if top := (height - heroLines*LineHeight) / 2; top > 0 {
		b.gap(top)
	}
	b.add(p.Badge, StyleAccent, "")
	b.gap(LineHeight)
	b.add(p.Name, StyleHeading, "")
	b.add(strings.Repeat("-", 16), StyleAccent, "")
	b.gap(LineHeight)
	b.para(p.Tagline, StyleText)
	b.para(p.IntroHeadline, StyleMuted)
	b.gap(LineHeight)
	b.add("> View Projects", StyleLink, "#"+string(SectionProjects))
	b.add("> Get in Touch", StyleLink, p.Social.Email)
	if b.y < height {
		b.y = height
	}
	b.center = false

	b.begin(SectionAbout)
	b.gap(sectionPadding)
	b.add("| About Me", StyleHeading, "")
	b.gap(LineHeight)
	for _, para := range p.About {
		b.para(para, StyleText)
		b.gap(LineHeight / 2)
	}
	b.gap(LineHeight)
	b.add("alvaro_analysis.py", StyleMuted, "")
	b.add("> loading_modules... Done", StyleAccent, "")
	b.add("> optimizing_life... In Progress", StyleAccent, "")
	b.add("> synthesizing_bio_data...", StyleAccent, "")
	b.add("Accuracy 98.2%   Epochs 200", StyleMuted, "")

	b.begin(SectionSkills)
	b.gap(sectionPadding)
	b.add("| Tech Stack & Domain", StyleHeading, "")
	b.gap(LineHeight)
	for _, g := range p.Skills {
		b.add(g.Category, StyleSubheading, "")
		b.para(strings.Join(g.Items, ", "), StyleText)
		b.gap(LineHeight / 2)
	}

	b.begin(SectionProjects)
	b.gap(sectionPadding)
	b.add("| Featured Projects", StyleHeading, "")
	b.gap(LineHeight)
	for _, pr := range p.Projects {
		links := pr.Links()
		titleURL := ""
		if len(links) > 0 {
			titleURL = links[0]
		}
		b.add(pr.Title, StyleSubheading, titleURL)
		b.para(pr.Description, StyleText)
		tags := make([]string, len(pr.Tags))
		for i, t := range pr.Tags {
			tags[i] = "[" + t + "]"
		}
		b.para(strings.Join(tags, " "), StyleTag)
		for _, u := range links {
			b.add("-> "+u, StyleLink, u)
		}
		b.gap(LineHeight)
	}

	b.begin(SectionContact)
	b.center = true
	b.gap(sectionPadding)
	b.add(p.Contact.Headline, StyleHeading, "")
	b.gap(LineHeight)
	b.para(p.Contact.Text, StyleMuted)
	b.gap(LineHeight)
	b.add(fmt.Sprintf("GitHub   %s", p.Social.GitHub), StyleLink, p.Social.GitHub)
	b.add(fmt.Sprintf("LinkedIn %s", p.Social.LinkedIn), StyleLink, p.Social.LinkedIn)
	b.add(fmt.Sprintf("Email    %s", strings.TrimPrefix(p.Social.Email, "mailto:")), StyleLink, p.Social.Email)

	b.begin(SectionFooter)
	b.gap(sectionPadding)
	b.add(p.Footer, StyleMuted, "")
	b.gap(sectionPadding)

	return b.lines, b.anchors, b.y
}

// Wrap breaks text into lines of at most cols characters on word
// boundaries. Words longer than cols are split.
func Wrap(text string, cols int) []string {
	if cols <= 0 {
		cols = 1
	}
	var out []string
	var cur strings.Builder
	for _, w := range strings.Fields(text) {
		for len(w) > cols {
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
			out = append(out, w[:cols])
			w = w[cols:]
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(w)
		case cur.Len()+1+len(w) <= cols:
			cur.WriteByte(' ')
			cur.WriteString(w)
		default:
			out = append(out, cur.String())
			cur.Reset()
			cur.WriteString(w)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
