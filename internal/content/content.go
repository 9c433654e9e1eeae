// Package content holds the static portfolio data shown over the backdrop.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var portfolioYAML []byte

// Portfolio is everything the page displays.
type Portfolio struct {
	Name          string       `yaml:"name"`
	Role          string       `yaml:"role"`
	Badge         string       `yaml:"badge"`
	Brand         string       `yaml:"brand"`
	Tagline       string       `yaml:"tagline"`
	IntroHeadline string       `yaml:"intro_headline"`
	About         []string     `yaml:"about"`
	Skills        []SkillGroup `yaml:"skills"`
	Projects      []Project    `yaml:"projects"`
	Contact       Contact      `yaml:"contact"`
	Social        Social       `yaml:"social"`
	Footer        string       `yaml:"footer"`
}

type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"`
	GitHub      string   `yaml:"github"`
}

// Links returns the project's distinct outbound URLs in display order.
func (p Project) Links() []string {
	var out []string
	for _, u := range []string{p.GitHub, p.Link} {
		if u == "" {
			continue
		}
		dup := false
		for _, seen := range out {
			if seen == u {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, u)
		}
	}
	return out
}

type Contact struct {
	Headline string `yaml:"headline"`
	Text     string `yaml:"text"`
}

type Social struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Email    string `yaml:"email"`
}

// Default returns the built-in portfolio.
func Default() (*Portfolio, error) {
	return Parse(portfolioYAML)
}

// Parse decodes a portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	p := &Portfolio{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing portfolio: %w", err)
	}
	return p, nil
}
