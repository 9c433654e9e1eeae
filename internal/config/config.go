// Package config loads window, animation and page settings.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/network-backdrop/internal/field"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the program.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Background BackgroundConfig `yaml:"background"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Links      LinksConfig      `yaml:"links"`
	Page       PageConfig       `yaml:"page"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
}

// BackgroundConfig is the opaque fill painted every frame.
type BackgroundConfig struct {
	Color string `yaml:"color"`
}

// ParticlesConfig controls how many particles exist and how they look.
type ParticlesConfig struct {
	DensityDivisor float64 `yaml:"density_divisor"` // one particle per N pixels of width
	MaxCount       int     `yaml:"max_count"`
	Speed          float64 `yaml:"speed"` // per-axis velocity bound
	MinRadius      float64 `yaml:"min_radius"`
	MaxRadius      float64 `yaml:"max_radius"`
	Color          string  `yaml:"color"`
}

// LinksConfig controls the lines between nearby particles.
type LinksConfig struct {
	Distance float64 `yaml:"distance"`
	Width    float64 `yaml:"width"`
	Color    string  `yaml:"color"`
}

// PageConfig tunes scrolling and the navbar.
type PageConfig struct {
	WheelStep       float64 `yaml:"wheel_step"` // pixels per wheel notch
	Smoothing       float64 `yaml:"smoothing"`  // fraction of remaining distance per tick
	NavbarThreshold float64 `yaml:"navbar_threshold"`
	NavbarHeight    int     `yaml:"navbar_height"`
}

// AudioConfig holds navigation chime settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// TelemetryConfig controls frame statistics output.
type TelemetryConfig struct {
	Dir    string `yaml:"dir"`    // empty disables CSV output
	Window int    `yaml:"window"` // frames per aggregated record
}

// Load reads the embedded defaults and, when path is set, overlays the
// user file on top. Only keys present in the file override defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps %d must be positive", c.Window.TPS))
	}
	if c.Particles.DensityDivisor <= 0 {
		errs = append(errs, errors.New("particles density_divisor must be positive"))
	}
	if c.Particles.MaxCount < 0 {
		errs = append(errs, errors.New("particles max_count must not be negative"))
	}
	if c.Particles.MinRadius < 0 || c.Particles.MaxRadius < c.Particles.MinRadius {
		errs = append(errs, fmt.Errorf("particle radius range [%v, %v] is invalid", c.Particles.MinRadius, c.Particles.MaxRadius))
	}
	if c.Links.Distance <= 0 {
		errs = append(errs, errors.New("links distance must be positive"))
	}
	if c.Page.Smoothing <= 0 || c.Page.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("page smoothing %v must be in (0, 1]", c.Page.Smoothing))
	}
	if c.Telemetry.Window <= 0 {
		errs = append(errs, errors.New("telemetry window must be positive"))
	}
	for name, s := range map[string]string{
		"background color": c.Background.Color,
		"particles color":  c.Particles.Color,
		"links color":      c.Links.Color,
	} {
		if _, err := ParseHexColor(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FieldParams converts the particle settings into field parameters.
// Colors are assumed valid; Load has already validated them.
func (c *Config) FieldParams() field.Params {
	bg, _ := ParseHexColor(c.Background.Color)
	pc, _ := ParseHexColor(c.Particles.Color)
	lc, _ := ParseHexColor(c.Links.Color)
	return field.Params{
		DensityDivisor: c.Particles.DensityDivisor,
		MaxCount:       c.Particles.MaxCount,
		Speed:          c.Particles.Speed,
		MinRadius:      c.Particles.MinRadius,
		MaxRadius:      c.Particles.MaxRadius,
		LinkDistance:   c.Links.Distance,
		LinkWidth:      c.Links.Width,
		Background:     bg,
		ParticleColor:  pc,
		LinkColor:      lc,
	}
}

// YAML encodes the configuration in the same shape Load reads.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
