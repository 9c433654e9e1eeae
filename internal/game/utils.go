package game

import "image/color"

var (
	colorAccent     = color.NRGBA{R: 16, G: 185, B: 129, A: 255}  // emerald 500
	colorAccentSoft = color.NRGBA{R: 110, G: 231, B: 183, A: 255} // emerald 300
	colorPanel      = color.NRGBA{R: 15, G: 23, B: 42, A: 255}    // slate 900
	colorBorder     = color.NRGBA{R: 30, G: 41, B: 59, A: 255}    // slate 800
	colorTag        = color.NRGBA{R: 51, G: 65, B: 85, A: 255}    // slate 700
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// withAlpha returns c with its alpha replaced by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a) * 255)
	return c
}
