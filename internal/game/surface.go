package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface draws field primitives onto the screen image handed to Draw.
// Outside Draw it has no target and drops everything.
type screenSurface struct {
	target *ebiten.Image
}

func (s *screenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *screenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *screenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), c, true)
}
