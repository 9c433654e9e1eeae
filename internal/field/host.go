package field

import "image/color"

// Surface is the raster the field paints onto every frame.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

// Viewport reports the drawing area size and notifies about resizes.
type Viewport interface {
	Size() (w, h int)
	// OnResize registers fn and returns a function that removes it.
	OnResize(fn func(w, h int)) (cancel func())
}

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler runs callbacks on the host's display refresh.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}
