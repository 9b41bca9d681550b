package core

import "math"

// View describes the world rectangle a camera shows and the pixel
// viewport it is shown in. A negative Height maps a y-up world.
type View struct {
	CenterX, CenterY float32
	Width, Height    float32
	Rotation         float32 // radians

	ViewportW, ViewportH int
}

// MapPixel converts a viewport pixel position into world coordinates.
// A view without a viewport maps pixels 1:1.
func (v View) MapPixel(px, py float64) (float32, float32) {
	if v.ViewportW <= 0 || v.ViewportH <= 0 {
		return float32(px), float32(py)
	}
	lx := (float32(px)/float32(v.ViewportW) - 0.5) * v.Width
	ly := (float32(py)/float32(v.ViewportH) - 0.5) * v.Height
	if v.Rotation != 0 {
		c := float32(math.Cos(float64(v.Rotation)))
		s := float32(math.Sin(float64(v.Rotation)))
		lx, ly = lx*c-ly*s, lx*s+ly*c
	}
	return v.CenterX + lx, v.CenterY + ly
}

// Camera produces the view used both for drawing and for mapping input
// delivered to its state.
type Camera interface {
	View() View
	SetViewportPixels(w, h int)
}

// PixelCamera shows the viewport 1:1 with a top-left origin.
type PixelCamera struct{ w, h int }

func NewPixelCamera(w, h int) *PixelCamera { return &PixelCamera{w: w, h: h} }

func (c *PixelCamera) SetViewportPixels(w, h int) { c.w, c.h = w, h }

func (c *PixelCamera) View() View {
	return View{
		CenterX: float32(c.w) * 0.5, CenterY: float32(c.h) * 0.5,
		Width: float32(c.w), Height: float32(c.h),
		ViewportW: c.w, ViewportH: c.h,
	}
}
