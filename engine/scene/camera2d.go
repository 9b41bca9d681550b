package scene

import "github.com/hubastard/californium/engine/core"

// OrthoCamera2D provides an orthographic camera with position, rotation,
// zoom. World y points up; the view it hands to core flips accordingly.
type OrthoCamera2D struct {
	Left, Right, Bottom, Top float32
	X, Y                     float32
	RotationRad              float32
	Zoom                     float32 // 1 = no zoom

	vpW, vpH int
}

var _ core.Camera = (*OrthoCamera2D)(nil)

func NewOrtho2D(width, height int) *OrthoCamera2D {
	c := &OrthoCamera2D{Zoom: 1}
	c.SetViewportPixels(width, height)
	return c
}

// SetViewportPixels keeps one world unit per pixel at zoom 1.
func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	halfW := float32(w) * 0.5
	halfH := float32(h) * 0.5
	c.Left, c.Right = -halfW, halfW
	c.Bottom, c.Top = -halfH, halfH
	c.vpW, c.vpH = w, h
}

func (c *OrthoCamera2D) Move(dx, dy float32)     { c.X += dx; c.Y += dy }
func (c *OrthoCamera2D) Rotate(dRad float32)      { c.RotationRad += dRad }
func (c *OrthoCamera2D) SetPosition(x, y float32) { c.X, c.Y = x, y }
func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
}

func (c *OrthoCamera2D) Width() float32  { return (c.Right - c.Left) / c.Zoom }
func (c *OrthoCamera2D) Height() float32 { return (c.Top - c.Bottom) / c.Zoom }

// View maps viewport pixels (y down) onto the camera's world rectangle.
func (c *OrthoCamera2D) View() core.View {
	return core.View{
		CenterX:   c.X + (c.Left+c.Right)*0.5/c.Zoom,
		CenterY:   c.Y + (c.Bottom+c.Top)*0.5/c.Zoom,
		Width:     c.Width(),
		Height:    -c.Height(),
		Rotation:  c.RotationRad,
		ViewportW: c.vpW,
		ViewportH: c.vpH,
	}
}

// WorldToPixel is the inverse of View().MapPixel for an unrotated camera.
func (c *OrthoCamera2D) WorldToPixel(x, y float32) (float32, float32) {
	v := c.View()
	px := ((x-v.CenterX)/v.Width + 0.5) * float32(v.ViewportW)
	py := ((y-v.CenterY)/v.Height + 0.5) * float32(v.ViewportH)
	return px, py
}
