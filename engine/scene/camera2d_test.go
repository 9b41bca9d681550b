package scene

import (
	"math"
	"testing"

	"github.com/hubastard/californium/engine/core"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-3 }

func TestViewMapsPixelsYUp(t *testing.T) {
	cam := NewOrtho2D(800, 600)

	tests := []struct {
		px, py float64
		wx, wy float32
	}{
		{400, 300, 0, 0},      // center
		{0, 0, -400, 300},     // top-left
		{800, 600, 400, -300}, // bottom-right
	}
	for _, tt := range tests {
		x, y := cam.View().MapPixel(tt.px, tt.py)
		if !near(x, tt.wx) || !near(y, tt.wy) {
			t.Errorf("MapPixel(%v,%v) = (%v,%v), want (%v,%v)", tt.px, tt.py, x, y, tt.wx, tt.wy)
		}
	}
}

func TestViewFollowsPositionAndZoom(t *testing.T) {
	cam := NewOrtho2D(800, 600)
	cam.SetPosition(100, 50)
	cam.SetZoom(2)

	x, y := cam.View().MapPixel(0, 0)
	if !near(x, 100-200) || !near(y, 50+150) {
		t.Errorf("top-left = (%v,%v)", x, y)
	}

	px, py := cam.WorldToPixel(x, y)
	if !near(px, 0) || !near(py, 0) {
		t.Errorf("round trip = (%v,%v)", px, py)
	}
}

func TestSetViewportPixelsResizes(t *testing.T) {
	cam := NewOrtho2D(800, 600)
	cam.SetViewportPixels(200, 100)
	v := cam.View()
	if v.ViewportW != 200 || v.ViewportH != 100 || !near(v.Width, 200) || !near(v.Height, -100) {
		t.Errorf("view after resize = %+v", v)
	}
}

func TestZoomClamped(t *testing.T) {
	cam := NewOrtho2D(10, 10)
	cam.SetZoom(0)
	if cam.Zoom != 0.05 {
		t.Errorf("zoom = %v, want 0.05", cam.Zoom)
	}
}

func TestControllerWheelZoom(t *testing.T) {
	cam := NewOrtho2D(100, 100)
	cc := NewOrthoController2D(cam)

	if !cc.HandleEvent(core.EventMouseWheel{Delta: 1}) {
		t.Fatal("wheel up not consumed")
	}
	if !near(cam.Zoom, 1.2) {
		t.Errorf("zoom after wheel up = %v", cam.Zoom)
	}
	cc.HandleEvent(core.EventMouseWheel{Delta: -1})
	if !near(cam.Zoom, 1) {
		t.Errorf("zoom after wheel down = %v", cam.Zoom)
	}
	if cc.HandleEvent(core.EventKey{Key: core.KeyW, Down: true}) {
		t.Error("key event consumed by controller")
	}
}

func TestControllerMovesWithHeldKeys(t *testing.T) {
	cam := NewOrtho2D(100, 100)
	cc := NewOrthoController2D(cam)
	in := core.NewInput()
	in.Filter(core.EventKey{Key: core.KeyD, Down: true})
	in.Filter(core.EventKey{Key: core.KeyW, Down: true})

	cc.Update(in, 0.5)
	if !near(cam.X, 120) || !near(cam.Y, 120) {
		t.Errorf("camera at (%v,%v), want (120,120)", cam.X, cam.Y)
	}
}
