package scene

import "github.com/hubastard/californium/engine/core"

// OrthoController2D: WASD/arrows move, Q/E rotate, mouse wheel zooms.
type OrthoController2D struct {
	MoveSpeed float32 // world units per second at zoom 1
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // factor per wheel notch
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed: 240,
		RotSpeed:  2.0,
		ZoomSpeed: 1.2,
		Camera:    cam,
	}
}

// Update applies held keys for one step of dt seconds.
func (cc *OrthoController2D) Update(in *core.Input, dt float32) {
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom
	rot := cc.RotSpeed * dt

	if in.IsKeyDown(core.KeyW) || in.IsKeyDown(core.KeyUp) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyS) || in.IsKeyDown(core.KeyDown) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyA) || in.IsKeyDown(core.KeyLeft) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) || in.IsKeyDown(core.KeyRight) {
		cc.Camera.Move(speed, 0)
	}
	if in.IsKeyDown(core.KeyQ) {
		cc.Camera.Rotate(rot)
	}
	if in.IsKeyDown(core.KeyE) {
		cc.Camera.Rotate(-rot)
	}
}

// HandleEvent zooms on wheel events and reports them consumed.
func (cc *OrthoController2D) HandleEvent(ev core.InputEvent) bool {
	wheel, ok := ev.(core.EventMouseWheel)
	if !ok || wheel.Delta == 0 {
		return false
	}
	if wheel.Delta > 0 {
		cc.Camera.SetZoom(cc.Camera.Zoom * cc.ZoomSpeed)
	} else {
		cc.Camera.SetZoom(cc.Camera.Zoom / cc.ZoomSpeed)
	}
	return true
}
