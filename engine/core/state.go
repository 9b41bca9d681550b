package core

import (
	"strings"

	"github.com/hubastard/californium/engine/colors"
)

// InactiveMode says what a state keeps doing while it is not the top of
// the stack. The zero value pauses and hides it.
type InactiveMode uint8

const (
	InactiveUpdate InactiveMode = 1 << iota
	InactiveDraw

	InactiveNone InactiveMode = 0
	InactiveAll               = InactiveUpdate | InactiveDraw
)

func (m InactiveMode) Has(f InactiveMode) bool { return m&f == f && f != 0 }

func (m InactiveMode) String() string {
	if m == InactiveNone {
		return "none"
	}
	var parts []string
	if m.Has(InactiveUpdate) {
		parts = append(parts, "update")
	}
	if m.Has(InactiveDraw) {
		parts = append(parts, "draw")
	}
	return strings.Join(parts, "|")
}

// State is one mode of the application held on the stack. Concrete
// states must be pointer types; the stack compares them by identity.
type State interface {
	Enter()                          // pushed onto the stack
	Leave()                          // popped, or stack replaced
	Update()                         // one fixed timestep
	Draw(t RenderTarget)             // once per rendered frame
	ProcessEvent(ev InputEvent) bool // return true if handled; propagation stops
	InitializeCamera(w, h int)       // logical size changed
	InactiveMode() InactiveMode
	ClearColor() colors.Color
	Camera() Camera
}

// StateBase supplies do-nothing hooks and field-backed properties.
// Embed it and override what the state needs.
type StateBase struct {
	Mode  InactiveMode
	Clear colors.Color
	Cam   Camera
}

func (b *StateBase) Enter()                       {}
func (b *StateBase) Leave()                       {}
func (b *StateBase) Update()                      {}
func (b *StateBase) Draw(RenderTarget)            {}
func (b *StateBase) ProcessEvent(InputEvent) bool { return false }

func (b *StateBase) InitializeCamera(w, h int) {
	b.Camera().SetViewportPixels(w, h)
}

func (b *StateBase) InactiveMode() InactiveMode { return b.Mode }
func (b *StateBase) ClearColor() colors.Color   { return b.Clear }

func (b *StateBase) Camera() Camera {
	if b.Cam == nil {
		b.Cam = &PixelCamera{}
	}
	return b.Cam
}
