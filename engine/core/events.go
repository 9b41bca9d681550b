package core

// Event model. Backends translate their native notifications into these.
type Event interface{ isEvent() }

// InputEvent is an event routed through the state stack. The dispatcher
// stamps it with the receiving state's view before offering it.
type InputEvent interface {
	Event
	WithView(v View) InputEvent
}

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   float64
	View   View
}

func (EventMouseButton) isEvent() {}

func (e EventMouseButton) WithView(v View) InputEvent { e.View = v; return e }

// WorldPos maps the pointer position through the stamped view.
func (e EventMouseButton) WorldPos() (float32, float32) { return e.View.MapPixel(e.X, e.Y) }

type EventMouseWheel struct {
	Delta float64
	X, Y  float64
	View  View
}

func (EventMouseWheel) isEvent() {}

func (e EventMouseWheel) WithView(v View) InputEvent { e.View = v; return e }

func (e EventMouseWheel) WorldPos() (float32, float32) { return e.View.MapPixel(e.X, e.Y) }

type EventMouseMove struct {
	X, Y float64
	View View
}

func (EventMouseMove) isEvent() {}

func (e EventMouseMove) WithView(v View) InputEvent { e.View = v; return e }

func (e EventMouseMove) WorldPos() (float32, float32) { return e.View.MapPixel(e.X, e.Y) }

type EventText struct {
	Rune rune
	View View
}

func (EventText) isEvent() {}

func (e EventText) WithView(v View) InputEvent { e.View = v; return e }

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
	View View
}

func (EventKey) isEvent() {}

func (e EventKey) WithView(v View) InputEvent { e.View = v; return e }
