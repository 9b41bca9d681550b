package core

// Input tracks key, button and pointer state as events pass through it.
type Input struct {
	keys           [KeyCount]bool
	buttons        [ButtonCount]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{} }

// Filter records ev and reports whether it should be dispatched to the
// states. Presses of a key already down (auto-repeat) and of unknown keys
// are dropped; releases always go through.
func (in *Input) Filter(ev InputEvent) bool {
	switch e := ev.(type) {
	case EventKey:
		if e.Down {
			if !e.Key.Valid() || in.keys[e.Key] {
				return false
			}
			in.keys[e.Key] = true
			return true
		}
		if e.Key.Valid() {
			in.keys[e.Key] = false
		}
	case EventMouseButton:
		if e.Button >= 0 && e.Button < ButtonCount {
			in.buttons[e.Button] = e.Down
		}
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseWheel:
		in.mouseX, in.mouseY = e.X, e.Y
	}
	return true
}

// Reset forgets every held key and button.
func (in *Input) Reset() {
	in.keys = [KeyCount]bool{}
	in.buttons = [ButtonCount]bool{}
}

func (in *Input) IsKeyDown(k Key) bool {
	return k.Valid() && in.keys[k]
}

func (in *Input) IsButtonDown(b MouseButton) bool {
	return b >= 0 && b < ButtonCount && in.buttons[b]
}

func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
