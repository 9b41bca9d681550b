package platform

import (
	"fmt"
	"image"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/californium/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the game via a
// handler while PollEvents runs.
type GLFWWindow struct {
	w       *glfw.Window
	onEv    func(core.Event)
	limiter core.FrameLimiter
}

var _ core.Window = (*GLFWWindow)(nil)

// NewWindow matches the factory signature core.Run expects.
func NewWindow(cfg core.Config) (core.Window, error) {
	return NewGLFWWindow(cfg)
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(w *glfw.Window) {
		// the game decides; Exit() sets the flag again
		w.SetShouldClose(false)
		gw.emit(core.EventCloseRequested{})
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		gw.emit(core.EventMouseButton{Button: btn, Down: action == glfw.Press, X: x, Y: y})
	})
	win.SetScrollCallback(func(w *glfw.Window, _, yoff float64) {
		x, y := w.GetCursorPos()
		gw.emit(core.EventMouseWheel{Delta: yoff, X: x, Y: y})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventText{Rune: r})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		// Repeat arrives as a press; core drops presses of held keys.
		gw.emit(core.EventKey{Key: translateKey(key), Down: action != glfw.Release, Mods: translateMods(mods)})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents() { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers() {
	g.w.SwapBuffers()
	g.limiter.Wait()
}
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }
func (g *GLFWWindow) SetIcon(images []image.Image)         { g.w.SetIcon(images) }
func (g *GLFWWindow) SetFramerateLimit(fps int)            { g.limiter.SetLimit(fps) }

func (g *GLFWWindow) SetVSync(on bool) {
	if on {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) core.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.KeyA + core.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.Key0 + core.Key(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return core.KeyF1 + core.Key(k-glfw.KeyF1)
	}
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return core.KeyEnter
	case glfw.KeyTab:
		return core.KeyTab
	case glfw.KeyBackspace:
		return core.KeyBackspace
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyInsert:
		return core.KeyInsert
	case glfw.KeyDelete:
		return core.KeyDelete
	case glfw.KeyHome:
		return core.KeyHome
	case glfw.KeyEnd:
		return core.KeyEnd
	case glfw.KeyPageUp:
		return core.KeyPageUp
	case glfw.KeyPageDown:
		return core.KeyPageDown
	case glfw.KeyLeftShift:
		return core.KeyLeftShift
	case glfw.KeyRightShift:
		return core.KeyRightShift
	case glfw.KeyLeftControl:
		return core.KeyLeftCtrl
	case glfw.KeyRightControl:
		return core.KeyRightCtrl
	case glfw.KeyLeftAlt:
		return core.KeyLeftAlt
	case glfw.KeyRightAlt:
		return core.KeyRightAlt
	default:
		return core.KeyUnknown
	}
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.ButtonLeft, true
	case glfw.MouseButtonRight:
		return core.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return core.ButtonMiddle, true
	}
	return 0, false
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
