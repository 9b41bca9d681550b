package core

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/hubastard/californium/engine/colors"
	"github.com/hubastard/californium/engine/profiler"
)

// Game owns the state stack and drives it: fixed-step updates, layered
// draws, input routing and resize. Everything runs on the loop goroutine.
type Game struct {
	Window   Window
	Renderer Renderer

	cfg    Config
	clock  Clock
	logger *log.Logger
	timer  *Timer
	input  Input
	stack  StateStack

	width, height int
	timestep      float64
	accumulator   float64
}

type Option func(*Game)

// WithClock replaces the wall clock the loop measures frames with.
func WithClock(c Clock) Option { return func(g *Game) { g.clock = c } }

func WithLogger(l *log.Logger) Option { return func(g *Game) { g.logger = l } }

// NewGame binds a game to a window and renderer and starts listening to
// the window's events.
func NewGame(cfg Config, win Window, rend Renderer, opts ...Option) *Game {
	g := &Game{
		Window:   win,
		Renderer: rend,
		cfg:      cfg,
		clock:    SystemClock{},
		logger:   log.New(os.Stderr, "[californium] ", log.LstdFlags),
		timer:    NewTimer(cfg.Step()),
		width:    cfg.Width,
		height:   cfg.Height,
		timestep: cfg.Timestep,
	}
	if g.timestep <= 0 {
		g.timestep = 1.0 / 60
		g.timer = NewTimer(time.Second / 60)
	}
	for _, o := range opts {
		o(g)
	}
	win.SetEventCallback(g.HandleEvent)
	return g
}

func (g *Game) Config() Config      { return g.cfg }
func (g *Game) Timer() *Timer       { return g.timer }
func (g *Game) Input() *Input       { return &g.input }
func (g *Game) Logger() *log.Logger { return g.logger }
func (g *Game) Size() (int, int)    { return g.width, g.height }

// Stack gives read access to the states; mutate through the Game.
func (g *Game) Stack() *StateStack { return &g.stack }

// DefaultView is a 1:1 view over the current logical size.
func (g *Game) DefaultView() View { return NewPixelCamera(g.width, g.height).View() }

// Alpha is how far the loop is between the last step and the next, in
// [0, 1), for states that interpolate while drawing.
func (g *Game) Alpha() float64 { return g.accumulator / g.timestep }

// Accumulator is the simulation time owed, in seconds.
func (g *Game) Accumulator() float64 { return g.accumulator }

// ---- stack controller ----

// SetState replaces the whole stack with s.
func (g *Game) SetState(s State) {
	g.tracef("set %s (leaving %d)", stateName(s), g.stack.Len())
	s.InitializeCamera(g.width, g.height)
	g.stack.SetState(s)
}

// PushState makes s the top. Its camera is sized before Enter runs.
func (g *Game) PushState(s State) {
	g.tracef("push %s", stateName(s))
	s.InitializeCamera(g.width, g.height)
	g.stack.PushState(s)
}

func (g *Game) PopState() {
	if s, ok := g.stack.PopState(); ok {
		g.tracef("pop %s", stateName(s))
	}
}

func (g *Game) PeekState() State      { return g.stack.PeekState() }
func (g *Game) PeekFirstState() State { return g.stack.PeekFirstState() }
func (g *Game) IsActive(s State) bool { return g.stack.IsActive(s) }

// Exit asks the window to close. The loop ends once the running step
// completes. Returns true so handlers can use it as "consumed".
func (g *Game) Exit() bool {
	g.Window.RequestClose()
	return true
}

// ---- frame loop ----

// Run loops until the window closes: measure, step, draw, present.
func (g *Game) Run() {
	prev := g.clock.Now()
	for !g.Window.ShouldClose() {
		now := g.clock.Now()
		elapsed := now.Sub(prev).Seconds()
		prev = now

		endUpdate := profiler.Start("Game.Update")
		g.Frame(elapsed)
		endUpdate()

		if g.Window.ShouldClose() {
			break
		}

		endDraw := profiler.Start("Game.Draw")
		g.DrawFrame()
		endDraw()

		g.Window.SwapBuffers()
	}
	g.logger.Println("loop exit")
}

// Frame adds elapsed seconds to the accumulator and runs as many fixed
// steps as it covers, polling events before each. It returns the number
// of steps taken.
func (g *Game) Frame(elapsed float64) int {
	if elapsed > 0 {
		g.accumulator += elapsed
	}
	steps := 0
	for g.accumulator >= g.timestep {
		if g.cfg.MaxStepsPerFrame > 0 && steps >= g.cfg.MaxStepsPerFrame {
			g.accumulator = math.Mod(g.accumulator, g.timestep)
			break
		}
		g.Window.PollEvents()
		g.timer.Update()
		g.Step()
		g.accumulator -= g.timestep
		steps++
		if g.Window.ShouldClose() {
			break
		}
	}
	return steps
}

// Step updates the stack bottom to top: the top always, the others only
// if they keep updating while inactive.
func (g *Game) Step() {
	for i := 0; i < g.stack.Len(); i++ {
		s := g.stack.At(i)
		if i == g.stack.Len()-1 || s.InactiveMode().Has(InactiveUpdate) {
			s.Update()
		}
	}
}

// DrawFrame draws the stack bottom to top. The frame is cleared once,
// with the color of the lowest state that stays visible while inactive
// (or the top if none does), right before that state draws.
func (g *Game) DrawFrame() {
	clearAt := ClearIndex(&g.stack)
	for i := 0; i < g.stack.Len(); i++ {
		s := g.stack.At(i)
		if i == clearAt {
			g.Renderer.Clear(g.clearColor(s))
		}
		if i != g.stack.Len()-1 && !s.InactiveMode().Has(InactiveDraw) {
			continue
		}
		s.Draw(g.Renderer)
	}
}

// clearColor is the state's clear color, or the configured one when the
// state leaves it unset (the zero Color).
func (g *Game) clearColor(s State) colors.Color {
	if c := s.ClearColor(); c != (colors.Color{}) {
		return c
	}
	return g.cfg.ClearColor
}

// ClearIndex is the index of the first state from the bottom flagged
// InactiveDraw, or the top when none is. -1 on an empty stack.
func ClearIndex(ss *StateStack) int {
	for i := 0; i < ss.Len(); i++ {
		if ss.At(i).InactiveMode().Has(InactiveDraw) {
			return i
		}
	}
	return ss.Len() - 1
}

// ---- events ----

// HandleEvent is the window's event callback.
func (g *Game) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case EventCloseRequested:
		g.Exit()
	case EventResize:
		g.Resize(e.W, e.H)
	case InputEvent:
		if g.input.Filter(e) {
			g.DispatchEvent(e)
		}
	}
}

// DispatchEvent offers ev to the states top to bottom, each seeing it in
// its own camera's view, until one consumes it. Returns whether any did.
// States pushed by a handler first see the next event.
func (g *Game) DispatchEvent(ev InputEvent) bool {
	consumed := false
	g.stack.ForEachReverse(func(_ int, s State) bool {
		consumed = s.ProcessEvent(ev.WithView(s.Camera().View()))
		return consumed
	})
	return consumed
}

// Resize records the new logical size and has every state rebuild its
// camera. Degenerate sizes (minimized windows) are ignored.
func (g *Game) Resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	g.width, g.height = w, h
	g.Renderer.Resize(w, h)
	g.stack.ForEach(func(_ int, s State) {
		s.InitializeCamera(w, h)
	})
}

func (g *Game) tracef(format string, args ...any) {
	if g.cfg.Verbose {
		g.logger.Printf("state: "+format, args...)
	}
}

func stateName(s State) string { return fmt.Sprintf("%T", s) }
