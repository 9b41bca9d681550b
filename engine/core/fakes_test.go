package core

import (
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"github.com/hubastard/californium/engine/colors"
)

// recorder collects hook calls across states in order.
type recorder struct{ calls []string }

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() { r.calls = nil }

type fakeState struct {
	StateBase
	name    string
	rec     *recorder
	consume bool

	updates, draws, camInits int
	events                   []InputEvent
	onUpdate                 func()
	onEvent                  func(InputEvent) bool
}

func newFake(rec *recorder, name string, mode InactiveMode) *fakeState {
	return &fakeState{name: name, rec: rec, StateBase: StateBase{Mode: mode}}
}

func (s *fakeState) Enter() { s.rec.add("enter %s", s.name) }
func (s *fakeState) Leave() { s.rec.add("leave %s", s.name) }

func (s *fakeState) Update() {
	s.updates++
	s.rec.add("update %s", s.name)
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

func (s *fakeState) Draw(RenderTarget) {
	s.draws++
	s.rec.add("draw %s", s.name)
}

func (s *fakeState) ProcessEvent(ev InputEvent) bool {
	s.events = append(s.events, ev)
	s.rec.add("event %s", s.name)
	if s.onEvent != nil {
		return s.onEvent(ev)
	}
	return s.consume
}

func (s *fakeState) InitializeCamera(w, h int) {
	s.camInits++
	s.rec.add("camera %s %dx%d", s.name, w, h)
	s.StateBase.InitializeCamera(w, h)
}

type fakeWindow struct {
	closing bool
	cb      func(Event)
	queue   []Event
	polls   int
	swaps   int
	w, h    int

	closeAfterSwaps int

	fps       int
	vsync     bool
	icons     []image.Image
	destroyed bool
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	q := w.queue
	w.queue = nil
	for _, ev := range q {
		w.cb(ev)
	}
}

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	if w.closeAfterSwaps > 0 && w.swaps >= w.closeAfterSwaps {
		w.closing = true
	}
}

func (w *fakeWindow) ShouldClose() bool               { return w.closing }
func (w *fakeWindow) RequestClose()                   { w.closing = true }
func (w *fakeWindow) FramebufferSize() (int, int)     { return w.w, w.h }
func (w *fakeWindow) SetTitle(string)                 {}
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }
func (w *fakeWindow) SetIcon(images []image.Image)    { w.icons = images }
func (w *fakeWindow) SetFramerateLimit(fps int)       { w.fps = fps }
func (w *fakeWindow) SetVSync(on bool)                { w.vsync = on }
func (w *fakeWindow) Destroy()                        { w.destroyed = true }

type fakeRenderer struct {
	rec      *recorder
	w, h     int
	clears   []colors.Color
	shutdown bool
}

func (r *fakeRenderer) Size() (int, int) { return r.w, r.h }
func (r *fakeRenderer) Resize(w, h int)  { r.w, r.h = w, h }
func (r *fakeRenderer) Shutdown()        { r.shutdown = true }

func (r *fakeRenderer) FillRect(x, y, w, h float32, c colors.Color) {}

func (r *fakeRenderer) Clear(c colors.Color) {
	r.clears = append(r.clears, c)
	if r.rec != nil {
		r.rec.add("clear")
	}
}

// stepClock advances by a fixed amount on every read.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestGame(rec *recorder, cfg Config) (*Game, *fakeWindow, *fakeRenderer) {
	win := &fakeWindow{w: cfg.Width, h: cfg.Height}
	rend := &fakeRenderer{rec: rec}
	g := NewGame(cfg, win, rend, WithLogger(discardLogger()))
	return g, win, rend
}

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }
