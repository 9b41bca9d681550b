// Package term runs the engine inside a terminal. One cell is one pixel:
// FillRect paints cell backgrounds, Clear repaints the whole grid.
package term

import (
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/californium/engine/colors"
	"github.com/hubastard/californium/engine/core"
)

// Window is both the core.Window and the core.Renderer of the terminal
// backend.
type Window struct {
	screen  tcell.Screen
	events  chan tcell.Event
	done    chan struct{} // closed by Destroy
	stopped chan struct{} // closed when the reader goroutine returns
	destroy sync.Once
	onEv    func(core.Event)
	limiter core.FrameLimiter
	closing bool

	buttons tcell.ButtonMask
	mx, my  int

	w, h  int
	cells []colors.Color
}

var (
	_ core.Window   = (*Window)(nil)
	_ core.Renderer = (*Window)(nil)
)

// NewWindow opens the controlling terminal.
func NewWindow(cfg core.Config) (core.Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWindowWithScreen(screen, cfg)
}

// NewRenderer returns the window itself; the terminal draws what it shows.
func NewRenderer(win core.Window, _ core.Config) (core.Renderer, error) {
	w, ok := win.(*Window)
	if !ok {
		return nil, fmt.Errorf("term: renderer needs a term window, got %T", win)
	}
	return w, nil
}

// NewWindowWithScreen takes ownership of an uninitialised screen.
func NewWindowWithScreen(screen tcell.Screen, cfg core.Config) (*Window, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetTitle(cfg.Title)

	w := &Window{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	w.Resize(screen.Size())

	go func() {
		defer close(w.stopped)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(w.events)
				return
			}
			select {
			case w.events <- ev:
			case <-w.done:
				return
			}
		}
	}()
	return w, nil
}

// PollEvents drains what the reader goroutine has queued without blocking.
func (w *Window) PollEvents() {
	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				w.closing = true
				return
			}
			for _, out := range w.translate(ev) {
				w.emit(out)
			}
		default:
			return
		}
	}
}

func (w *Window) emit(ev core.Event) {
	if w.onEv != nil {
		w.onEv(ev)
	}
}

func (w *Window) SwapBuffers() {
	w.screen.Show()
	w.limiter.Wait()
}

func (w *Window) ShouldClose() bool                    { return w.closing }
func (w *Window) RequestClose()                        { w.closing = true }
func (w *Window) FramebufferSize() (int, int)          { return w.screen.Size() }
func (w *Window) SetTitle(t string)                    { w.screen.SetTitle(t) }
func (w *Window) SetEventCallback(cb func(core.Event)) { w.onEv = cb }
func (w *Window) SetIcon([]image.Image)                {}
func (w *Window) SetFramerateLimit(fps int)            { w.limiter.SetLimit(fps) }
func (w *Window) SetVSync(bool)                        {}

// Destroy restores the terminal and stops the reader, even when the
// queue is full because the loop stopped draining it.
func (w *Window) Destroy() {
	w.destroy.Do(func() {
		close(w.done)
		w.screen.Fini()
	})
}

// ---- core.Renderer ----

func (w *Window) Size() (int, int) { return w.w, w.h }

func (w *Window) Resize(width, height int) {
	w.w, w.h = width, height
	if n := width * height; cap(w.cells) >= n {
		w.cells = w.cells[:n]
	} else {
		w.cells = make([]colors.Color, n)
	}
}

func (w *Window) Clear(c colors.Color) {
	for i := range w.cells {
		w.cells[i] = c
	}
	w.screen.Clear()
	w.paint(0, 0, w.w, w.h)
}

// FillRect blends c over the covered cells.
func (w *Window) FillRect(x, y, width, height float32, c colors.Color) {
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x+width), w.w), min(int(y+height), w.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			i := cy*w.w + cx
			w.cells[i] = c.Blend(w.cells[i])
		}
	}
	w.paint(x0, y0, x1, y1)
}

// CellColor is the color last painted at (x, y).
func (w *Window) CellColor(x, y int) colors.Color { return w.cells[y*w.w+x] }

func (w *Window) paint(x0, y0, x1, y1 int) {
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			w.screen.SetContent(cx, cy, ' ', nil, cellStyle(w.cells[cy*w.w+cx]))
		}
	}
}

func cellStyle(c colors.Color) tcell.Style {
	r, g, b, _ := c.RGBA8()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}
