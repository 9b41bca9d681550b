package core

import (
	"image"
	"time"

	"github.com/hubastard/californium/engine/colors"
)

// Window abstraction. Implementations deliver events synchronously from
// PollEvents through the callback registered with SetEventCallback.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	SetIcon(images []image.Image)
	SetFramerateLimit(fps int)
	SetVSync(on bool)
	Destroy()
}

// RenderTarget is what states draw into. Coordinates are target pixels,
// top-left origin.
type RenderTarget interface {
	Size() (int, int)
	FillRect(x, y, w, h float32, c colors.Color)
}

// Renderer abstraction (minimal for now; grows with engine).
type Renderer interface {
	RenderTarget
	Resize(w, h int)
	Clear(c colors.Color)
	Shutdown()
}

// Clock is the wall-clock source the frame loop measures against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameLimiter spaces presents at least 1/fps apart. Backends call Wait
// right after presenting.
type FrameLimiter struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// SetLimit sets the cap in frames per second; 0 disables it.
func (l *FrameLimiter) SetLimit(fps int) {
	if fps <= 0 {
		l.interval = 0
		return
	}
	l.interval = time.Second / time.Duration(fps)
}

func (l *FrameLimiter) Wait() {
	if l.now == nil {
		l.now = time.Now
	}
	if l.sleep == nil {
		l.sleep = time.Sleep
	}
	now := l.now()
	if l.interval > 0 && !l.last.IsZero() {
		if remaining := l.interval - now.Sub(l.last); remaining > 0 {
			l.sleep(remaining)
			now = now.Add(remaining)
		}
	}
	l.last = now
}
