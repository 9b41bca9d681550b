package core

import (
	"fmt"
	"runtime"

	"github.com/hubastard/californium/engine/assets"
	"github.com/hubastard/californium/engine/profiler"
)

// Run wires the platform window + renderer, enters initial and executes
// the main loop until the window closes.
func Run(initial State, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error), opts ...Option) error {
	if initial == nil {
		return ErrNoState
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	profiler.Init(cfg.ProfileCapacity)

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	// window owns the context; renderer shuts down first
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	win.SetFramerateLimit(cfg.Framerate)
	win.SetVSync(cfg.VSync)
	if cfg.Icon != "" {
		icons, err := assets.LoadIconSet(cfg.Icon)
		if err != nil {
			return fmt.Errorf("load icon: %w", err)
		}
		win.SetIcon(icons)
	}

	g := NewGame(cfg, win, rend, opts...)
	g.Resize(win.FramebufferSize())
	g.logger.Printf("start %dx%d, step %.4fs", g.width, g.height, g.timestep)

	g.SetState(initial)
	g.Run()
	return nil
}
