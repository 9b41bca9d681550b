package core

import (
	"errors"
	"testing"
	"time"
)

func fakeFactories(win *fakeWindow, rend *fakeRenderer) (func(Config) (Window, error), func(Window, Config) (Renderer, error)) {
	return func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil }
}

func TestRunDrivesUntilClose(t *testing.T) {
	rec := &recorder{}
	win := &fakeWindow{w: 300, h: 200, closeAfterSwaps: 3}
	rend := &fakeRenderer{}
	newWin, newRend := fakeFactories(win, rend)

	cfg := testConfig()
	cfg.Framerate = 30
	cfg.VSync = false
	s := newFake(rec, "s", 0)

	err := Run(s, cfg, newWin, newRend,
		WithLogger(discardLogger()),
		WithClock(&stepClock{t: time.Unix(0, 0), step: 10 * time.Millisecond}))
	if err != nil {
		t.Fatal(err)
	}

	if s.draws != 3 || win.swaps != 3 {
		t.Errorf("draws %d, swaps %d, want 3", s.draws, win.swaps)
	}
	if v := s.Camera().View(); v.ViewportW != 300 || v.ViewportH != 200 {
		t.Errorf("camera sized %dx%d, want framebuffer 300x200", v.ViewportW, v.ViewportH)
	}
	if rend.w != 300 || rend.h != 200 {
		t.Errorf("renderer sized %dx%d", rend.w, rend.h)
	}
	if win.fps != 30 || win.vsync {
		t.Errorf("fps %d vsync %v", win.fps, win.vsync)
	}
	if !win.destroyed || !rend.shutdown {
		t.Error("window or renderer not released")
	}
	if rec.calls[0] != "camera s 300x200" || rec.calls[1] != "enter s" {
		t.Errorf("startup calls %v", rec.calls[:2])
	}
}

func TestRunErrors(t *testing.T) {
	win := &fakeWindow{w: 10, h: 10}
	rend := &fakeRenderer{}
	newWin, newRend := fakeFactories(win, rend)
	s := newFake(&recorder{}, "s", 0)

	if err := Run(nil, testConfig(), newWin, newRend); !errors.Is(err, ErrNoState) {
		t.Errorf("nil state: %v", err)
	}

	bad := testConfig()
	bad.Width = 0
	if err := Run(s, bad, newWin, newRend); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("bad config: %v", err)
	}

	boom := errors.New("boom")
	failWin := func(Config) (Window, error) { return nil, boom }
	if err := Run(s, testConfig(), failWin, newRend); !errors.Is(err, boom) {
		t.Errorf("window failure: %v", err)
	}

	failRend := func(Window, Config) (Renderer, error) { return nil, boom }
	if err := Run(s, testConfig(), newWin, failRend); !errors.Is(err, boom) {
		t.Errorf("renderer failure: %v", err)
	}
	if !win.destroyed {
		t.Error("window leaked after renderer failure")
	}
}

func TestRunMissingIcon(t *testing.T) {
	win := &fakeWindow{w: 10, h: 10}
	rend := &fakeRenderer{}
	newWin, newRend := fakeFactories(win, rend)

	cfg := testConfig()
	cfg.Icon = "does-not-exist.png"
	err := Run(newFake(&recorder{}, "s", 0), cfg, newWin, newRend)
	if err == nil {
		t.Fatal("missing icon accepted")
	}
	if !win.destroyed || !rend.shutdown {
		t.Error("resources not released after icon failure")
	}
	if win.icons != nil {
		t.Error("icons set despite failure")
	}
}
