package main

import (
	"time"

	"github.com/hubastard/californium/engine/colors"
	"github.com/hubastard/californium/engine/core"
)

// MenuState waits for Enter (or a click) to start. Escape quits.
type MenuState struct {
	core.StateBase
	app *App

	blink   *core.Timed
	visible bool
}

func NewMenuState(app *App) *MenuState {
	// Clear left unset: the menu uses the configured clear color.
	return &MenuState{app: app}
}

func (m *MenuState) Enter() {
	m.visible = true
	m.blink = m.app.game.Timer().Every(500*time.Millisecond, func() {
		m.visible = !m.visible
	})
}

func (m *MenuState) Leave() {
	if m.blink != nil {
		m.blink.Cancel()
		m.blink = nil
	}
}

func (m *MenuState) Draw(t core.RenderTarget) {
	w, h := t.Size()
	fw, fh := float32(w), float32(h)

	// title bar and the "press enter" prompt
	t.FillRect(fw*0.2, fh*0.25, fw*0.6, fh*0.12, colors.Cyan)
	if m.visible {
		t.FillRect(fw*0.35, fh*0.55, fw*0.3, fh*0.06, colors.White)
	}
}

func (m *MenuState) ProcessEvent(ev core.InputEvent) bool {
	switch e := ev.(type) {
	case core.EventKey:
		if !e.Down {
			return false
		}
		switch e.Key {
		case core.KeyEnter, core.KeySpace:
			m.app.game.SetState(NewPlayState(m.app))
			return true
		case core.KeyEscape:
			return m.app.game.Exit()
		}
	case core.EventMouseButton:
		if e.Down && e.Button == core.ButtonLeft {
			m.app.game.SetState(NewPlayState(m.app))
			return true
		}
	}
	return false
}
