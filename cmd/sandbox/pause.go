package main

import (
	"github.com/hubastard/californium/engine/colors"
	"github.com/hubastard/californium/engine/core"
)

// PauseState dims the scene below it and swallows all input. Escape
// resumes, Q goes back to the menu.
type PauseState struct {
	core.StateBase
	app *App
}

func NewPauseState(app *App) *PauseState {
	return &PauseState{app: app}
}

func (p *PauseState) Draw(t core.RenderTarget) {
	w, h := t.Size()
	fw, fh := float32(w), float32(h)
	t.FillRect(0, 0, fw, fh, colors.Black.WithAlpha(0.6))

	bw, bh := fw*0.03, fh*0.2
	t.FillRect(fw*0.5-bw*2, fh*0.4, bw, bh, colors.White)
	t.FillRect(fw*0.5+bw, fh*0.4, bw, bh, colors.White)
}

func (p *PauseState) ProcessEvent(ev core.InputEvent) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down {
		switch k.Key {
		case core.KeyEscape:
			p.app.game.PopState()
		case core.KeyQ:
			p.app.game.SetState(NewMenuState(p.app))
		}
	}
	return true
}
