package main

import (
	"log"
	"math"

	"github.com/hubastard/californium/engine/colors"
	"github.com/hubastard/californium/engine/core"
	"github.com/hubastard/californium/engine/profiler"
	"github.com/hubastard/californium/engine/scene"
)

type box struct {
	x, y  float32 // world, y up
	size  float32
	phase float64
	color colors.Color
}

// PlayState is a pannable scene of boxes. It stays drawn under the pause
// overlay.
type PlayState struct {
	core.StateBase
	app  *App
	cam  *scene.OrthoCamera2D
	ctrl *scene.OrthoController2D

	boxes []box
	t     float64
}

var palette = []colors.Color{colors.Red, colors.Green, colors.Blue, colors.Yellow, colors.Magenta}

func NewPlayState(app *App) *PlayState {
	cam := scene.NewOrtho2D(1, 1)
	p := &PlayState{
		StateBase: core.StateBase{Mode: core.InactiveDraw, Clear: colors.Black, Cam: cam},
		app:       app,
		cam:       cam,
		ctrl:      scene.NewOrthoController2D(cam),
	}
	for i := range 5 {
		p.boxes = append(p.boxes, box{
			x:     float32(i-2) * 48,
			size:  24,
			phase: float64(i) * 0.7,
			color: palette[i],
		})
	}
	return p
}

func (p *PlayState) Update() {
	dt := p.app.game.Timer().Step().Seconds()
	p.t += dt
	p.ctrl.Update(p.app.game.Input(), float32(dt))
}

func (p *PlayState) Draw(t core.RenderTarget) {
	end := profiler.Start("PlayState.Draw")
	defer end()

	for _, b := range p.boxes {
		y := b.y + 32*float32(math.Sin(p.t*2+b.phase))
		half := b.size * 0.5
		x0, y0 := p.cam.WorldToPixel(b.x-half, y+half)
		x1, y1 := p.cam.WorldToPixel(b.x+half, y-half)
		t.FillRect(min(x0, x1), min(y0, y1), abs(x1-x0), abs(y1-y0), b.color)
	}
}

func (p *PlayState) ProcessEvent(ev core.InputEvent) bool {
	switch e := ev.(type) {
	case core.EventKey:
		if !e.Down {
			return false
		}
		switch {
		case e.Key == core.KeyEscape:
			p.app.game.PushState(NewPauseState(p.app))
			return true
		case e.Key == core.KeyP && e.Mods.Ctrl():
			if path, err := profiler.OpenProfilerGraph(); err != nil {
				log.Printf("profiler dump: %v", err)
			} else if path != "" {
				log.Printf("speedscope dump: %s", path)
			}
			return true
		case e.Key == core.KeyF3:
			s := profiler.ReadStats()
			log.Printf("heap %.2f MB, %d allocs, %d goroutines, %d boxes, t=%.1fs",
				float64(s.HeapBytes)/(1<<20), s.Mallocs, s.Goroutines, len(p.boxes), p.app.game.Timer().Seconds())
			return true
		}
	case core.EventMouseButton:
		if e.Down && e.Button == core.ButtonLeft {
			x, y := e.WorldPos()
			p.boxes = append(p.boxes, box{
				x: x, y: y, size: 16,
				phase: p.t,
				color: palette[len(p.boxes)%len(palette)],
			})
			return true
		}
	case core.EventMouseWheel:
		return p.ctrl.HandleEvent(e)
	}
	return false
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
