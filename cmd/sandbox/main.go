// Command sandbox is a small demo of the state stack: a menu, a scene
// that stays visible under a pause overlay, and both render backends.
package main

import (
	"fmt"
	"log"

	"github.com/hubastard/californium/engine/core"
	glbackend "github.com/hubastard/californium/engine/gfx/gl"
	"github.com/hubastard/californium/engine/platform"
	"github.com/hubastard/californium/engine/platform/term"
)

type (
	windowFactory   = func(core.Config) (core.Window, error)
	rendererFactory = func(core.Window, core.Config) (core.Renderer, error)
)

// App is shared by the demo states.
type App struct {
	game *core.Game
}

func backend(name string) (windowFactory, rendererFactory, error) {
	switch name {
	case "", "glfw":
		return platform.NewWindow, glbackend.NewRenderer, nil
	case "term":
		return term.NewWindow, term.NewRenderer, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q (want glfw or term)", name)
}

func main() {
	cfg, err := core.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	newWindow, newRenderer, err := backend(cfg.Backend)
	if err != nil {
		log.Fatal(err)
	}

	app := &App{}
	attach := func(g *core.Game) { app.game = g }
	if err := core.Run(NewMenuState(app), cfg, newWindow, newRenderer, attach); err != nil {
		log.Fatal(err)
	}
}
