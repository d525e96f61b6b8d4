package main

import (
	"log"
	"os"

	"github.com/hubastard/vide/engine/config"
	"github.com/hubastard/vide/engine/core"
	glbackend "github.com/hubastard/vide/engine/gfx/gl"
	"github.com/hubastard/vide/engine/platform"
	"github.com/hubastard/vide/engine/text"
)

type handler struct{}

func (handler) HandleEvent(ev core.Event) {
	switch e := ev.(type) {
	case core.EventQuit:
		log.Println("quit requested")
	case core.EventKeyInput:
		log.Printf("key: %s", e.Token)
	}
}

func main() {
	path := "vide.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	settings, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	// Real font metrics replace the placeholder cell scale when a font is
	// configured.
	cellSize := 0.0
	if settings.Font.Path != "" {
		metrics, err := text.LoadTTF(settings.Font.Path, settings.Font.SizePx)
		if err != nil {
			log.Fatal(err)
		}
		cellSize = metrics.Width
	}

	cfg := settings.EngineConfig(cellSize)
	cfg.ClearColor = [4]float32{0.1, 0.1, 0.1, 1.0}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(handler{}, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
