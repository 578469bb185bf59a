// Dnddemo opens a window with three cards and two bins. Drag a card (or the
// yellow badge on the first card) into a bin; a translucent preview follows
// the pointer and the card settles into the bin on drop.
//
// Settings come from an optional TOML file and POINTERDND_* environment
// variables. A JSON pointer script given in the config replays a drag
// session without a mouse.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/pointerdnd"
	"github.com/phanxgames/pointerdnd/internal/democonfig"
	"github.com/phanxgames/pointerdnd/internal/demoscene"
)

const showFPS = true

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := democonfig.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	host := pointerdnd.NewHost()
	host.SetDebugMode(cfg.Drag.Debug)
	host.ClearColor = pointerdnd.Color{R: 0.137, G: 0.118, B: 0.176, A: 1}

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := pointerdnd.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		host.SetScriptRunner(runner)
	}

	board, err := demoscene.Build(host, demoscene.Layout{
		Unit:   pointerdnd.Vec2{X: 20, Y: 20},
		Origin: pointerdnd.Vec2{X: 40, Y: 40},
	}, cfg.Options()...)
	if err != nil {
		log.Fatal(err)
	}
	defer board.Close()

	if err := pointerdnd.Run(host, pointerdnd.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowFPS: showFPS,
		Update:  board.Update,
	}); err != nil {
		log.Fatal(err)
	}
}
