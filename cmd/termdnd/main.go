// Termdnd runs the card-and-bin board in a terminal. Drag with the mouse;
// press Esc or Ctrl-C to quit.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/pointerdnd"
	"github.com/phanxgames/pointerdnd/internal/democonfig"
	"github.com/phanxgames/pointerdnd/internal/demoscene"
	"github.com/phanxgames/pointerdnd/termhost"
)

// frame is the tick interval driving settle animations.
const frame = time.Second / 30

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := democonfig.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	host := pointerdnd.NewHost()
	adapter := termhost.New(host)

	// Cells are roughly twice as tall as they are wide.
	board, err := demoscene.Build(host, demoscene.Layout{
		Unit:   pointerdnd.Vec2{X: 2, Y: 1},
		Origin: pointerdnd.Vec2{X: 1, Y: 1},
	}, cfg.Options()...)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	defer board.Close()

	// Deferred calls run in reverse, so the ticker is gone before screen.Fini.
	done := make(chan struct{})
	stopped := make(chan struct{})
	go tick(screen, done, stopped)
	defer func() {
		close(done)
		<-stopped
	}()

	for {
		adapter.Paint(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			board.Update(float32(frame.Seconds()))
		case nil:
			return
		default:
			if adapter.HandleEvent(ev) {
				board.Update(0)
			}
		}
	}
}

// tick posts an interrupt every frame until done is closed, then closes
// stopped.
func tick(screen tcell.Screen, done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// A full event queue drops the tick.
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}
