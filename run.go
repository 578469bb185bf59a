package pointerdnd

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// Update replaces the default per-frame step (Host.Update) when set.
	// dt is one tick in seconds.
	Update func(dt float32)
}

// gameShell adapts a Host to ebiten.Game.
type gameShell struct {
	host *Host
	cfg  RunConfig
}

func (g *gameShell) Update() error {
	if g.cfg.Update != nil {
		g.cfg.Update(frameSeconds(ebiten.TPS(), ebiten.ActualTPS()))
		return nil
	}
	g.host.Update()
	return nil
}

// frameSeconds returns the length of one tick. tps is non-positive when
// ticks follow the frame rate, so the measured rate is used instead, or
// 60 before one has been measured.
func frameSeconds(tps int, actual float64) float32 {
	switch {
	case tps > 0:
		return float32(1 / float64(tps))
	case actual > 0:
		return float32(1 / actual)
	default:
		return 1.0 / ebiten.DefaultTPS
	}
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.host.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *gameShell) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives host until the window is closed.
func Run(host *Host, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&gameShell{host: host, cfg: cfg})
}
