// Package termhost drives a pointerdnd.Host from a tcell terminal: mouse
// events become pointer samples and the node tree is painted as cells.
// One viewport unit is one terminal cell.
package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/pointerdnd"
)

// CellScreen is the part of tcell.Screen the adapter paints to.
type CellScreen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Adapter translates tcell events for one host.
type Adapter struct {
	host *pointerdnd.Host

	// Background fills cells no node covers.
	Background pointerdnd.Color

	cells         []pointerdnd.Color
	width, height int
}

// New creates an adapter for host and turns off the host's ebiten cursor
// sampling, since the terminal is now the only pointer source.
func New(host *pointerdnd.Host) *Adapter {
	host.SetCursorInput(false)
	return &Adapter{
		host:       host,
		Background: pointerdnd.Color{R: 0.08, G: 0.08, B: 0.12, A: 1},
	}
}

// HandleEvent feeds ev to the host when it is a mouse event and reports
// whether it was.
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	me, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	x, y := me.Position()
	pressed, button := buttonState(me.Buttons())
	a.host.FeedPointer(float64(x), float64(y), pressed, button, modifiers(me.Modifiers()))
	return true
}

// buttonState maps a tcell button mask to a pressed flag and the primary
// pressed button. Wheel bits are ignored.
func buttonState(mask tcell.ButtonMask) (bool, pointerdnd.MouseButton) {
	switch {
	case mask&tcell.Button1 != 0:
		return true, pointerdnd.MouseButtonLeft
	case mask&tcell.Button2 != 0:
		return true, pointerdnd.MouseButtonRight
	case mask&tcell.Button3 != 0:
		return true, pointerdnd.MouseButtonMiddle
	default:
		return false, pointerdnd.MouseButtonLeft
	}
}

func modifiers(m tcell.ModMask) pointerdnd.KeyModifiers {
	var mods pointerdnd.KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= pointerdnd.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= pointerdnd.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= pointerdnd.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= pointerdnd.ModMeta
	}
	return mods
}

// Paint composites the host's tree into screen cells. Node colors are
// blended over what is beneath them by their accumulated alpha.
func (a *Adapter) Paint(screen CellScreen) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		a.width, a.height = 0, 0
		return
	}
	if cap(a.cells) < w*h {
		a.cells = make([]pointerdnd.Color, w*h)
	}
	a.cells = a.cells[:w*h]
	a.width, a.height = w, h
	for i := range a.cells {
		a.cells[i] = a.Background
	}

	a.host.Walk(func(n *pointerdnd.Node, alpha float64) {
		if n.Width <= 0 || n.Height <= 0 || n.Color.A <= 0 {
			return
		}
		r := n.Bounds()
		x0 := max(0, int(math.Floor(r.X)))
		y0 := max(0, int(math.Floor(r.Y)))
		x1 := min(w, int(math.Ceil(r.Right())))
		y1 := min(h, int(math.Ceil(r.Bottom())))
		k := n.Color.A * alpha
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				a.cells[y*w+x] = blend(a.cells[y*w+x], n.Color, k)
			}
		}
	})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.Background(toTcell(a.cells[y*w+x]))
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// CellColor returns the composited color of a cell from the last Paint.
// ok is false for cells outside the painted screen.
func (a *Adapter) CellColor(x, y int) (c pointerdnd.Color, ok bool) {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return pointerdnd.Color{}, false
	}
	return a.cells[y*a.width+x], true
}

func blend(dst, src pointerdnd.Color, k float64) pointerdnd.Color {
	return pointerdnd.Color{
		R: dst.R + (src.R-dst.R)*k,
		G: dst.G + (src.G-dst.G)*k,
		B: dst.B + (src.B-dst.B)*k,
		A: 1,
	}
}

func toTcell(c pointerdnd.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}
