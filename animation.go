package pointerdnd

import (
	"slices"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property names a node field an Animator can ease.
type Property uint8

const (
	PropX Property = iota
	PropY
	PropAlpha
)

func (p Property) field(n *Node) *float64 {
	switch p {
	case PropX:
		return &n.X
	case PropY:
		return &n.Y
	default:
		return &n.Alpha
	}
}

type tween struct {
	node *Node
	prop Property
	tw   *gween.Tween
}

// Animator eases node properties over time. Each node property has at most
// one running tween: starting another replaces it, continuing from the
// property's current value. Tweens on disposed nodes are dropped without
// writing.
//
// The zero value is ready to use. Call Update once per frame.
type Animator struct {
	running []tween
}

// Move eases n to the local position (x, y).
func (a *Animator) Move(n *Node, x, y float64, duration float32, fn ease.TweenFunc) {
	a.Start(n, PropX, x, duration, fn)
	a.Start(n, PropY, y, duration, fn)
}

// Fade eases n's alpha to alpha.
func (a *Animator) Fade(n *Node, alpha float64, duration float32, fn ease.TweenFunc) {
	a.Start(n, PropAlpha, alpha, duration, fn)
}

// Start eases one property of n to the value to. A non-positive duration
// sets the value immediately.
func (a *Animator) Start(n *Node, p Property, to float64, duration float32, fn ease.TweenFunc) {
	a.cancel(n, p)
	if duration <= 0 {
		*p.field(n) = to
		return
	}
	from := float32(*p.field(n))
	a.running = append(a.running, tween{
		node: n,
		prop: p,
		tw:   gween.New(from, float32(to), duration, fn),
	})
}

func (a *Animator) cancel(n *Node, p Property) {
	for i, t := range a.running {
		if t.node == n && t.prop == p {
			a.running = slices.Delete(a.running, i, i+1)
			return
		}
	}
}

// Len returns the number of running tweens.
func (a *Animator) Len() int { return len(a.running) }

// Update advances every tween by dt seconds and drops finished ones.
func (a *Animator) Update(dt float32) {
	live := a.running[:0]
	for _, t := range a.running {
		if t.node.IsDisposed() {
			continue
		}
		v, done := t.tw.Update(dt)
		*t.prop.field(t.node) = float64(v)
		if !done {
			live = append(live, t)
		}
	}
	clear(a.running[len(live):])
	a.running = live
}
