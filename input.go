package pointerdnd

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

type pointerState struct {
	down    bool
	seen    bool // lastX/lastY hold a real sample
	lastX   float64
	lastY   float64
	hitNode *Node
	button  MouseButton // button captured at press time
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's layout box.
// Nodes with no box and no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.hasBox() {
		buf = append(buf, n)
	}
	for _, child := range n.sortedChildList() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (x, y).
// Returns nil if nothing is hit.
func (h *Host) hitTest(x, y float64) *Node {
	h.hitBuf = collectInteractable(h.root, h.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(h.hitBuf) - 1; i >= 0; i-- {
		n := h.hitBuf[i]
		lx, ly := n.WorldToLocal(x, y)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// NodeAt returns the topmost interactable node at the viewport point.
func (h *Host) NodeAt(x, y float64) *Node {
	return h.hitTest(x, y)
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processCursor samples the ebiten mouse and feeds it to the pointer.
func (h *Host) processCursor() {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the stored button to avoid
	// changing it mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	h.FeedPointer(float64(mx), float64(my), pressed, button, readModifiers())
}

// FeedPointer runs the pointer state machine for one sample of the pointer:
// a move is dispatched when the position changed, followed by a down or up
// when the pressed state changed. A click follows an up released over the
// pressed node unless a pointer-up listener prevented the default.
func (h *Host) FeedPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &h.pointer

	if !ps.seen || x != ps.lastX || y != ps.lastY {
		ps.seen = true
		ps.lastX = x
		ps.lastY = y
		btn := button
		if ps.down {
			btn = ps.button
		}
		h.Dispatch(EventPointerMove, x, y, btn, mods)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		e := h.Dispatch(EventPointerDown, x, y, button, mods)
		ps.hitNode = e.Target
	case !pressed && ps.down:
		btn := ps.button
		pressedOn := ps.hitNode
		ps.down = false
		ps.hitNode = nil
		e := h.Dispatch(EventPointerUp, x, y, btn, mods)
		if !e.DefaultPrevented() && pressedOn != nil && pressedOn == e.Target {
			h.Dispatch(EventClick, x, y, btn, mods)
		}
	}
}

// Dispatch delivers one pointer event at (x, y) to the node under it and
// returns the event after propagation. The propagation path is fixed when
// dispatch starts; tree changes made by listeners do not alter it.
func (h *Host) Dispatch(t EventType, x, y float64, button MouseButton, mods KeyModifiers) *PointerEvent {
	h.deliverRecords()

	e := &PointerEvent{Type: t, X: x, Y: y, Button: button, Modifiers: mods}
	e.Target = h.hitTest(x, y)

	var path []*Node
	for n := e.Target; n != nil; n = n.Parent {
		path = append(path, n)
	}

	e.Phase = PhaseCapture
	h.listeners.fire(e, true)
	for i := len(path) - 1; i >= 1; i-- {
		e.CurrentTarget = path[i]
		path[i].listeners.fire(e, true)
	}
	if len(path) > 0 {
		e.Phase = PhaseTarget
		e.CurrentTarget = path[0]
		path[0].listeners.fire(e, true)
		path[0].listeners.fire(e, false)
	}
	e.Phase = PhaseBubble
	for i := 1; i < len(path); i++ {
		e.CurrentTarget = path[i]
		path[i].listeners.fire(e, false)
	}
	e.CurrentTarget = nil
	h.listeners.fire(e, false)

	h.deliverRecords()
	return e
}
