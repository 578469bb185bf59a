package pointerdnd

import (
	"fmt"
	"testing"
)

// newTestHost returns a host that only receives fed or injected input.
func newTestHost() *Host {
	h := NewHost()
	h.SetCursorInput(false)
	return h
}

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// --- Hit testing ---

func TestHitTestTopmost(t *testing.T) {
	h := newTestHost()
	back := NewBox("back", 100, 100, ColorWhite)
	front := NewBox("front", 50, 50, ColorWhite)
	front.SetPosition(25, 25)
	h.Root().AddChild(back)
	h.Root().AddChild(front)

	if got := h.NodeAt(30, 30); got != front {
		t.Errorf("NodeAt(30, 30) = %v, want front", nodeName(got))
	}
	if got := h.NodeAt(10, 10); got != back {
		t.Errorf("NodeAt(10, 10) = %v, want back", nodeName(got))
	}

	back.SetZIndex(1)
	if got := h.NodeAt(30, 30); got != back {
		t.Errorf("after ZIndex change NodeAt(30, 30) = %v, want back", nodeName(got))
	}
}

func TestHitTestSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(parent, box *Node)
	}{
		{"invisible", func(_, box *Node) { box.Visible = false }},
		{"not interactable", func(_, box *Node) { box.Interactable = false }},
		{"non-interactable parent", func(parent, _ *Node) { parent.Interactable = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHost()
			parent := NewContainer("parent")
			parent.Interactable = true
			box := NewBox("box", 10, 10, ColorWhite)
			h.Root().AddChild(parent)
			parent.AddChild(box)
			tt.setup(parent, box)
			if got := h.NodeAt(5, 5); got != nil {
				t.Errorf("NodeAt = %v, want nil", nodeName(got))
			}
		})
	}
}

func TestHitTestHitShape(t *testing.T) {
	h := newTestHost()
	n := NewContainer("circle")
	n.Interactable = true
	n.HitShape = HitCircle{CenterX: 10, CenterY: 10, Radius: 5}
	h.Root().AddChild(n)

	if got := h.NodeAt(10, 12); got != n {
		t.Errorf("NodeAt inside circle = %v, want circle", nodeName(got))
	}
	if got := h.NodeAt(1, 1); got != nil {
		t.Errorf("NodeAt outside circle = %v, want nil", nodeName(got))
	}
}

// --- Propagation ---

func TestDispatchPropagationOrder(t *testing.T) {
	h := newTestHost()
	outer := NewBox("outer", 100, 100, ColorWhite)
	inner := NewBox("inner", 20, 20, ColorWhite)
	inner.SetPosition(10, 10)
	h.Root().AddChild(outer)
	outer.AddChild(inner)

	var order []string
	record := func(label string) func(*PointerEvent) {
		return func(e *PointerEvent) {
			order = append(order, fmt.Sprintf("%s/%d", label, e.Phase))
		}
	}
	h.AddEventListener(EventPointerDown, record("host-bubble"), false)
	h.AddEventListener(EventPointerDown, record("host-capture"), true)
	h.Root().AddEventListener(EventPointerDown, record("root-capture"), true)
	h.Root().AddEventListener(EventPointerDown, record("root-bubble"), false)
	outer.AddEventListener(EventPointerDown, record("outer-capture"), true)
	outer.AddEventListener(EventPointerDown, record("outer-bubble"), false)
	inner.AddEventListener(EventPointerDown, record("inner-bubble"), false)
	inner.AddEventListener(EventPointerDown, record("inner-capture"), true)

	e := h.Dispatch(EventPointerDown, 15, 15, MouseButtonLeft, 0)
	if e.Target != inner {
		t.Fatalf("Target = %v, want inner", nodeName(e.Target))
	}

	want := []string{
		"host-capture/0",
		"root-capture/0",
		"outer-capture/0",
		"inner-capture/1",
		"inner-bubble/1",
		"outer-bubble/2",
		"root-bubble/2",
		"host-bubble/2",
	}
	if !equalStrings(order, want) {
		t.Errorf("order =\n%v\nwant\n%v", order, want)
	}
}

func TestDispatchOverEmptySpaceRunsHostListeners(t *testing.T) {
	h := newTestHost()
	ran := 0
	h.AddEventListener(EventPointerMove, func(e *PointerEvent) { ran++ }, true)
	h.AddEventListener(EventPointerMove, func(e *PointerEvent) { ran++ }, false)
	e := h.Dispatch(EventPointerMove, 500, 500, MouseButtonLeft, 0)
	if e.Target != nil {
		t.Errorf("Target = %v, want nil", nodeName(e.Target))
	}
	if ran != 2 {
		t.Errorf("host listeners ran %d times, want 2", ran)
	}
}

func TestDispatchPathFixedAtStart(t *testing.T) {
	h := newTestHost()
	outer := NewBox("outer", 100, 100, ColorWhite)
	inner := NewBox("inner", 20, 20, ColorWhite)
	h.Root().AddChild(outer)
	outer.AddChild(inner)

	outerBubbled := false
	inner.AddEventListener(EventPointerDown, func(*PointerEvent) { inner.RemoveFromParent() }, false)
	outer.AddEventListener(EventPointerDown, func(*PointerEvent) { outerBubbled = true }, false)

	h.Dispatch(EventPointerDown, 5, 5, MouseButtonLeft, 0)
	if !outerBubbled {
		t.Error("event should still bubble through the original parent")
	}
}

// --- FeedPointer ---

func TestFeedPointerSequence(t *testing.T) {
	h := newTestHost()
	box := NewBox("box", 50, 50, ColorWhite)
	h.Root().AddChild(box)

	var got []EventType
	for _, et := range []EventType{EventPointerDown, EventPointerMove, EventPointerUp, EventClick} {
		h.AddEventListener(et, func(e *PointerEvent) { got = append(got, e.Type) }, true)
	}

	h.FeedPointer(10, 10, false, MouseButtonLeft, 0) // first sample: move
	h.FeedPointer(10, 10, true, MouseButtonLeft, 0)  // down, no move
	h.FeedPointer(12, 10, true, MouseButtonLeft, 0)  // move
	h.FeedPointer(12, 10, false, MouseButtonLeft, 0) // up + click

	want := []EventType{EventPointerMove, EventPointerDown, EventPointerMove, EventPointerUp, EventClick}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func TestClickSuppressedByPreventDefault(t *testing.T) {
	h := newTestHost()
	box := NewBox("box", 50, 50, ColorWhite)
	h.Root().AddChild(box)

	clicks := 0
	box.AddEventListener(EventClick, func(*PointerEvent) { clicks++ }, false)
	h.AddEventListener(EventPointerUp, func(e *PointerEvent) { e.PreventDefault() }, true)

	h.FeedPointer(10, 10, true, MouseButtonLeft, 0)
	h.FeedPointer(10, 10, false, MouseButtonLeft, 0)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}

func TestClickRequiresSameNode(t *testing.T) {
	h := newTestHost()
	a := NewBox("a", 10, 10, ColorWhite)
	b := NewBox("b", 10, 10, ColorWhite)
	b.SetPosition(20, 0)
	h.Root().AddChild(a)
	h.Root().AddChild(b)

	clicks := 0
	h.AddEventListener(EventClick, func(*PointerEvent) { clicks++ }, false)

	h.FeedPointer(5, 5, true, MouseButtonLeft, 0)
	h.FeedPointer(25, 5, false, MouseButtonLeft, 0)
	if clicks != 0 {
		t.Errorf("clicks after release elsewhere = %d, want 0", clicks)
	}

	h.FeedPointer(25, 5, true, MouseButtonLeft, 0)
	h.FeedPointer(25, 5, false, MouseButtonLeft, 0)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestFeedPointerKeepsPressButton(t *testing.T) {
	h := newTestHost()
	var buttons []MouseButton
	h.AddEventListener(EventPointerMove, func(e *PointerEvent) { buttons = append(buttons, e.Button) }, true)
	h.AddEventListener(EventPointerUp, func(e *PointerEvent) { buttons = append(buttons, e.Button) }, true)

	h.FeedPointer(0, 0, true, MouseButtonRight, ModShift)
	h.FeedPointer(5, 0, true, MouseButtonLeft, 0)
	h.FeedPointer(5, 0, false, MouseButtonLeft, 0)

	// first move (initial sample), drag move, up
	want := []MouseButton{MouseButtonRight, MouseButtonRight, MouseButtonRight}
	for i := range want {
		if i >= len(buttons) || buttons[i] != want[i] {
			t.Fatalf("buttons = %v, want %v", buttons, want)
		}
	}
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}
