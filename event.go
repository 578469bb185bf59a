package pointerdnd

// PointerEvent carries one pointer event through its propagation path.
type PointerEvent struct {
	Type      EventType
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers

	// Target is the node under the pointer when the event was dispatched
	// (nil when the pointer is over empty space).
	Target *Node
	// CurrentTarget is the node whose listeners are running, or nil while
	// host-level listeners run.
	CurrentTarget *Node
	Phase         Phase

	defaultPrevented bool
}

// Offset returns the event's viewport offset.
func (e *PointerEvent) Offset() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// PreventDefault suppresses the host's default behavior for this event.
// For pointer-up the default behavior is the click that would follow it.
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// --- Listener registry ---

type listener struct {
	id      uint32
	event   EventType
	capture bool
	fn      func(*PointerEvent)
	removed bool
}

type listenerRegistry struct {
	entries []*listener
	nextID  uint32
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id  uint32
	reg *listenerRegistry
}

// Remove unregisters the listener so it no longer fires, including for an
// event that is currently being dispatched. Calling Remove again is a no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

func (r *listenerRegistry) add(t EventType, capture bool, fn func(*PointerEvent)) ListenerHandle {
	r.nextID++
	r.entries = append(r.entries, &listener{id: r.nextID, event: t, capture: capture, fn: fn})
	return ListenerHandle{id: r.nextID, reg: r}
}

func (r *listenerRegistry) remove(id uint32) {
	for i, l := range r.entries {
		if l.id == id {
			l.removed = true
			copy(r.entries[i:], r.entries[i+1:])
			r.entries[len(r.entries)-1] = nil
			r.entries = r.entries[:len(r.entries)-1]
			return
		}
	}
}

func (r *listenerRegistry) len() int {
	return len(r.entries)
}

// fire runs the listeners for e's type registered with the given capture
// flag, in registration order. Listeners added during the call do not run;
// listeners removed during the call are skipped.
func (r *listenerRegistry) fire(e *PointerEvent, capture bool) {
	if len(r.entries) == 0 {
		return
	}
	snapshot := make([]*listener, len(r.entries))
	copy(snapshot, r.entries)
	for _, l := range snapshot {
		if l.removed || l.event != e.Type || l.capture != capture {
			continue
		}
		l.fn(e)
	}
}
