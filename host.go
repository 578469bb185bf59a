package pointerdnd

import (
	"errors"
	"fmt"
)

// ErrAlreadyAttached is returned when a second backend tries to attach to a
// host that already has one.
var ErrAlreadyAttached = errors.New("pointerdnd: a drag backend is already attached to this host")

// Host is the top-level object that owns the node tree, the pointer state
// and the host-level event listeners. It plays the part of the window: it
// resolves event targets, propagates events through the tree and delivers
// structural change notifications.
type Host struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before Draw renders the tree.
	ClearColor Color

	// Input state
	listeners   listenerRegistry
	pointer     pointerState
	hitBuf      []*Node
	cursorInput bool
	injectQueue []syntheticPointerEvent
	script      *ScriptRunner

	// Structural change delivery
	observerQueue []*ChildListObserver

	attachment *Attachment
}

// NewHost creates a new host with a pre-created root container.
func NewHost() *Host {
	root := NewContainer("root")
	root.Interactable = true
	return &Host{
		root:        root,
		cursorInput: true,
	}
}

// Root returns the host's root container node.
func (h *Host) Root() *Node {
	return h.root
}

// AddEventListener registers a host-level listener. Capture listeners run
// before any node listener for the event; the others run after the event
// has bubbled up to the root.
func (h *Host) AddEventListener(t EventType, fn func(*PointerEvent), capture bool) ListenerHandle {
	return h.listeners.add(t, capture, fn)
}

// SetCursorInput enables or disables sampling the ebiten cursor in Update.
// Hosts fed by another input source (a terminal, tests) turn it off.
func (h *Host) SetCursorInput(enabled bool) {
	h.cursorInput = enabled
}

// SetDebugMode enables or disables debug logging to stderr.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// Update delivers pending structural changes, advances the script runner,
// and processes one frame of pointer input: an injected event if one is
// queued, otherwise the ebiten cursor when cursor input is enabled.
func (h *Host) Update() {
	h.deliverRecords()
	if h.script != nil {
		h.script.step(h)
	}
	if !h.processInjectedInput() && h.cursorInput {
		h.processCursor()
	}
	h.deliverRecords()
}

// --- Attachment ---

// Attachment is the token proving ownership of a host's single backend slot.
type Attachment struct {
	host     *Host
	owner    string
	released bool
}

// Attach acquires the host's backend slot for owner. It fails with
// ErrAlreadyAttached while another attachment is outstanding.
func (h *Host) Attach(owner string) (*Attachment, error) {
	if h.attachment != nil {
		return nil, fmt.Errorf("attach %s (held by %s): %w", owner, h.attachment.owner, ErrAlreadyAttached)
	}
	a := &Attachment{host: h, owner: owner}
	h.attachment = a
	return a, nil
}

// Release frees the backend slot. Calling Release more than once is a no-op.
func (a *Attachment) Release() {
	if a == nil || a.released {
		return
	}
	a.released = true
	if a.host.attachment == a {
		a.host.attachment = nil
	}
}

// Attached reports whether a backend currently holds the host.
func (h *Host) Attached() bool {
	return h.attachment != nil
}
