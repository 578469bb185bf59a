package pointerdnd

import (
	"fmt"
	"math"
)

const (
	defaultPreviewAlpha  = 0.5
	defaultPreviewZIndex = 999
)

type options struct {
	threshold         float64
	previewAlpha      float64
	previewZIndex     int
	endDragOnTeardown bool
	debug             bool
}

// Option configures a Backend.
type Option func(*options)

// WithDragThreshold sets the distance in pixels the pointer must travel from
// the pointer-down position before a drag begins. The default of 0 starts a
// drag on any nonzero displacement.
func WithDragThreshold(pixels float64) Option {
	return func(o *options) { o.threshold = pixels }
}

// WithPreviewAlpha sets the opacity of the drag preview clone.
func WithPreviewAlpha(alpha float64) Option {
	return func(o *options) { o.previewAlpha = alpha }
}

// WithPreviewZIndex sets the ZIndex the preview is inserted with.
func WithPreviewZIndex(z int) Option {
	return func(o *options) { o.previewZIndex = z }
}

// WithEndDragOnTeardown makes Teardown call EndDrag when it interrupts a
// drag that has not dropped. By default teardown leaves the coordinator to
// reconcile its own state.
func WithEndDragOnTeardown(enabled bool) Option {
	return func(o *options) { o.endDragOnTeardown = enabled }
}

// WithDebug logs drag lifecycle transitions to stderr.
func WithDebug(enabled bool) Option {
	return func(o *options) { o.debug = enabled }
}

// Backend turns the pointer events of a Host into drag-and-drop actions on a
// Manager. At most one Backend can be set up on a Host at a time.
type Backend struct {
	actions Actions
	monitor Monitor
	host    *Host
	opts    options

	regs    registries
	tracker pointerTracker
	// candidates collects source ids for the current pointer-down, innermost
	// first. nil means no interaction is pending.
	candidates []string
	preview    *dragPreview
	watcher    removalWatcher

	attachment *Attachment
	handles    []ListenerHandle
}

// New creates a backend for manager on host. A nil host models an
// environment without a pointer device: every lifecycle call is a no-op.
func New(manager Manager, host *Host, opts ...Option) *Backend {
	o := options{
		previewAlpha:  defaultPreviewAlpha,
		previewZIndex: defaultPreviewZIndex,
	}
	for _, fn := range opts {
		fn(&o)
	}
	b := &Backend{
		actions: manager.Actions(),
		monitor: manager.Monitor(),
		host:    host,
		opts:    o,
	}
	b.watcher.host = host
	b.watcher.onResurrect = func(n *Node) {
		b.debugf("resurrected detached source node %q", n.Name)
	}
	return b
}

// Setup attaches the backend to its host and starts listening. It fails
// with ErrAlreadyAttached when another backend holds the host.
func (b *Backend) Setup() error {
	if b.host == nil {
		return nil
	}
	a, err := b.host.Attach("pointerdnd.Backend")
	if err != nil {
		return fmt.Errorf("setup backend: %w", err)
	}
	b.attachment = a
	b.handles = append(b.handles,
		b.host.AddEventListener(EventPointerDown, b.handlePointerDownCapture, true),
		b.host.AddEventListener(EventPointerDown, b.handlePointerDown, false),
		b.host.AddEventListener(EventPointerMove, b.handlePointerMoveCapture, true),
		b.host.AddEventListener(EventPointerUp, b.handlePointerUpCapture, true),
	)
	return nil
}

// Teardown detaches the backend from its host and clears all local state.
// It is safe to call without a prior Setup. A drag in progress is not
// dropped; see WithEndDragOnTeardown.
func (b *Backend) Teardown() {
	if b.host == nil {
		return
	}
	if b.attachment != nil && b.opts.endDragOnTeardown &&
		b.monitor.IsDragging() && !b.monitor.DidDrop() {
		b.debugf("teardown interrupts drag of %q, ending it", b.monitor.SourceID())
		b.actions.EndDrag()
	}
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = b.handles[:0]
	b.attachment.Release()
	b.attachment = nil

	b.tracker.reset()
	b.candidates = nil
	b.preview.dispose()
	b.preview = nil
	b.watcher.unwatch()
}

// ConnectDragSource registers node as the drag source id. The returned
// function disconnects it.
func (b *Backend) ConnectDragSource(id string, node *Node) func() {
	disconnect := b.regs.connect(KindSource, id, node, PreviewOptions{})
	h := node.AddEventListener(EventPointerDown, func(*PointerEvent) {
		b.handleSourcePointerDown(id)
	}, false)
	return func() {
		disconnect()
		h.Remove()
	}
}

// ConnectDragPreview registers node as the preview to clone while id is
// dragged. Without one the source node itself is cloned.
func (b *Backend) ConnectDragPreview(id string, node *Node, opts PreviewOptions) func() {
	return b.regs.connect(KindPreview, id, node, opts)
}

// ConnectDropTarget registers node as the drop target id.
func (b *Backend) ConnectDropTarget(id string, node *Node) func() {
	return b.regs.connect(KindTarget, id, node, PreviewOptions{})
}

// SourceClientOffset returns the top-left viewport offset of the node
// registered for source id.
func (b *Backend) SourceClientOffset(id string) (Vec2, bool) {
	return ClientOffset(b.regs.of(KindSource).node(id))
}

// --- Pointer handlers ---

// handlePointerDownCapture runs before any source listener for the event.
func (b *Backend) handlePointerDownCapture(*PointerEvent) {
	b.candidates = []string{}
}

// handleSourcePointerDown runs as the event bubbles through each source.
// Listeners fire innermost first, so appending leaves the innermost source
// at index 0.
func (b *Backend) handleSourcePointerDown(id string) {
	b.candidates = append(b.candidates, id)
}

// handlePointerDown runs after the event has bubbled through the tree.
func (b *Backend) handlePointerDown(e *PointerEvent) {
	b.tracker.record(e.Offset())
}

func (b *Backend) handlePointerMoveCapture(e *PointerEvent) {
	offset := e.Offset()
	if !offset.valid() {
		return
	}

	if !b.monitor.IsDragging() && b.tracker.hasBaseline() && b.candidates != nil && b.displaced(offset) {
		ids := b.candidates
		b.candidates = nil
		b.beginPreview(ids, offset)
		b.debugf("begin drag %v at (%v, %v)", ids, offset.X, offset.Y)
		b.actions.BeginDrag(ids, BeginDragOptions{
			ClientOffset:       b.tracker.baseline(),
			PointerOffset:      offset,
			SourceClientOffset: b.SourceClientOffset,
			PublishSource:      false,
		})
	} else if b.preview != nil {
		b.preview.moveTo(offset)
	}

	if !b.monitor.IsDragging() {
		return
	}

	b.watcher.watch(b.regs.of(KindSource).node(b.monitor.SourceID()))
	b.actions.PublishDragSource()
	e.PreventDefault()
	b.actions.Hover(b.matchingTargets(offset), HoverOptions{ClientOffset: offset})
}

func (b *Backend) handlePointerUpCapture(e *PointerEvent) {
	if !b.monitor.IsDragging() || b.monitor.DidDrop() {
		b.candidates = nil
		b.endSession()
		return
	}

	b.preview.dispose()
	b.preview = nil
	e.PreventDefault()
	b.endSession()
	b.debugf("drop %q at (%v, %v)", b.monitor.SourceID(), e.X, e.Y)
	b.actions.Drop()
	b.actions.EndDrag()
}

// --- Helpers ---

// displaced reports whether offset has moved far enough from the baseline
// to start a drag.
func (b *Backend) displaced(offset Vec2) bool {
	base := b.tracker.baseline()
	dx := offset.X - base.X
	dy := offset.Y - base.Y
	if b.opts.threshold <= 0 {
		return dx != 0 || dy != 0
	}
	return math.Sqrt(dx*dx+dy*dy) > b.opts.threshold
}

// beginPreview clones the primary candidate, if it is still registered.
func (b *Backend) beginPreview(ids []string, offset Vec2) {
	if len(ids) == 0 || b.preview != nil {
		return
	}
	source := b.regs.of(KindSource).node(ids[0])
	if source == nil || source.IsDisposed() {
		b.debugf("no node for source %q, dragging without preview", ids[0])
		return
	}
	template := source
	var opts PreviewOptions
	if e, ok := b.regs.of(KindPreview).get(ids[0]); ok && e.node != nil && !e.node.IsDisposed() {
		template = e.node
		opts = e.options
	}
	b.preview = presentPreview(b.host, template, offset, opts, b.opts.previewAlpha, b.opts.previewZIndex)
}

// endSession drops the local per-session state. Coordinator state is left
// to the caller.
func (b *Backend) endSession() {
	b.preview.dispose()
	b.preview = nil
	b.tracker.reset()
	b.watcher.unwatch()
}

// matchingTargets returns, in registration order, the targets whose
// bounding rectangle contains offset, edges included.
func (b *Backend) matchingTargets(offset Vec2) []string {
	reg := b.regs.of(KindTarget)
	ids := make([]string, 0, reg.len())
	for _, e := range reg.entries {
		if e.node == nil || e.node.IsDisposed() {
			continue
		}
		r := e.node.Bounds()
		if offset.X >= r.X && offset.X <= r.Right() &&
			offset.Y >= r.Y && offset.Y <= r.Bottom() {
			ids = append(ids, e.id)
		}
	}
	return ids
}

func (b *Backend) debugf(format string, args ...any) {
	if !b.opts.debug {
		return
	}
	debugLog(fmt.Sprintf(format, args...))
}
