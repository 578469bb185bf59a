package ecs

import (
	"github.com/google/uuid"
	"github.com/phanxgames/pointerdnd"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragState is the canonical drag state, stored as a singleton component.
type DragState struct {
	Dragging        bool
	SourceID        string
	Item            any
	SourcePublished bool
	TargetIDs       []string

	// InitialClientOffset is the pointer-down position that started the drag.
	InitialClientOffset pointerdnd.Vec2
	// InitialSourceOffset is the source's top-left when the drag began.
	InitialSourceOffset pointerdnd.Vec2
	// ClientOffset is the latest pointer position.
	ClientOffset pointerdnd.Vec2

	DidDrop      bool
	DropTargetID string
	DropResult   any
}

// DragStateComponent holds the coordinator's DragState.
var DragStateComponent = donburi.NewComponentType[DragState]()

// DragEventKind identifies which action produced a DragEvent.
type DragEventKind uint8

const (
	DragBegin   DragEventKind = iota // a source started dragging
	DragPublish                      // the source was published to the app
	DragHover                        // the hovered target set was updated
	DragDrop                         // the pointer was released
	DragEnd                          // the session finished
)

// DragEvent is published on DragEventType for every effective action.
type DragEvent struct {
	Kind         DragEventKind
	SourceID     string
	Item         any
	TargetIDs    []string
	ClientOffset pointerdnd.Vec2
	DropTargetID string
	DropResult   any
	DidDrop      bool
}

// DragEventType is the Donburi event type for drag events.
// Events are queued; consume them with ProcessEvents.
var DragEventType = events.NewEventType[DragEvent]()

// SourceSpec describes a registered drag source.
type SourceSpec struct {
	// Item is the payload carried while the source is dragged.
	Item any
	// CanDrag vetoes a drag when it returns false. nil allows every drag.
	CanDrag func() bool
}

// TargetSpec describes a registered drop target.
type TargetSpec struct {
	// CanDrop reports whether the target accepts item. nil accepts anything.
	CanDrop func(item any) bool
	// Drop is called when item is dropped on the target; its result is
	// recorded as the drop result.
	Drop func(item any) any
}

// Coordinator is a pointerdnd.Manager that keeps drag state in a Donburi
// world. It is single-threaded, like the host that drives it.
type Coordinator struct {
	world   donburi.World
	entry   *donburi.Entry
	sources map[string]SourceSpec
	targets map[string]TargetSpec
}

var (
	_ pointerdnd.Manager = (*Coordinator)(nil)
	_ pointerdnd.Actions = (*Coordinator)(nil)
	_ pointerdnd.Monitor = (*Coordinator)(nil)
)

// NewCoordinator creates the drag state entity in world.
func NewCoordinator(world donburi.World) *Coordinator {
	entity := world.Create(DragStateComponent)
	return &Coordinator{
		world:   world,
		entry:   world.Entry(entity),
		sources: make(map[string]SourceSpec),
		targets: make(map[string]TargetSpec),
	}
}

// Actions implements pointerdnd.Manager.
func (c *Coordinator) Actions() pointerdnd.Actions { return c }

// Monitor implements pointerdnd.Manager.
func (c *Coordinator) Monitor() pointerdnd.Monitor { return c }

// Registry implements pointerdnd.Manager.
func (c *Coordinator) Registry() any { return c }

// RegisterSource registers a drag source and returns its id.
func (c *Coordinator) RegisterSource(spec SourceSpec) string {
	id := "S-" + uuid.NewString()
	c.sources[id] = spec
	return id
}

// UnregisterSource removes a drag source.
func (c *Coordinator) UnregisterSource(id string) {
	delete(c.sources, id)
}

// RegisterTarget registers a drop target and returns its id.
func (c *Coordinator) RegisterTarget(spec TargetSpec) string {
	id := "T-" + uuid.NewString()
	c.targets[id] = spec
	return id
}

// UnregisterTarget removes a drop target.
func (c *Coordinator) UnregisterTarget(id string) {
	delete(c.targets, id)
}

// State returns a copy of the current drag state.
func (c *Coordinator) State() DragState {
	return *c.state()
}

func (c *Coordinator) state() *DragState {
	return DragStateComponent.Get(c.entry)
}

// --- Actions ---

// BeginDrag starts dragging the first candidate that is registered and
// allowed to drag. A call while already dragging, or with no eligible
// candidate, is ignored.
func (c *Coordinator) BeginDrag(sourceIDs []string, opts pointerdnd.BeginDragOptions) {
	st := c.state()
	if st.Dragging {
		return
	}
	for _, id := range sourceIDs {
		spec, ok := c.sources[id]
		if !ok || (spec.CanDrag != nil && !spec.CanDrag()) {
			continue
		}
		var sourceOffset pointerdnd.Vec2
		if opts.SourceClientOffset != nil {
			sourceOffset, _ = opts.SourceClientOffset(id)
		}
		*st = DragState{
			Dragging:            true,
			SourceID:            id,
			Item:                spec.Item,
			SourcePublished:     opts.PublishSource,
			InitialClientOffset: opts.ClientOffset,
			InitialSourceOffset: sourceOffset,
			ClientOffset:        opts.PointerOffset,
		}
		c.publish(DragEvent{Kind: DragBegin, ClientOffset: opts.PointerOffset})
		return
	}
}

// PublishDragSource marks the dragged source as published. Only the first
// call of a session emits an event.
func (c *Coordinator) PublishDragSource() {
	st := c.state()
	if !st.Dragging || st.SourcePublished {
		return
	}
	st.SourcePublished = true
	c.publish(DragEvent{Kind: DragPublish, ClientOffset: st.ClientOffset})
}

// Hover records the targets under the pointer.
func (c *Coordinator) Hover(targetIDs []string, opts pointerdnd.HoverOptions) {
	st := c.state()
	if !st.Dragging {
		return
	}
	st.TargetIDs = append([]string(nil), targetIDs...)
	st.ClientOffset = opts.ClientOffset
	c.publish(DragEvent{Kind: DragHover, ClientOffset: opts.ClientOffset})
}

// Drop drops the item on the first hovered target that accepts it. The
// event is published even when no target accepted.
func (c *Coordinator) Drop() {
	st := c.state()
	if !st.Dragging || st.DidDrop {
		return
	}
	for _, id := range st.TargetIDs {
		spec, ok := c.targets[id]
		if !ok || (spec.CanDrop != nil && !spec.CanDrop(st.Item)) {
			continue
		}
		st.DidDrop = true
		st.DropTargetID = id
		if spec.Drop != nil {
			st.DropResult = spec.Drop(st.Item)
		}
		break
	}
	c.publish(DragEvent{Kind: DragDrop, ClientOffset: st.ClientOffset})
}

// EndDrag finishes the session and resets the state.
func (c *Coordinator) EndDrag() {
	st := c.state()
	if !st.Dragging {
		return
	}
	c.publish(DragEvent{Kind: DragEnd, ClientOffset: st.ClientOffset})
	*st = DragState{}
}

func (c *Coordinator) publish(e DragEvent) {
	st := c.state()
	e.SourceID = st.SourceID
	e.Item = st.Item
	e.DidDrop = st.DidDrop
	e.DropTargetID = st.DropTargetID
	e.DropResult = st.DropResult
	e.TargetIDs = st.TargetIDs
	DragEventType.Publish(c.world, e)
}

// --- Monitor ---

// IsDragging implements pointerdnd.Monitor.
func (c *Coordinator) IsDragging() bool { return c.state().Dragging }

// DidDrop implements pointerdnd.Monitor.
func (c *Coordinator) DidDrop() bool { return c.state().DidDrop }

// SourceID implements pointerdnd.Monitor.
func (c *Coordinator) SourceID() string { return c.state().SourceID }

func (k DragEventKind) String() string {
	switch k {
	case DragBegin:
		return "begin"
	case DragPublish:
		return "publish"
	case DragHover:
		return "hover"
	case DragDrop:
		return "drop"
	case DragEnd:
		return "end"
	default:
		return "unknown"
	}
}
