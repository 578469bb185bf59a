package pointerdnd

// Actions is the action surface of the drag coordinator. The backend calls
// these; the coordinator owns every consequence.
type Actions interface {
	BeginDrag(sourceIDs []string, opts BeginDragOptions)
	PublishDragSource()
	Hover(targetIDs []string, opts HoverOptions)
	Drop()
	EndDrag()
}

// Monitor is the read-only query surface of the drag coordinator. The
// backend re-queries it on every transition and never caches the answers.
type Monitor interface {
	IsDragging() bool
	DidDrop() bool
	SourceID() string
}

// Manager is the drag coordinator the backend is constructed with.
type Manager interface {
	Actions() Actions
	Monitor() Monitor
	// Registry is opaque to the backend.
	Registry() any
}

// BeginDragOptions is the payload handed to Actions.BeginDrag.
type BeginDragOptions struct {
	// ClientOffset is the pointer-down baseline of the interaction.
	ClientOffset Vec2
	// PointerOffset is the pointer position of the move that started the drag.
	PointerOffset Vec2
	// SourceClientOffset resolves a source id to its element's top-left
	// viewport offset. It stays valid for later re-queries.
	SourceClientOffset func(sourceID string) (Vec2, bool)
	// PublishSource asks the coordinator to publish the source right away.
	// The backend always sends false and publishes on the following moves.
	PublishSource bool
}

// HoverOptions is the payload handed to Actions.Hover.
type HoverOptions struct {
	ClientOffset Vec2
}
