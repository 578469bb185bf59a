package pointerdnd

// Kind selects one of the backend's node registries.
type Kind uint8

const (
	KindSource  Kind = iota // drag sources
	KindPreview             // custom drag previews
	KindTarget              // drop targets
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindPreview:
		return "preview"
	case KindTarget:
		return "target"
	default:
		return "unknown"
	}
}

// PreviewOptions configures a custom drag preview.
type PreviewOptions struct {
	// OffsetX and OffsetY shift the preview relative to the pointer. The
	// zero value keeps the preview centred on the pointer.
	OffsetX, OffsetY float64
}

type registryEntry struct {
	id      string
	node    *Node
	options PreviewOptions
	conn    uint64 // connection serial, so stale disposers cannot remove a newer entry
}

// nodeRegistry maps logical ids to nodes, preserving the order in which ids
// were first connected. Reconnecting an id keeps its slot.
type nodeRegistry struct {
	entries []registryEntry
	index   map[string]int
}

func (r *nodeRegistry) set(id string, node *Node, options PreviewOptions, conn uint64) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[id]; ok {
		r.entries[i] = registryEntry{id: id, node: node, options: options, conn: conn}
		return
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, registryEntry{id: id, node: node, options: options, conn: conn})
}

// remove deletes id if it is still owned by connection conn.
func (r *nodeRegistry) remove(id string, conn uint64) bool {
	i, ok := r.index[id]
	if !ok || r.entries[i].conn != conn {
		return false
	}
	copy(r.entries[i:], r.entries[i+1:])
	r.entries[len(r.entries)-1] = registryEntry{}
	r.entries = r.entries[:len(r.entries)-1]
	delete(r.index, id)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].id] = j
	}
	return true
}

func (r *nodeRegistry) get(id string) (registryEntry, bool) {
	i, ok := r.index[id]
	if !ok {
		return registryEntry{}, false
	}
	return r.entries[i], true
}

func (r *nodeRegistry) node(id string) *Node {
	e, _ := r.get(id)
	return e.node
}

func (r *nodeRegistry) len() int {
	return len(r.entries)
}

// registries bundles the three per-kind registries of a backend.
type registries struct {
	byKind [3]nodeRegistry
	serial uint64
}

// connect registers node under id in the registry for kind and returns a
// disposer that removes it. Calling the disposer twice is a no-op.
func (rs *registries) connect(kind Kind, id string, node *Node, options PreviewOptions) func() {
	rs.serial++
	conn := rs.serial
	reg := &rs.byKind[kind]
	reg.set(id, node, options, conn)
	disposed := false
	return func() {
		if disposed {
			return
		}
		disposed = true
		reg.remove(id, conn)
	}
}

func (rs *registries) of(kind Kind) *nodeRegistry {
	return &rs.byKind[kind]
}
