package pointerdnd

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// nodeIDCounter is a plain counter (the host is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the host tree. Sources, previews and drop targets are
// all plain nodes; the backend only keeps non-owning references to them.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Layout box in local units. Zero size means the node has no box of its
	// own (a pure container).
	Width, Height float64

	// Appearance
	Alpha float64
	Color Color

	// Visibility & interaction
	Visible      bool
	Interactable bool
	ZIndex       int

	// Hit testing
	HitShape HitShape

	// Metadata
	UserData any

	// Internal
	listeners      listenerRegistry
	observers      []*ChildListObserver
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.childrenSorted = true
}

// NewContainer creates a node with no layout box.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewBox creates an interactable node with a solid-color layout box of the
// given size.
func NewBox(name string, width, height float64, c Color) *Node {
	n := &Node{Name: name, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = c
	n.Interactable = true
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.insertChild(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if index < 0 || index > len(n.children) {
		panic("pointerdnd: child index out of range")
	}
	n.insertChild(child, index)
}

func (n *Node) insertChild(child *Node, index int) {
	if child == nil {
		panic("pointerdnd: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("pointerdnd: adding child would create a cycle")
	}
	if child.Parent != nil {
		old := child.Parent
		old.removeChildByPtr(child)
		old.childrenSorted = false
		old.notifyChildList(nil, child)
		if old == n && index > len(n.children) {
			index = len(n.children)
		}
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	n.notifyChildList(child, nil)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("pointerdnd: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	n.notifyChildList(nil, child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("pointerdnd: child index out of range")
	}
	child := n.children[index]
	n.RemoveChild(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	if len(n.children) == 0 {
		return
	}
	removed := make([]*Node, len(n.children))
	copy(removed, n.children)
	for i, child := range n.children {
		child.Parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.childrenSorted = true
	n.notifyChildList(nil, removed...)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// AddEventListener registers fn for events of type t that reach this node.
// Capture listeners run on the way down from the root, the others on the
// target and on the way back up.
func (n *Node) AddEventListener(t EventType, fn func(*PointerEvent), capture bool) ListenerHandle {
	return n.listeners.add(t, capture, fn)
}

// Clone returns a detached deep copy of the node and its subtree. Listeners,
// observers and identity are not copied.
func (n *Node) Clone() *Node {
	c := &Node{
		ID:             nextNodeID(),
		Name:           n.Name,
		X:              n.X,
		Y:              n.Y,
		ScaleX:         n.ScaleX,
		ScaleY:         n.ScaleY,
		Rotation:       n.Rotation,
		PivotX:         n.PivotX,
		PivotY:         n.PivotY,
		Width:          n.Width,
		Height:         n.Height,
		Alpha:          n.Alpha,
		Color:          n.Color,
		Visible:        n.Visible,
		Interactable:   n.Interactable,
		ZIndex:         n.ZIndex,
		HitShape:       n.HitShape,
		UserData:       n.UserData,
		childrenSorted: true,
	}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			cc := child.Clone()
			cc.Parent = c
			c.children[i] = cc
		}
		c.childrenSorted = false
	}
	return c
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	for _, o := range n.observers {
		o.target = nil
	}
	n.observers = nil
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
	n.listeners = listenerRegistry{}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// sortedChildList returns the children in ZIndex order, rebuilding the
// cached order when the child list changed.
// Uses insertion sort: stable and O(n) when already sorted.
func (n *Node) sortedChildList() []*Node {
	if n.childrenSorted && n.sortedChildren != nil && len(n.sortedChildren) == len(n.children) {
		return n.sortedChildren
	}
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
	return n.sortedChildren
}
