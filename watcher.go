package pointerdnd

// removalWatcher keeps the dragged source node alive when something else
// detaches it from the tree mid-drag. It observes the node's parent; when a
// child-list change leaves the node without a parent, the node is hidden and
// reparented to the host root so geometry queries against it keep working.
// Each installation fires at most once.
type removalWatcher struct {
	host     *Host
	node     *Node
	observer *ChildListObserver

	// onResurrect, when set, is called after a node has been resurrected.
	onResurrect func(*Node)
}

// watch replaces any previous watch with one on node. A nil or detached
// node is held but not observed.
func (w *removalWatcher) watch(node *Node) {
	w.unwatch()
	w.node = node
	if node == nil || node.Parent == nil || w.host == nil {
		return
	}
	w.observer = w.host.ObserveChildList(node.Parent, func([]ChildListRecord) {
		if node.Parent != nil {
			return
		}
		w.resurrect(node)
		w.unwatch()
	})
}

// unwatch disconnects observation and clears the held node.
func (w *removalWatcher) unwatch() {
	if w.observer != nil {
		w.observer.Disconnect()
	}
	w.observer = nil
	w.node = nil
}

func (w *removalWatcher) watching() *Node {
	return w.node
}

func (w *removalWatcher) resurrect(node *Node) {
	if node.IsDisposed() {
		return
	}
	node.Visible = false
	w.host.root.AddChild(node)
	if w.onResurrect != nil {
		w.onResurrect(node)
	}
}
