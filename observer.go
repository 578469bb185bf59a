package pointerdnd

import "fmt"

// ChildListRecord describes one change to a node's child list.
type ChildListRecord struct {
	Target  *Node   // node whose child list changed
	Added   []*Node // children inserted by this change
	Removed []*Node // children detached by this change
}

// ChildListObserver receives batched child-list changes for one node.
// Records are queued on the host and delivered at the next checkpoint
// (before and after every pointer event, and in Host.Update), never while a
// pointer handler is running.
type ChildListObserver struct {
	host    *Host
	target  *Node
	fn      func([]ChildListRecord)
	pending []ChildListRecord
	queued  bool
	active  bool
}

// ObserveChildList subscribes fn to child-list changes on node.
func (h *Host) ObserveChildList(node *Node, fn func([]ChildListRecord)) *ChildListObserver {
	o := &ChildListObserver{host: h, target: node, fn: fn, active: true}
	if node != nil {
		node.observers = append(node.observers, o)
	}
	return o
}

// Disconnect stops observation and drops any undelivered records.
// Calling Disconnect more than once is a no-op.
func (o *ChildListObserver) Disconnect() {
	if o == nil || !o.active {
		return
	}
	o.active = false
	o.pending = nil
	if o.target != nil {
		obs := o.target.observers
		for i, x := range obs {
			if x == o {
				copy(obs[i:], obs[i+1:])
				obs[len(obs)-1] = nil
				o.target.observers = obs[:len(obs)-1]
				break
			}
		}
		o.target = nil
	}
}

// notifyChildList queues a record on every observer of n.
func (n *Node) notifyChildList(added *Node, removed ...*Node) {
	if len(n.observers) == 0 {
		return
	}
	rec := ChildListRecord{Target: n, Removed: removed}
	if added != nil {
		rec.Added = []*Node{added}
	}
	for _, o := range n.observers {
		o.pending = append(o.pending, rec)
		if !o.queued && o.host != nil {
			o.queued = true
			o.host.observerQueue = append(o.host.observerQueue, o)
		}
	}
}

// deliverRecords flushes queued child-list records to their observers in
// the order the observers were first notified. Observers may queue further
// records while running; those are delivered in the same flush.
func (h *Host) deliverRecords() {
	for len(h.observerQueue) > 0 {
		o := h.observerQueue[0]
		copy(h.observerQueue, h.observerQueue[1:])
		h.observerQueue[len(h.observerQueue)-1] = nil
		h.observerQueue = h.observerQueue[:len(h.observerQueue)-1]

		o.queued = false
		if !o.active || len(o.pending) == 0 {
			continue
		}
		records := o.pending
		o.pending = nil
		h.runObserver(o, records)
	}
}

// runObserver isolates a failing callback so that pointer handling and the
// remaining observers keep running.
func (h *Host) runObserver(o *ChildListObserver, records []ChildListRecord) {
	defer func() {
		if r := recover(); r != nil {
			h.debugf("recovered child-list observer panic: %v", r)
		}
	}()
	o.fn(records)
}

func (h *Host) debugf(format string, args ...any) {
	if !h.debug {
		return
	}
	debugLog(fmt.Sprintf(format, args...))
}
