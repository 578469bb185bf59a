package pointerdnd

// pointerTracker holds the pointer-down baseline of the current interaction.
type pointerTracker struct {
	last Vec2
	has  bool
}

// record stores offset as the baseline. Offsets with non-finite
// coordinates are ignored.
func (t *pointerTracker) record(offset Vec2) {
	if !offset.valid() {
		return
	}
	t.last = offset
	t.has = true
}

func (t *pointerTracker) hasBaseline() bool {
	return t.has
}

func (t *pointerTracker) baseline() Vec2 {
	return t.last
}

// reset clears the baseline; called whenever a drag session ends.
func (t *pointerTracker) reset() {
	t.last = Vec2{}
	t.has = false
}
