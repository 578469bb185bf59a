package pointerdnd

// dragPreview is the translucent clone that follows the pointer during a
// drag session.
type dragPreview struct {
	node     *Node
	offset   PreviewOptions
	disposed bool
}

// presentPreview clones template, sizes the clone to the template's rendered
// size, makes it translucent and non-interactable, and inserts it at the
// root of the host tree above everything else.
func presentPreview(h *Host, template *Node, at Vec2, opts PreviewOptions, alpha float64, z int) *dragPreview {
	size := template.Bounds()

	c := template.Clone()
	c.X, c.Y = 0, 0
	c.ScaleX, c.ScaleY = 1, 1
	c.Rotation = 0
	c.PivotX, c.PivotY = 0, 0
	c.Width, c.Height = size.Width, size.Height
	c.Alpha = alpha
	c.Visible = true
	c.Interactable = false
	c.Name = template.Name + "-preview"
	h.root.AddChild(c)
	c.SetZIndex(z)

	p := &dragPreview{node: c, offset: opts}
	p.moveTo(at)
	return p
}

// moveTo centres the preview on the pointer offset.
func (p *dragPreview) moveTo(at Vec2) {
	if p.disposed {
		return
	}
	left := at.X - p.node.Width/2 + p.offset.OffsetX
	top := at.Y - p.node.Height/2 + p.offset.OffsetY
	if parent := p.node.Parent; parent != nil {
		left, top = parent.WorldToLocal(left, top)
	}
	p.node.SetPosition(left, top)
}

// dispose removes the preview from the tree. Safe to call more than once.
func (p *dragPreview) dispose() {
	if p == nil || p.disposed {
		return
	}
	p.disposed = true
	p.node.Dispose()
}
