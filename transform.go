package pointerdnd

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY
	sin, cos := math.Sincos(n.Rotation)

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// worldTransform composes the local transforms from the root down to n.
// Nothing is cached: layout may change between calls.
func (n *Node) worldTransform() [6]float64 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(computeLocalTransform(p), m)
	}
	return m
}

// worldAlpha multiplies Alpha along the parent chain.
func (n *Node) worldAlpha() float64 {
	a := n.Alpha
	for p := n.Parent; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetSize sets the node's layout box.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// --- Coordinate conversion ---

// WorldToLocal converts a viewport point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(n.worldTransform())
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to viewport space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldTransform(), lx, ly)
}

// Bounds returns the node's bounding rectangle in viewport space: the
// axis-aligned box around its transformed layout box.
func (n *Node) Bounds() Rect {
	m := n.worldTransform()
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, n.Width, 0)
	x2, y2 := transformPoint(m, 0, n.Height)
	x3, y3 := transformPoint(m, n.Width, n.Height)
	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// hasBox reports whether n has geometry of its own.
func (n *Node) hasBox() bool {
	return n.Width != 0 || n.Height != 0 || n.HitShape != nil
}

// ClientOffset returns the top-left viewport coordinate of the bounding
// rectangle of n, or of its nearest ancestor with a layout box when n has
// none. It reports false when no such node exists.
func ClientOffset(n *Node) (Vec2, bool) {
	for p := n; p != nil; p = p.Parent {
		if p.disposed {
			return Vec2{}, false
		}
		if p.hasBox() {
			b := p.Bounds()
			return Vec2{X: b.X, Y: b.Y}, true
		}
	}
	return Vec2{}, false
}
