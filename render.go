package pointerdnd

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to draw node boxes.
// Created lazily so that headless hosts never allocate GPU resources.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Draw renders the tree in painter order (depth-first, ZIndex-sorted
// children) onto screen. Each visible node with a layout box is drawn as a
// solid quad tinted by its Color and accumulated alpha.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.ClearColor.A > 0 {
		screen.Fill(h.ClearColor.toRGBA())
	}
	h.drawNode(screen, h.root, identityTransform, 1)
}

func (h *Host) drawNode(screen *ebiten.Image, n *Node, parent [6]float64, parentAlpha float64) {
	if !n.Visible {
		return
	}
	world := multiplyAffine(parent, computeLocalTransform(n))
	alpha := parentAlpha * n.Alpha

	if n.Width > 0 && n.Height > 0 && n.Color.A > 0 && alpha > 0 {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(geoM(world))
		a := float32(n.Color.A * alpha)
		op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
		screen.DrawImage(solidPixel(), &op)
	}

	for _, child := range n.sortedChildList() {
		h.drawNode(screen, child, world, alpha)
	}
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Walk visits every visible node in painter order together with its
// accumulated alpha. Renderers other than Draw (a terminal, a debug dump)
// use it to paint the tree.
func (h *Host) Walk(fn func(n *Node, alpha float64)) {
	walkVisible(h.root, 1, fn)
}

func walkVisible(n *Node, parentAlpha float64, fn func(*Node, float64)) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	fn(n, alpha)
	for _, child := range n.sortedChildList() {
		walkVisible(child, alpha, fn)
	}
}
