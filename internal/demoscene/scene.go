// Package demoscene builds the card-and-bin board shared by the demos.
package demoscene

import (
	"fmt"

	"github.com/phanxgames/pointerdnd"
	"github.com/phanxgames/pointerdnd/ecs"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Layout scales the board. The ebiten demo uses pixels, the terminal demo
// uses cells.
type Layout struct {
	Unit   pointerdnd.Vec2 // size of one board unit in viewport units
	Origin pointerdnd.Vec2
}

var (
	cardColors = []pointerdnd.Color{
		{R: 0.9, G: 0.3, B: 0.3, A: 1},
		{R: 0.3, G: 0.7, B: 0.9, A: 1},
		{R: 0.3, G: 0.9, B: 0.5, A: 1},
	}
	binColor    = pointerdnd.Color{R: 0.25, G: 0.22, B: 0.32, A: 1}
	badgeColor  = pointerdnd.Color{R: 1, G: 0.85, B: 0.2, A: 1}
	settleSpeed = float32(0.25)
	fadeSpeed   = float32(0.15)

	// draggingAlpha dims a source while its preview is out.
	draggingAlpha = 0.4
)

// Board is a running demo: cards that can be dragged into bins.
type Board struct {
	Host    *pointerdnd.Host
	Backend *pointerdnd.Backend
	Coord   *ecs.Coordinator
	World   donburi.World

	layout    Layout
	cards     map[string]*pointerdnd.Node
	bins      map[string]*pointerdnd.Node
	anim      pointerdnd.Animator
	disposers []func()
}

// Build creates the board on host and sets up a backend with opts.
func Build(host *pointerdnd.Host, layout Layout, opts ...pointerdnd.Option) (*Board, error) {
	world := donburi.NewWorld()
	coord := ecs.NewCoordinator(world)
	backend := pointerdnd.New(coord, host, opts...)
	if err := backend.Setup(); err != nil {
		return nil, err
	}

	b := &Board{
		Host:    host,
		Backend: backend,
		Coord:   coord,
		World:   world,
		layout:  layout,
		cards:   make(map[string]*pointerdnd.Node),
		bins:    make(map[string]*pointerdnd.Node),
	}

	for i := 0; i < 2; i++ {
		bin := b.box(fmt.Sprintf("bin%d", i), 2+float64(i)*14, 10, 12, 8, binColor)
		host.Root().AddChild(bin)
		id := coord.RegisterTarget(ecs.TargetSpec{
			Drop: func(item any) any { return bin },
		})
		b.bins[id] = bin
		b.disposers = append(b.disposers, backend.ConnectDropTarget(id, bin))
	}

	var first *pointerdnd.Node
	for i, c := range cardColors {
		card := b.box(fmt.Sprintf("card%d", i), 2+float64(i)*8, 1, 6, 4, c)
		host.Root().AddChild(card)
		b.addSource(card)
		if i == 0 {
			first = card
		}
	}

	// The first card carries a badge that is a source of its own, so a
	// press on the badge drags the badge and a press beside it drags the card.
	badge := pointerdnd.NewBox("badge", 2*layout.Unit.X, 2*layout.Unit.Y, badgeColor)
	badge.SetPosition(4*layout.Unit.X, 1*layout.Unit.Y)
	first.AddChild(badge)
	b.addSource(badge)

	ecs.DragEventType.Subscribe(world, b.onDragEvent)
	return b, nil
}

func (b *Board) box(name string, x, y, w, h float64, c pointerdnd.Color) *pointerdnd.Node {
	u := b.layout.Unit
	n := pointerdnd.NewBox(name, w*u.X, h*u.Y, c)
	n.SetPosition(b.layout.Origin.X+x*u.X, b.layout.Origin.Y+y*u.Y)
	return n
}

func (b *Board) addSource(n *pointerdnd.Node) {
	id := b.Coord.RegisterSource(ecs.SourceSpec{Item: n})
	b.cards[id] = n
	b.disposers = append(b.disposers, b.Backend.ConnectDragSource(id, n))
}

// Update advances input, drag events and animations by one frame.
func (b *Board) Update(dt float32) {
	b.Host.Update()
	ecs.DragEventType.ProcessEvents(b.World)
	b.anim.Update(dt)
}

// onDragEvent dims a source while it is dragged and settles dropped items
// into their bin.
func (b *Board) onDragEvent(_ donburi.World, e ecs.DragEvent) {
	card, ok := e.Item.(*pointerdnd.Node)
	if !ok || card.IsDisposed() {
		return
	}
	switch e.Kind {
	case ecs.DragBegin:
		b.anim.Fade(card, draggingAlpha, fadeSpeed, ease.Linear)
	case ecs.DragEnd:
		b.anim.Fade(card, 1, fadeSpeed, ease.Linear)
	case ecs.DragDrop:
		if bin, ok := e.DropResult.(*pointerdnd.Node); ok && e.DidDrop {
			b.settle(card, bin)
		}
	}
}

func (b *Board) settle(card, bin *pointerdnd.Node) {
	// Keep the card where it was on screen, then ease it to its slot.
	before := card.Bounds()
	bin.AddChild(card)
	card.Visible = true
	lx, ly := bin.WorldToLocal(before.X, before.Y)
	card.SetPosition(lx, ly)

	slot := float64(bin.NumChildren() - 1)
	u := b.layout.Unit
	toX := u.X + slot*u.X
	toY := u.Y + slot*u.Y
	b.anim.Move(card, toX, toY, settleSpeed, ease.OutCubic)
}

// Settled reports whether all animations have finished.
func (b *Board) Settled() bool {
	return b.anim.Len() == 0
}

// Close disconnects every node and detaches the backend.
func (b *Board) Close() {
	for _, d := range b.disposers {
		d()
	}
	b.disposers = nil
	b.Backend.Teardown()
}
