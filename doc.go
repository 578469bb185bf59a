// Package pointerdnd is a pointer-driven drag-and-drop backend for a
// retained-mode 2D node tree rendered with [Ebitengine].
//
// A [Host] owns the node tree and plays the part of the window: it turns
// raw pointer samples into pointer-down, pointer-move, pointer-up and click
// events and propagates them through the tree in capture, target and bubble
// phases. A [Backend] listens on the host and translates those events into
// actions on an external drag coordinator (a [Manager]); the coordinator
// owns the canonical drag state and the backend re-queries it on every
// transition.
//
// # Quick start
//
//	host := pointerdnd.NewHost()
//	coord := ecs.NewCoordinator(donburi.NewWorld())
//	backend := pointerdnd.New(coord, host)
//	if err := backend.Setup(); err != nil {
//		log.Fatal(err)
//	}
//	defer backend.Teardown()
//
//	card := pointerdnd.NewBox("card", 80, 40, pointerdnd.ColorWhite)
//	host.Root().AddChild(card)
//	backend.ConnectDragSource(coord.RegisterSource(ecs.SourceSpec{Item: card}), card)
//
//	pointerdnd.Run(host, pointerdnd.RunConfig{Title: "cards", Width: 640, Height: 480})
//
// # Drag lifecycle
//
// A pointer-down collects the ids of every connected source under the
// pointer, innermost first. The first pointer-move away from the
// pointer-down position begins the drag with that candidate list; a
// translucent clone of the primary source follows the pointer until
// pointer-up, which drops and ends the session. Drop targets are matched by
// their bounding rectangles, edges included. [WithDragThreshold] adds a
// dead zone before a drag begins.
//
// If the dragged source is detached from the tree mid-drag, the backend
// hides it and keeps it under the root so offset queries against it keep
// working for the rest of the session.
//
// # Other hosts
//
// The host samples the ebiten cursor in [Host.Update] by default. Hosts fed
// from elsewhere (a terminal via package termhost, a script, tests) call
// [Host.SetCursorInput] with false and deliver samples through
// [Host.FeedPointer] or the Inject methods.
//
// [Ebitengine]: https://ebitengine.org
package pointerdnd
