// Package ecs provides a drag coordinator backed by a [Donburi] world.
//
// [Coordinator] implements [pointerdnd.Manager]: it owns the canonical drag
// state as a singleton component and publishes every drag action as a typed
// [DragEvent]. Subscribe to [DragEventType] in your ECS systems to react to
// drags and drops.
//
// Usage:
//
//	world := donburi.NewWorld()
//	coord := ecs.NewCoordinator(world)
//	backend := pointerdnd.New(coord, host)
//	if err := backend.Setup(); err != nil { ... }
//
//	id := coord.RegisterSource(ecs.SourceSpec{Item: card})
//	defer backend.ConnectDragSource(id, cardNode)()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
