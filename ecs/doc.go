// Package ecs forwards tactile manipulation events into a [Donburi] world.
//
// A drag or tap handled by a Manipulator becomes a [tactile.ManipulationEvent]
// published on [ManipulationEventType], so game systems can react to moved
// panels and clicked buttons without holding references to the elements:
//
//	sink := ecs.NewDonburiSink(world)
//	m := tactile.NewManipulator(candidates, tactile.WithEventSink(sink))
//	ecs.ManipulationEventType.Subscribe(world, onManipulated)
//
//	// each frame
//	m.Tick(tick, touches)
//	ecs.ManipulationEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
