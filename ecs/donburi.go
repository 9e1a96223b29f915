// Package ecs provides ECS adapters for tactile.
package ecs

import (
	"github.com/phanxgames/tactile"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ManipulationEventType carries every move and click a Manipulator applies.
// Each event names the element by ID and name, the touch point behind it, and
// the element's box before and after along with the realized delta.
var ManipulationEventType = events.NewEventType[tactile.ManipulationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink for tactile.WithEventSink. Events are
// queued on world; systems see them after ManipulationEventType.ProcessEvents
// runs, typically once per frame after Manipulator.Tick.
func NewDonburiSink(world donburi.World) tactile.EventSink {
	return &donburiSink{world: world}
}

// EmitEvent queues event on the world.
func (s *donburiSink) EmitEvent(event tactile.ManipulationEvent) {
	ManipulationEventType.Publish(s.world, event)
}
