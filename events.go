package tactile

// EventSink receives manipulation events, for example to forward them to an
// ECS world. It is optional.
type EventSink interface {
	EmitEvent(event ManipulationEvent)
}

// ManipulationEvent describes a click or move applied by a Manipulator.
type ManipulationEvent struct {
	Type        EventType
	ElementID   uint32
	ElementName string

	// X, Y is the touch point that produced the event: the tap position for
	// clicks, the trace's last sample for moves.
	X, Y int32

	// DeltaX, DeltaY is the realized displacement of the element (zero for
	// clicks). It can differ from the requested one when the element was
	// clamped to its outer box.
	DeltaX, DeltaY int32

	Before, After BoundingBox
	Tick          uint64
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ManipulationEvent)

// EmitEvent calls f.
func (f EventSinkFunc) EmitEvent(event ManipulationEvent) { f(event) }

func (m *Manipulator) emit(event ManipulationEvent) {
	if m.sink == nil {
		return
	}
	m.sink.EmitEvent(event)
}
