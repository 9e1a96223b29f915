package ecs

import (
	"iter"
	"testing"

	"github.com/phanxgames/tactile"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tactile.ManipulationEvent
	ManipulationEventType.Subscribe(world, func(w donburi.World, e tactile.ManipulationEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(tactile.ManipulationEvent{
		Type:      tactile.EventMove,
		ElementID: 42,
		X:         100,
		Y:         200,
		DeltaX:    3,
		DeltaY:    -4,
	})

	sink.EmitEvent(tactile.ManipulationEvent{
		Type:        tactile.EventClick,
		ElementName: "ok",
		Tick:        7,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	ManipulationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != tactile.EventMove || e0.ElementID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 || e0.DeltaX != 3 || e0.DeltaY != -4 {
		t.Errorf("event 0 position: %+v", e0)
	}

	e1 := received[1]
	if e1.Type != tactile.EventClick || e1.ElementName != "ok" || e1.Tick != 7 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_FromManipulator(t *testing.T) {
	world := donburi.NewWorld()

	var received []tactile.ManipulationEvent
	ManipulationEventType.Subscribe(world, func(w donburi.World, e tactile.ManipulationEvent) {
		received = append(received, e)
	})

	screen := tactile.NewLayout("screen", tactile.LayoutFree, tactile.NewBoundingBox(0, 0, 100, 100))
	panel := tactile.NewLayout("panel", tactile.LayoutFree, tactile.NewBoundingBox(10, 10, 20, 20))
	panel.SetMovable(true)
	screen.AddChild(panel)

	m := tactile.NewManipulator(func() iter.Seq[tactile.Element] {
		return tactile.Movables(tactile.TopmostFirst(screen))
	}, tactile.WithEventSink(NewDonburiSink(world)))
	m.Tick(1, []tactile.Point{{X: 15, Y: 15}})
	ManipulationEventType.ProcessEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].Type != tactile.EventMove || received[0].ElementName != "panel" {
		t.Errorf("event: %+v", received[0])
	}
}
