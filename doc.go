// Package tactile is a touch-driven direct-manipulation engine for small
// embedded displays.
//
// Tactile turns a stream of raw touch readings into gestures, finds the
// on-screen element a gesture started on, and moves that element while
// keeping it inside its parent.
//
// # Quick start
//
// The simplest way to try it is [Run], which opens an [Ebitengine] window and
// drives the pipeline from its touch input:
//
//	screen := tactile.NewLayout("screen", tactile.LayoutFree, tactile.NewBoundingBox(0, 0, 480, 272))
//	panel := tactile.NewLayout("panel", tactile.LayoutVertical, tactile.NewBoundingBox(20, 20, 160, 120))
//	panel.SetMovable(true)
//	screen.AddChild(panel)
//	tactile.Run(screen, tactile.RunConfig{Title: "demo", MouseAsTouch: true})
//
// On real hardware, skip Run and call [Manipulator.Tick] from the main loop
// with the tick counter and the points read from the touch controller:
//
//	m := tactile.NewManipulator(func() iter.Seq[tactile.Element] {
//		return tactile.Movables(tactile.TopmostFirst(screen))
//	})
//	for {
//		m.Tick(clock.Ticks(), readTouches())
//	}
//
// # Pipeline
//
// Each tick runs four steps in order:
//
//   - [TouchHistory.Update] drops samples older than the max age (500 ticks
//     by default) and appends the new readings.
//   - [ClusterSamples] groups the surviving samples into [GestureTrace]s by
//     proximity (closer than 8 pixels to a trace's last point).
//   - [FindHit] resolves each trace's first point against the candidate
//     sequence; the first match wins.
//   - A movable hit gets [Element.MoveForm] as the drag origin, which clamps
//     the element to the outer box its owner supplied and moves its children
//     rigidly by the realized displacement.
//
// Traces are recomputed from scratch every tick. A drag is just repeated
// proximity matching; a touch that stops simply ages out.
//
// # Elements
//
// [Element] is a capability interface: a bounding box, an optional
// [Clickable], a movable flag, and ordered children. [Button] and [Layout]
// are the built-in kinds. Elements paint through a [Renderer]; [Canvas] is
// the ebiten-backed one.
//
// Configuration loading lives in the config package, Prometheus metrics in
// the metrics package, and an ECS event bridge in the ecs module.
//
// [Ebitengine]: https://ebitengine.org
package tactile
