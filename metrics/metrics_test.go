package metrics

import (
	"iter"
	"testing"

	"github.com/phanxgames/tactile"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

// gathered returns the value of the first sample of the named family, summing
// counters across label values.
func gathered(reg *prometheus.Registry, name string) (float64, bool) {
	families, err := reg.Gather()
	if err != nil {
		return 0, false
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		return total, true
	}
	return 0, false
}

func TestCollectorOptions(t *testing.T) {
	Convey("Given collector options", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When creating with a custom namespace", func() {
			c := NewCollector(
				WithNamespace("panel"),
				WithSubsystem("touch"),
				WithTraceBuckets([]float64{1, 2}),
				WithRegistry(registry),
			)
			c.ElementMoved()

			Convey("Then metric names should use it", func() {
				v, ok := gathered(registry, "panel_touch_element_moves_total")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 1)
			})
		})

		Convey("When empty values are passed", func() {
			c := NewCollector(WithNamespace(""), WithSubsystem(""), WithTraceBuckets(nil), WithRegistry(registry))

			Convey("Then defaults should be kept", func() {
				So(c.namespace, ShouldEqual, "tactile")
				So(c.subsystem, ShouldEqual, "manipulator")
				So(len(c.traceBuckets), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestCollectorRecording(t *testing.T) {
	Convey("Given a collector on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		c := NewCollector(WithRegistry(registry))

		Convey("When ticks are processed", func() {
			c.TickProcessed(4, 2)
			c.TickProcessed(3, 1)

			Convey("Then ticks are counted and the sample gauge holds the latest value", func() {
				ticks, _ := gathered(registry, "tactile_manipulator_ticks_total")
				samples, _ := gathered(registry, "tactile_manipulator_history_samples")
				traces, _ := gathered(registry, "tactile_manipulator_traces_per_tick")
				So(ticks, ShouldEqual, 2)
				So(samples, ShouldEqual, 3)
				So(traces, ShouldEqual, 2)
			})
		})

		Convey("When samples are evicted", func() {
			c.SamplesEvicted(5)
			c.SamplesEvicted(0)

			Convey("Then only positive counts are added", func() {
				v, _ := gathered(registry, "tactile_manipulator_samples_evicted_total")
				So(v, ShouldEqual, 5)
			})
		})

		Convey("When traces are dropped for different reasons", func() {
			c.TraceDropped(tactile.DropNoHit)
			c.TraceDropped(tactile.DropNoHit)
			c.TraceDropped(tactile.DropNotMovable)

			Convey("Then each reason gets its own series", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				byReason := map[string]float64{}
				for _, mf := range families {
					if mf.GetName() != "tactile_manipulator_traces_dropped_total" {
						continue
					}
					for _, m := range mf.GetMetric() {
						for _, lp := range m.GetLabel() {
							if lp.GetName() == "reason" {
								byReason[lp.GetValue()] = m.GetCounter().GetValue()
							}
						}
					}
				}
				So(byReason["no_hit"], ShouldEqual, 2)
				So(byReason["not_movable"], ShouldEqual, 1)
			})
		})

		Convey("When a manipulator reports through the collector", func() {
			box := tactile.NewLayout("box", tactile.LayoutFree, tactile.NewBoundingBox(0, 0, 20, 20))
			box.SetMovable(true)
			m := tactile.NewManipulator(func() iter.Seq[tactile.Element] {
				return tactile.Candidates(box)
			}, tactile.WithMetrics(c))
			m.Tick(1, []tactile.Point{{X: 5, Y: 5}})
			m.Tick(2, []tactile.Point{{X: 500, Y: 500}})

			Convey("Then moves and drops are both recorded", func() {
				moved, _ := gathered(registry, "tactile_manipulator_element_moves_total")
				ticks, _ := gathered(registry, "tactile_manipulator_ticks_total")
				So(moved, ShouldBeGreaterThanOrEqualTo, 1)
				So(ticks, ShouldEqual, 2)
			})
		})
	})
}
