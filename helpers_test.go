package tactile

import "fmt"

// recordingRenderer logs every paint call as a short string.
type recordingRenderer struct {
	ops []string
}

func (r *recordingRenderer) FillRect(box BoundingBox, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("fill %v", box))
}

func (r *recordingRenderer) StrokeRect(box BoundingBox, width int, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("stroke %v %d", box, width))
}

func (r *recordingRenderer) ClearRect(box BoundingBox) {
	r.ops = append(r.ops, fmt.Sprintf("clear %v", box))
}

func (r *recordingRenderer) reset() { r.ops = r.ops[:0] }

// recordingMetrics counts calls made through the Metrics interface.
type recordingMetrics struct {
	ticks   int
	samples int
	traces  int
	evicted int
	dropped map[DropReason]int
	moved   int
	clicked int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{dropped: map[DropReason]int{}}
}

func (m *recordingMetrics) TickProcessed(samples, traces int) {
	m.ticks++
	m.samples = samples
	m.traces = traces
}

func (m *recordingMetrics) SamplesEvicted(n int)           { m.evicted += n }
func (m *recordingMetrics) TraceDropped(reason DropReason) { m.dropped[reason]++ }
func (m *recordingMetrics) ElementMoved()                  { m.moved++ }
func (m *recordingMetrics) ElementClicked()                { m.clicked++ }

// screenWithPanel builds a 100x100 free screen holding a movable 20x20 panel
// at (10,10) with one button child.
func screenWithPanel() (*Layout, *Layout, *Button) {
	screen := NewLayout("screen", LayoutFree, NewBoundingBox(0, 0, 100, 100))
	panel := NewLayout("panel", LayoutFree, NewBoundingBox(10, 10, 20, 20))
	panel.SetMovable(true)
	btn := NewButton("btn", NewBoundingBox(12, 12, 6, 6), nil)
	panel.AddChild(btn)
	screen.AddChild(panel)
	return screen, panel, btn
}
