package tactile

// TouchSource supplies the touch points active on the current tick.
type TouchSource interface {
	// AppendTouches appends the active touch points to buf and returns the
	// extended slice.
	AppendTouches(buf []Point) []Point
}

// InjectedTouches is a queue of synthetic touch frames. Each call to
// AppendTouches consumes one frame, so one frame is one tick.
type InjectedTouches struct {
	frames [][]Point
}

// InjectFrame queues a single frame with the given touch points. An empty
// frame is a tick with no touches.
func (q *InjectedTouches) InjectFrame(points ...Point) {
	frame := make([]Point, len(points))
	copy(frame, points)
	q.frames = append(q.frames, frame)
}

// InjectTap queues a one-tick touch at (x, y).
func (q *InjectedTouches) InjectTap(x, y int32) {
	q.InjectFrame(Point{X: x, Y: y})
}

// InjectHold queues a stationary touch at (x, y) lasting ticks frames.
func (q *InjectedTouches) InjectHold(x, y int32, ticks int) {
	for range max(ticks, 1) {
		q.InjectFrame(Point{X: x, Y: y})
	}
}

// InjectDrag queues a touch moving from (fromX, fromY) to (toX, toY),
// linearly interpolated over ticks frames. Both endpoints are included, so
// the minimum is 2 frames.
func (q *InjectedTouches) InjectDrag(fromX, fromY, toX, toY int32, ticks int) {
	if ticks < 2 {
		ticks = 2
	}
	steps := int64(ticks - 1)
	for i := range int64(ticks) {
		x := int64(fromX) + (int64(toX)-int64(fromX))*i/steps
		y := int64(fromY) + (int64(toY)-int64(fromY))*i/steps
		q.InjectFrame(Point{X: int32(x), Y: int32(y)})
	}
}

// Pending returns the number of queued frames.
func (q *InjectedTouches) Pending() int {
	return len(q.frames)
}

// AppendTouches pops the next frame and appends its points to buf. With an
// empty queue it returns buf unchanged.
func (q *InjectedTouches) AppendTouches(buf []Point) []Point {
	if len(q.frames) == 0 {
		return buf
	}
	frame := q.frames[0]
	copy(q.frames, q.frames[1:])
	q.frames[len(q.frames)-1] = nil
	q.frames = q.frames[:len(q.frames)-1]
	return append(buf, frame...)
}

// MergeSources returns a TouchSource that appends the touches of every
// source in order.
func MergeSources(sources ...TouchSource) TouchSource {
	return mergedSource(sources)
}

type mergedSource []TouchSource

func (m mergedSource) AppendTouches(buf []Point) []Point {
	for _, src := range m {
		if src != nil {
			buf = src.AppendTouches(buf)
		}
	}
	return buf
}
