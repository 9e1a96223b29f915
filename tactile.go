package tactile

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default foreground.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent black. Renderers treat a zero-alpha
// fill as a no-op; use Renderer.ClearRect to erase.
var ColorTransparent = Color{}

// RGBA returns the premultiplied 8-bit form of c.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Lerp blends c toward other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is a raw touch reading in device pixels.
type Point struct {
	X, Y int32
}

// Reference thresholds for aging and clustering.
const (
	DefaultMaxAge          uint64 = 500 // ticks a sample stays in the history
	DefaultClusterDistance int32  = 8   // linear distance below which samples join a trace
)

// EventType identifies a kind of manipulation event.
type EventType uint8

const (
	EventMove  EventType = iota // fires after an element was moved as a drag origin
	EventClick                  // fires when a tap invoked an element's click action
)

// String returns the lower-case event name.
func (e EventType) String() string {
	switch e {
	case EventMove:
		return "move"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}

// DeltaMode selects how a trace is turned into a movement vector.
type DeltaMode uint8

const (
	// DeltaLastPoint passes the raw coordinates of the trace's last sample as
	// the displacement.
	DeltaLastPoint DeltaMode = iota
	// DeltaLastStep passes the difference between the trace's last two
	// samples, and only when the last one was recorded on the current tick.
	DeltaLastStep
)

// String returns the config spelling of the mode.
func (m DeltaMode) String() string {
	switch m {
	case DeltaLastStep:
		return "last_step"
	default:
		return "last_point"
	}
}

// ParseDeltaMode parses the config spelling produced by DeltaMode.String.
func ParseDeltaMode(s string) (DeltaMode, bool) {
	switch s {
	case "", "last_point":
		return DeltaLastPoint, true
	case "last_step":
		return DeltaLastStep, true
	}
	return DeltaLastPoint, false
}
