package tactile

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int32  `json:"x,omitempty"`
	Y      int32  `json:"y,omitempty"`
	FromX  int32  `json:"fromX,omitempty"`
	FromY  int32  `json:"fromY,omitempty"`
	ToX    int32  `json:"toX,omitempty"`
	ToY    int32  `json:"toY,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Screenshotter captures a labeled snapshot of the display.
type Screenshotter interface {
	Screenshot(label string)
}

// TestRunner sequences injected touches and screenshots across ticks for
// automated testing. Call Step once per tick before reading touches.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
//
//	{"steps": [
//		{"action": "tap", "x": 40, "y": 40},
//		{"action": "drag", "fromX": 40, "fromY": 40, "toX": 120, "toY": 40, "ticks": 10},
//		{"action": "wait", "ticks": 5},
//		{"action": "screenshot", "label": "after-drag"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tap", "hold", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and their touches
// consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one tick, queueing touches on src. shots may be
// nil, in which case screenshot steps are skipped.
func (r *TestRunner) Step(src *InjectedTouches, shots Screenshotter) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if src.Pending() > 0 {
		return
	}
	// Count down wait ticks.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if shots != nil {
			shots.Screenshot(st.Label)
		}
	case "tap":
		src.InjectTap(st.X, st.Y)
	case "hold":
		src.InjectHold(st.X, st.Y, st.Ticks)
	case "drag":
		src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Ticks)
	case "wait":
		if st.Ticks > 0 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && src.Pending() == 0 {
		r.done = true
	}
}
