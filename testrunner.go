package orbital

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	DX     float32 `json:"dx,omitempty"`
	DY     float32 `json:"dy,omitempty"`
	Axis   string  `json:"axis,omitempty"`
	Value  float32 `json:"value,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences camera moves, setting changes and screenshots
// across frames for automated visual testing. Attach to a Scene via
// SetTestRunner.
//
// Actions: screenshot (label), orbit and pan (dx, dy, frames), zoom
// (value), view (axis), resolution and size (value), restart, wait
// (frames) and pass, which waits for the next committed pass.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	waitPass  uint64
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before injected input is applied.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) error {
	if r.done {
		return nil
	}
	// Wait for pending injections to drain before advancing.
	if s.injecting() {
		return nil
	}
	if r.waitPass > 0 {
		if s.Passes() < r.waitPass {
			return nil
		}
		r.waitPass = 0
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "orbit":
		s.InjectOrbit(st.DX, st.DY, st.Frames)
	case "pan":
		s.InjectPan(st.DX, st.DY, st.Frames)
	case "zoom":
		s.InjectZoom(st.Value)
	case "view":
		s.InjectView(st.Axis)
	case "restart":
		s.InjectRestart()
	case "resolution":
		err = s.SetResolution(int(st.Value))
	case "size":
		err = s.SetSize(st.Value)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "pass":
		r.waitPass = s.Passes() + 1
	default:
		err = fmt.Errorf("unknown action %q", st.Action)
	}
	if err != nil {
		return fmt.Errorf("test step %d: %w", r.cursor-1, err)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.waitPass == 0 && !s.injecting() {
		r.done = true
	}
	return nil
}
