package coordconv

import (
	"encoding/json"
	"fmt"
	"os"
)

// testStep is a single action in an input script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"tap":        true,
	"doubletap":  true,
	"pan":        true,
	"cancel":     true,
	"wait":       true,
	"screenshot": true,
}

// TestRunner sequences injected gestures and screenshots across frames for
// automated runs. Attach it with App.SetTestRunner.
//
// Script format:
//
//	{"steps": [
//	  {"action": "tap", "x": 100, "y": 200},
//	  {"action": "wait", "frames": 30},
//	  {"action": "pan", "fromX": 200, "fromY": 400, "toX": 120, "toY": 300, "frames": 20},
//	  {"action": "doubletap", "x": 187, "y": 406},
//	  {"action": "screenshot", "label": "recentered"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON input script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses the script at path.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return LoadTestScript(data)
}

// Done reports whether every step has run and its input has been consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from App.Update before the
// router reads input.
func (r *TestRunner) step(a *App) {
	if r.done {
		return
	}
	// Let queued input drain before the next step.
	if a.router.Injected() > 0 {
		return
	}
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
		a.scene.Screenshot(st.Label)
	case "tap":
		a.router.InjectTap(st.X, st.Y)
	case "doubletap":
		a.router.InjectDoubleTap(st.X, st.Y)
	case "pan":
		a.router.InjectPan(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "cancel":
		a.router.InjectCancel()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
