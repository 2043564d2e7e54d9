package slider

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSteps is returned by LoadTestScript for a script without steps.
var ErrNoSteps = errors.New("no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Index    int     `json:"index,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected gestures, navigation and screenshots across
// frames for automated visual testing. Attach to a Carousel via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Carousel via SetTestRunner.
//
// Actions: click, drag, pinch, next, previous, lightbox, close, wait and
// screenshot.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "click", "drag", "pinch", "next", "previous", "lightbox", "close", "wait", "screenshot":
		return true
	}
	return false
}

// SetTestRunner attaches a TestRunner to the carousel. The runner's step
// method is called from Carousel.Step before the sliders update.
func (c *Carousel) SetTestRunner(runner *TestRunner) {
	c.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(c *Carousel) {
	if r.done {
		return
	}
	input := c.Input()
	// Wait for pending injections to drain before advancing.
	if input.Pending() > 0 {
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
		c.Screenshot(st.Label)
	case "click":
		input.InjectClick(st.X, st.Y)
	case "drag":
		input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "pinch":
		input.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, max(st.Frames, 2))
	case "next":
		c.activeSlider().Next()
	case "previous":
		c.activeSlider().Previous()
	case "lightbox":
		c.SetLightboxIndex(st.Index)
	case "close":
		c.CloseLightbox()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && c.Input().Pending() == 0 {
		r.done = true
	}
}

// activeSlider is the slider that receives navigation: the lightbox while
// it is open.
func (c *Carousel) activeSlider() *Slider {
	if c.open {
		return c.lightbox
	}
	return c.main
}
