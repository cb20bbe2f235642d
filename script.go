package dnd

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// GestureStep is a single action in a gesture script.
type GestureStep struct {
	Action string  `yaml:"action" json:"action"`
	Label  string  `yaml:"label,omitempty" json:"label,omitempty"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty" json:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty" json:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty" json:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty" json:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty" json:"frames,omitempty"`
}

// gestureScript is the top-level document of a gesture script.
type gestureScript struct {
	Steps []GestureStep `yaml:"steps" json:"steps"`
}

// ScriptRunner sequences injected pointer events across frames for
// automated testing and headless replay. Attach to an Engine via
// SetScriptRunner.
type ScriptRunner struct {
	steps     []GestureStep
	cursor    int
	waitCount int
	done      bool

	// OnMark is called for "mark" steps with the step label.
	OnMark func(label string)
}

var errNoSteps = errors.New("no steps")

// LoadGestureScript parses a YAML gesture script. JSON is accepted too,
// since it is a subset of YAML.
//
//	steps:
//	  - {action: drag, fromX: 10, fromY: 10, toX: 10, toY: 120, frames: 6}
//	  - {action: wait, frames: 2}
//	  - {action: mark, label: after-drag}
func LoadGestureScript(data []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: %w", errNoSteps)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "wait", "mark":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step method is called from Update
// before input is processed each frame.
func (e *Engine) SetScriptRunner(r *ScriptRunner) {
	e.script = r
}

// Steps returns the parsed steps.
func (r *ScriptRunner) Steps() []GestureStep { return r.steps }

// Done reports whether every step has been executed and its input consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
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
	case "press":
		e.InjectPress(st.X, st.Y)
	case "move":
		e.InjectMove(st.X, st.Y)
	case "release":
		e.InjectRelease(st.X, st.Y)
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "mark":
		if r.OnMark != nil {
			r.OnMark(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
