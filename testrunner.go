package mandala

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name,omitempty"`
	Field   string  `json:"field,omitempty"`
	Value   any     `json:"value,omitempty"`
	Seconds float32 `json:"seconds,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"tick": true, "wait": true, "screenshot": true, "algorithm": true,
	"reseed": true, "preset": true, "set": true, "toggle": true,
	"drag": true, "click": true, "redraw": true,
}

// ScriptRunner sequences control-surface calls, injected pointer events and
// screenshots across frames for automated visual runs. One step executes
// per Step call.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses a JSON script. Unknown actions are rejected.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Errors returns the errors from failed steps. Failed steps are logged and
// skipped; the script keeps running.
func (r *ScriptRunner) Errors() []error {
	return r.errs
}

// Step advances the runner by one frame.
func (r *ScriptRunner) Step(s *Session) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if s.PendingInjected() > 0 {
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
	if err := r.exec(s, st); err != nil {
		err = fmt.Errorf("step %d (%s): %w", r.cursor-1, st.Action, err)
		Logger().Warn("script step failed", "err", err)
		r.errs = append(r.errs, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.PendingInjected() == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) exec(s *Session, st scriptStep) error {
	switch st.Action {
	case "tick", "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		s.Screenshot(st.Label)
	case "algorithm":
		if !s.SetAlgorithm(st.ID) {
			return fmt.Errorf("unknown algorithm %q", st.ID)
		}
	case "reseed":
		s.Reseed()
	case "preset":
		if st.Seconds > 0 {
			return s.TransitionTo(st.Name, st.Seconds, nil)
		}
		return s.ApplyPreset(st.Name)
	case "set":
		return s.Set(st.Field, st.Value)
	case "toggle":
		s.ToggleContinuousMode()
	case "redraw":
		s.RequestRedraw()
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	}
	return nil
}
