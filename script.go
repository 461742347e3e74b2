package willowfx

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is one action of a playback script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label"`
	Node   string  `yaml:"node"`
	Frames int     `yaml:"frames"`
	Speed  float64 `yaml:"speed"`
	Reduce bool    `yaml:"reduce"`
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner plays a fixed sequence of actions against a Scene, one per
// frame, so entrance timing can be captured reproducibly:
//
//	steps:
//	  - {action: wait, frames: 12}
//	  - {action: screenshot, label: mid-flight}
//	  - {action: replay, node: card}
//	  - {action: speed, speed: 0.5}
//	  - {action: reduce-motion, reduce: true}
//
// JSON scripts parse as well. Attach with Scene.SetScript; the runner steps
// at the start of every Scene.Update.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) playback script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "wait", "screenshot", "replay", "speed", "reduce-motion":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: f.Steps}, nil
}

// SetScript attaches a playback script. Pass nil to detach.
func (s *Scene) SetScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step runs at most one action per frame.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
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
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		s.Screenshot(st.Label)
	case "replay":
		ReplayAll(s.root, st.Node)
	case "speed":
		m := s.motion
		m.SpeedScale = st.Speed
		s.SetMotionSettings(m)
	case "reduce-motion":
		m := s.motion
		m.ReduceMotion = st.Reduce
		s.SetMotionSettings(m)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// ReplayAll replays every entrance in the subtree rooted at n. A non-empty
// name restricts it to entrances on nodes with that name.
func ReplayAll(n *Node, name string) {
	if e := n.Entrance; e != nil && (name == "" || n.Name == name) {
		e.Replay()
	}
	for _, child := range n.children {
		ReplayAll(child, name)
	}
}
