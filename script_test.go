package willowfx

import (
	"image/color"
	"testing"
	"time"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - {action: wait, frames: 3}
  - {action: screenshot, label: settled}
  - {action: replay, node: card}
`)
	r, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(r.steps))
	}
	if r.steps[0].Action != "wait" || r.steps[0].Frames != 3 {
		t.Error("step 0 mismatch")
	}
	if r.steps[2].Node != "card" {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScriptJSON(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "initial"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.steps[0].Label != "initial" {
		t.Errorf("label = %q", r.steps[0].Label)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	for name, data := range map[string]string{
		"invalid": "steps: [",
		"empty":   "steps: []",
		"unknown": "steps:\n  - {action: teleport}\n",
	} {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestScriptWaitThenScreenshot(t *testing.T) {
	s := NewScene()
	r, err := LoadScript([]byte(`
steps:
  - {action: wait, frames: 3}
  - {action: screenshot, label: done}
`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(r)

	for i := 0; i < 3; i++ {
		s.Update()
		if len(s.screenshotQueue) != 0 {
			t.Fatalf("frame %d: screenshot queued during wait", i+1)
		}
	}
	s.Update()
	if !r.Done() {
		t.Error("runner should be done after the last step")
	}
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "done" {
		t.Errorf("queue = %v, want [done]", s.screenshotQueue)
	}
}

func TestScriptReplayAndMotion(t *testing.T) {
	s := NewScene()
	card := NewFadeIn("card", DefaultFadeInConfig())
	other := NewFadeIn("other", DefaultFadeInConfig())
	s.Root().AddChild(card)
	s.Root().AddChild(other)
	advance(s, 5*time.Second)

	r, err := LoadScript([]byte(`
steps:
  - {action: speed, speed: 2}
  - {action: reduce-motion, reduce: false}
  - {action: replay, node: card}
`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(r)
	s.Update()
	s.Update()
	if got := s.MotionSettings().SpeedScale; got != 2 {
		t.Errorf("SpeedScale = %v, want 2", got)
	}
	s.Update()
	if !card.Entrance.Running() {
		t.Error("card should be replaying")
	}
	if other.Entrance.Running() {
		t.Error("other should be untouched")
	}
}

func TestReplayAllUnnamed(t *testing.T) {
	row := NewSequence("row", DefaultSequenceConfig(),
		NewFadeIn("a", DefaultFadeInConfig()),
		NewZoomIn("b", DefaultZoomInConfig()),
	)
	s := NewScene()
	s.Root().AddChild(row)
	advance(s, 5*time.Second)

	ReplayAll(s.Root(), "")
	for _, c := range row.Children() {
		if c.Entrance.Progress() != 0 || !c.Entrance.Running() {
			t.Errorf("%s not replayed", c.Name)
		}
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{
		255, 0, 0, 255,
		64, 32, 0, 128,
		0, 0, 0, 0,
	}, 3, 1)

	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("opaque = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{127, 63, 0, 128}) {
		t.Errorf("half = %v", got)
	}
	if got := img.NRGBAAt(2, 0); got != (color.NRGBA{}) {
		t.Errorf("transparent = %v", got)
	}
}
