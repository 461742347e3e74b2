package willowfx

import (
	"errors"
	"testing"
	"time"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Type != NodeTypeContainer {
		t.Errorf("root.Type = %d, want NodeTypeContainer", s.root.Type)
	}
	if s.MotionSettings() != DefaultMotionSettings() {
		t.Errorf("motion = %+v, want defaults", s.MotionSettings())
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene()
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneDebugAdvance(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	s.Root().AddChild(NewBounceIn("bounce", DefaultBounceInConfig()))
	advance(s, time.Second) // logs stats and lifecycle events; must not panic
}

func TestSceneSetUpdateFunc(t *testing.T) {
	s := NewScene()
	want := errors.New("stop")
	s.SetUpdateFunc(func() error { return want })
	g := &game{scene: s, width: 10, height: 10}
	if err := g.Update(); !errors.Is(err, want) {
		t.Errorf("game.Update() = %v, want %v", err, want)
	}
	if w, h := g.Layout(1, 1); w != 10 || h != 10 {
		t.Errorf("Layout = %d,%d, want 10,10", w, h)
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	if err := Run(NewScene(), RunConfig{Width: 0, Height: 10}); err == nil {
		t.Error("Run should reject a zero width")
	}
}

func TestSceneTickOrder(t *testing.T) {
	var order []string
	mk := func(name string) *Node {
		n := NewContainer(name)
		n.OnUpdate = func(float64) { order = append(order, name) }
		return n
	}
	s := NewScene()
	a := mk("a")
	b := mk("b")
	c := mk("c")
	a.AddChild(b)
	s.Root().AddChild(a)
	s.Root().AddChild(c)

	s.Advance(frame)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("tick order = %v, want [a b c]", order)
	}
}

func TestSceneOnUpdateSeesUnscaledDT(t *testing.T) {
	s := NewScene()
	s.SetMotionSettings(MotionSettings{SpeedScale: 4})
	var got float64
	n := NewContainer("n")
	n.OnUpdate = func(dt float64) { got = dt }
	s.Root().AddChild(n)

	s.Advance(0.5)
	if got != 0.5 {
		t.Errorf("OnUpdate dt = %v, want 0.5", got)
	}
}

func TestSceneAdvanceAppliesStyle(t *testing.T) {
	s := NewScene()
	cfg := DefaultFadeInConfig()
	cfg.Direction = DirectionLeft
	cfg.Distance = 40
	sprite := NewSprite("s", nil)
	fade := NewFadeIn("fade", cfg, sprite)
	fade.SetPosition(100, 0)
	s.Root().AddChild(fade)

	s.Advance(0) // mount; spring has not moved yet
	x, _ := sprite.LocalToWorld(0, 0)
	assertNear(t, "x at start", x, 140)
	assertNear(t, "alpha at start", sprite.WorldAlpha(), 0)

	advance(s, 5*time.Second)
	x, _ = sprite.LocalToWorld(0, 0)
	assertNear(t, "x at rest", x, 100)
	assertNear(t, "alpha at rest", sprite.WorldAlpha(), 1)
}

func TestSceneUpdateUsesTPS(t *testing.T) {
	s := NewScene()
	var got float64
	n := NewContainer("n")
	n.OnUpdate = func(dt float64) { got = dt }
	s.Root().AddChild(n)

	s.Update()
	if got <= 0 || got > 1 {
		t.Errorf("Update dt = %v, want 1/TPS", got)
	}
}

func TestSceneNilSinkIsSafe(t *testing.T) {
	s := NewScene()
	s.SetEventSink(nil)
	s.Root().AddChild(NewFadeIn("fade", DefaultFadeInConfig()))
	advance(s, time.Second)
}

func TestSceneEventFields(t *testing.T) {
	s := NewScene()
	sink := &recordingSink{}
	s.SetEventSink(sink)
	n := NewFlipIn("card", DefaultFlipInConfig())
	s.Root().AddChild(n)
	id := n.ID
	advance(s, 3*time.Second)

	if len(sink.events) != 2 {
		t.Fatalf("events = %v, want started+completed", sink.types())
	}
	for _, ev := range sink.events {
		if ev.Kind != KindFlip || ev.NodeID != id || ev.Name != "card" {
			t.Errorf("event = %+v", ev)
		}
	}
}

func TestEntranceMovedBetweenParentsRemounts(t *testing.T) {
	s := NewScene()
	a := NewContainer("a")
	b := NewContainer("b")
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	calls := 0
	cfg := DefaultFadeInConfig()
	cfg.OnComplete = func() { calls++ }
	n := NewFadeIn("fade", cfg)
	a.AddChild(n)
	advance(s, 100*time.Millisecond)

	b.AddChild(n)
	if n.Entrance.Progress() != 0 || n.Entrance.Running() {
		t.Errorf("moved entrance should rewind, progress=%v running=%v", n.Entrance.Progress(), n.Entrance.Running())
	}
	advance(s, 5*time.Second)
	if calls != 1 {
		t.Errorf("OnComplete called %d times, want 1 (from the new mount only)", calls)
	}
}

func TestReorderWithinParentKeepsDrive(t *testing.T) {
	s := NewScene()
	n := NewFadeIn("fade", DefaultFadeInConfig())
	s.Root().AddChild(n)
	s.Root().AddChild(NewContainer("other"))
	advance(s, 100*time.Millisecond)
	p := n.Entrance.Progress()

	s.Root().AddChildAt(n, 1)
	if n.Entrance.Progress() != p || !n.Entrance.Running() {
		t.Error("reordering among siblings should not unmount")
	}
}

func TestSceneEntranceCounts(t *testing.T) {
	s := NewScene()
	s.Root().AddChild(NewSequence("row", SequenceConfig{Stagger: time.Second},
		NewBounceIn("a", DefaultBounceInConfig()),
		NewSprite("plain", nil),
		NewFadeIn("b", DefaultFadeInConfig()),
	))

	s.Advance(frame)
	if total, running := s.EntranceCounts(); total != 2 || running != 2 {
		t.Errorf("counts = %d/%d, want 2 total, 2 running", total, running)
	}
	advance(s, time.Second) // a settles, b still inside its 2s delay
	if total, running := s.EntranceCounts(); total != 2 || running != 1 {
		t.Errorf("counts = %d/%d, want 2 total, 1 running", total, running)
	}
	if got, want := fpsText(60, s), "FPS: 60.0\nentrances: 1/2"; got != want {
		t.Errorf("fpsText = %q, want %q", got, want)
	}
}
