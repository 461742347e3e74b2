package willowfx

import "time"

// EntranceConfig holds the options every entrance preset shares. Start from
// DefaultEntranceConfig (or a preset's Default*Config) since the zero value
// has Animate set to false.
type EntranceConfig struct {
	// Delay holds back the drive after the entrance is mounted.
	Delay time.Duration
	// Animate false renders the final state immediately with no drive and no
	// completion callback.
	Animate bool
	// OnComplete fires once per activation when the drive comes to rest.
	OnComplete func()
	// Driver overrides the preset's drive curve. Each entrance needs its own
	// Driver value; drivers hold per-instance state and must not be shared.
	Driver Driver
}

// DefaultEntranceConfig returns an animated config with no delay.
func DefaultEntranceConfig() EntranceConfig {
	return EntranceConfig{Animate: true}
}

// EntranceEventType identifies a lifecycle transition of an Entrance.
type EntranceEventType uint8

const (
	EntranceStarted   EntranceEventType = iota // delay elapsed, drive began advancing
	EntranceCompleted                          // drive came to rest at progress 1
	EntranceCancelled                          // in-flight drive replaced by a re-activation
)

// EntranceEvent is reported to a Scene's EventSink.
type EntranceEvent struct {
	Type   EntranceEventType
	Kind   EntranceKind
	NodeID uint32
	Name   string
}

// EventSink receives entrance lifecycle events from a Scene. The ecs
// sub-package provides a Donburi-backed implementation.
type EventSink interface {
	EmitEntranceEvent(event EntranceEvent)
}

// Entrance owns one progress value in [0, 1] (springs may briefly overshoot),
// drives it toward 1 once mounted, and writes the derived Style onto its node.
//
// The entrance is mounted on the first scene tick that reaches its node.
// Detaching the node (or an ancestor) from its parent unmounts it: an
// in-flight drive is cancelled without its callback and the entrance rewinds,
// so adding it back mounts it fresh.
type Entrance struct {
	kind       EntranceKind
	node       *Node
	styleAt    func(p float64) Style
	driver     Driver
	delay      time.Duration
	animate    bool
	onComplete func()
	scene      *Scene

	progress float64
	gate     delayGate
	mounted  bool
	running  bool
	started  bool
	done     bool
}

// attachEntrance builds an Entrance for n and applies its starting style.
func attachEntrance(n *Node, kind EntranceKind, cfg EntranceConfig, fallback Driver, styleAt func(float64) Style) *Entrance {
	drv := cfg.Driver
	if drv == nil {
		drv = fallback
	}
	e := &Entrance{
		kind:       kind,
		node:       n,
		styleAt:    styleAt,
		driver:     drv,
		delay:      cfg.Delay,
		animate:    cfg.Animate,
		onComplete: cfg.OnComplete,
	}
	if !cfg.Animate {
		e.progress = 1
		e.done = true
	}
	e.apply()
	n.Entrance = e
	return e
}

// Update advances the entrance by dt seconds outside of a Scene. Scenes tick
// their entrances automatically; call this only for nodes that are never
// added to a Scene.
func (e *Entrance) Update(dt float32) {
	e.update(dt, nil)
}

// update ticks the entrance; s is nil for standalone use.
func (e *Entrance) update(dt float32, s *Scene) {
	if e.node.IsDisposed() {
		e.running = false
		return
	}
	if !e.mounted {
		e.mounted = true
		e.scene = s
		e.activate()
	}
	if !e.running {
		return
	}

	left := e.gate.consume(dt)
	if !e.gate.open() {
		return
	}
	if !e.started {
		e.started = true
		e.scene.emit(e, EntranceStarted)
	}

	val, rest := e.driver.Step(left)
	e.progress = val
	e.apply()
	if !rest {
		return
	}
	e.running = false
	e.done = true
	e.scene.emit(e, EntranceCompleted)
	if e.onComplete != nil {
		e.onComplete()
	}
}

// activate starts a new drive from the current progress, or snaps to the
// terminal state when animation is off. An in-flight drive is dropped
// without its callback.
func (e *Entrance) activate() {
	if e.running {
		e.running = false
		e.scene.emit(e, EntranceCancelled)
	}
	if !e.animate || e.scene.reduceMotion() {
		e.progress = 1
		e.done = true
		e.apply()
		return
	}
	e.gate = newDelayGate(e.delay)
	e.driver.Reset(e.progress)
	e.running = true
	e.started = false
	e.done = false
}

// unmount cancels the drive and rewinds to the pre-mount state.
func (e *Entrance) unmount() {
	if !e.mounted {
		return
	}
	if e.running {
		e.running = false
		e.scene.emit(e, EntranceCancelled)
	}
	e.mounted = false
	e.started = false
	e.scene = nil
	if e.animate {
		e.progress = 0
		e.done = false
		e.apply()
	}
}

// unmountSubtree unmounts every entrance at or below n.
func unmountSubtree(n *Node) {
	if n.Entrance != nil {
		n.Entrance.unmount()
	}
	for _, child := range n.children {
		unmountSubtree(child)
	}
}

func (e *Entrance) apply() {
	e.node.SetStyle(e.styleAt(e.progress))
}

// SetDelay changes the start delay. On a mounted entrance a changed delay
// re-runs activation.
func (e *Entrance) SetDelay(d time.Duration) {
	if d == e.delay {
		return
	}
	e.delay = d
	if e.mounted {
		e.activate()
	}
}

// SetAnimate turns the drive on or off. On a mounted entrance a change
// re-runs activation: true drives from the current progress to 1, false
// snaps to the final state.
func (e *Entrance) SetAnimate(animate bool) {
	if animate == e.animate {
		return
	}
	e.animate = animate
	if e.mounted {
		e.activate()
	}
}

// Replay rewinds progress to 0 and activates again, counting the delay from
// now. A replay before mount only rewinds; mount starts the drive.
func (e *Entrance) Replay() {
	e.progress = 0
	e.done = false
	e.apply()
	if e.mounted {
		e.activate()
	}
}

// Kind returns the preset this entrance was built from.
func (e *Entrance) Kind() EntranceKind { return e.kind }

// Node returns the container node the entrance animates.
func (e *Entrance) Node() *Node { return e.node }

// Progress returns the current progress value.
func (e *Entrance) Progress() float64 { return e.progress }

// Style returns the style derived from the current progress.
func (e *Entrance) Style() Style { return e.styleAt(e.progress) }

// StyleAt evaluates the entrance's style curve at an arbitrary progress value.
func (e *Entrance) StyleAt(p float64) Style { return e.styleAt(p) }

// Delay returns the configured start delay.
func (e *Entrance) Delay() time.Duration { return e.delay }

// Animate reports whether the entrance drives its progress value.
func (e *Entrance) Animate() bool { return e.animate }

// Running reports whether a drive is in flight (including its delay).
func (e *Entrance) Running() bool { return e.running }

// Done reports whether the entrance has reached its terminal state.
func (e *Entrance) Done() bool { return e.done }
