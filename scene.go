package willowfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and ticks every
// entrance reachable from the root.
type Scene struct {
	root   *Node
	sink   EventSink
	debug  bool
	motion MotionSettings

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNGs. Empty means "screenshots".
	ScreenshotDir string

	entrances       int
	running         int
	updateFunc      func() error
	script          *ScriptRunner
	screenshotQueue []string
	whitePixel      *ebiten.Image
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:   NewContainer("root"),
		motion: DefaultMotionSettings(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update runs the attached script, if any, and advances the scene by one tick
// of 1/TPS seconds.
func (s *Scene) Update() {
	if s.script != nil {
		s.script.step(s)
	}
	s.Advance(float32(1.0 / float64(ebiten.TPS())))
}

// Advance ticks OnUpdate callbacks and entrances by dt seconds and refreshes
// world transforms. Entrance drives see dt scaled by the motion settings.
// Completion callbacks run here, never during Draw.
func (s *Scene) Advance(dt float32) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	driveDT := dt * float32(s.motion.speed())
	s.tick(s.root, dt, driveDT, &stats)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.entrances, s.running = stats.entranceCount, stats.runningCount

	if s.debug {
		stats.updateTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// tick walks the tree depth-first, parents before children.
func (s *Scene) tick(n *Node, dt, driveDT float32, stats *debugStats) {
	if n.OnUpdate != nil {
		n.OnUpdate(float64(dt))
	}
	if e := n.Entrance; e != nil {
		e.update(driveDT, s)
		stats.entranceCount++
		if e.running {
			stats.runningCount++
		}
	}
	for i := 0; i < len(n.children); i++ {
		s.tick(n.children[i], dt, driveDT, stats)
	}
}

// EntranceCounts reports how many entrances the last Advance reached and how
// many of those are still driving (delays included).
func (s *Scene) EntranceCounts() (total, running int) {
	return s.entrances, s.running
}

// SetUpdateFunc registers a callback that Run's game loop calls after each
// scene update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEventSink sets the optional receiver of entrance lifecycle events.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetMotionSettings applies user motion preferences. ReduceMotion takes effect
// for entrances activated afterwards.
func (s *Scene) SetMotionSettings(m MotionSettings) {
	s.motion = m
}

// MotionSettings returns the active motion preferences.
func (s *Scene) MotionSettings() MotionSettings {
	return s.motion
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and per-frame entrance
// stats and lifecycle events are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// emit reports an entrance transition. Safe on a nil Scene.
func (s *Scene) emit(e *Entrance, typ EntranceEventType) {
	if s == nil {
		return
	}
	ev := EntranceEvent{Type: typ, Kind: e.kind, NodeID: e.node.ID, Name: e.node.Name}
	if s.debug {
		debugLogEvent(ev)
	}
	if s.sink != nil {
		s.sink.EmitEntranceEvent(ev)
	}
}

// reduceMotion reports whether entrances should skip their drive. Safe on a
// nil Scene.
func (s *Scene) reduceMotion() bool {
	return s != nil && s.motion.ReduceMotion
}
