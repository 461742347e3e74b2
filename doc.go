// Package willowfx provides declarative entrance animations for a small
// retained-mode 2D scene graph on [Ebitengine].
//
// Each entrance preset is a container [Node] that carries an [Entrance]. The
// entrance owns a single progress value, drives it from 0 to 1 once the node
// is mounted (first ticked by a [Scene]) and writes the derived [Style]
// (opacity, translation, scale, rotation) onto the container, so everything
// added as a child enters together.
//
// # Quick start
//
//	scene := willowfx.NewScene()
//
//	card := willowfx.NewSprite("card", cardImage)
//	cfg := willowfx.DefaultFadeInConfig()
//	cfg.Direction = willowfx.DirectionLeft
//	cfg.OnComplete = func() { log.Println("card is in") }
//	scene.Root().AddChild(willowfx.NewFadeIn("card-in", cfg, card))
//
//	willowfx.Run(scene, willowfx.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Presets
//
// [NewFadeIn], [NewSlideIn], [NewScaleIn], [NewRotateIn], [NewFlipIn] and
// [NewZoomIn] are spring driven (via [harmonica]); [NewBounceIn] is timing
// driven (via [gween]). Every preset accepts a Delay, an Animate switch
// (false renders the final state with no drive and no callback) and an
// OnComplete callback that fires once per activation.
//
// # Composition
//
// [NewSequence] staggers the delays of its children (Delay + i*Stagger);
// [NewParallel] gives every child the same delay.
//
// # Presets and settings
//
// Drive parameters live in [SpringDefault], [TimingDefault] and friends and
// can be extended from YAML with [LoadPresets]. [SettingsStore] persists the
// user's [MotionSettings] (reduce motion, speed) with [gdata].
//
// # Capture
//
// [Scene.Screenshot] queues a PNG capture of the next drawn frame, and
// [LoadScript] builds a [ScriptRunner] that waits, replays entrances, changes
// motion settings and takes screenshots on fixed frames, for reproducible
// captures of entrance timing.
//
// [Ebitengine]: https://ebitengine.org
// [harmonica]: https://github.com/charmbracelet/harmonica
// [gween]: https://github.com/tanema/gween
// [gdata]: https://github.com/quasilyte/gdata
package willowfx
