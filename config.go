package willowfx

import (
	"time"

	"github.com/tanema/gween/ease"
)

// SpringConfig parameterizes a spring drive. Mass 0 is treated as 1.
type SpringConfig struct {
	Damping   float64
	Stiffness float64
	Mass      float64
}

// Spring presets shared by the entrance presets.
var (
	SpringDefault = SpringConfig{Damping: 14, Stiffness: 75}
	SpringGentle  = SpringConfig{Damping: 20, Stiffness: 90}
	SpringBouncy  = SpringConfig{Damping: 8, Stiffness: 100}
	SpringStiff   = SpringConfig{Damping: 26, Stiffness: 180}
	SpringSlow    = SpringConfig{Damping: 20, Stiffness: 50}
)

// A spring is at rest once it is within restDisplacement of the target and
// moving slower than restSpeed (units per second).
const (
	restDisplacement = 0.01
	restSpeed        = 2.0
)

// TimingConfig parameterizes a fixed-duration eased drive. A nil Easing is linear.
type TimingConfig struct {
	Duration time.Duration
	Easing   ease.TweenFunc
}

// Timing presets.
var (
	TimingDefault = TimingConfig{Duration: 300 * time.Millisecond}
	TimingFast    = TimingConfig{Duration: 150 * time.Millisecond}
	TimingSlow    = TimingConfig{Duration: 500 * time.Millisecond}
)

// Delay presets.
const (
	DelayNone   time.Duration = 0
	DelayShort                = 100 * time.Millisecond
	DelayMedium               = 200 * time.Millisecond
	DelayLong                 = 300 * time.Millisecond
)

// Distance presets, in pixels.
const (
	DistanceSmall  = 20.0
	DistanceMedium = 50.0
	DistanceLarge  = 100.0
)

var springPresets = map[string]SpringConfig{
	"default": SpringDefault,
	"gentle":  SpringGentle,
	"bouncy":  SpringBouncy,
	"stiff":   SpringStiff,
	"slow":    SpringSlow,
}

var timingPresets = map[string]TimingConfig{
	"default": TimingDefault,
	"fast":    TimingFast,
	"slow":    TimingSlow,
}

var delayPresets = map[string]time.Duration{
	"none":   DelayNone,
	"short":  DelayShort,
	"medium": DelayMedium,
	"long":   DelayLong,
}

// SpringPreset returns the built-in spring preset with the given name.
func SpringPreset(name string) (SpringConfig, bool) {
	c, ok := springPresets[name]
	return c, ok
}

// TimingPreset returns the built-in timing preset with the given name.
func TimingPreset(name string) (TimingConfig, bool) {
	c, ok := timingPresets[name]
	return c, ok
}

// DelayPreset returns the built-in delay preset with the given name.
func DelayPreset(name string) (time.Duration, bool) {
	d, ok := delayPresets[name]
	return d, ok
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
	"in-back":      ease.InBack,
	"out-back":     ease.OutBack,
	"in-out-back":  ease.InOutBack,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
}

// EasingByName returns the gween easing registered under name
// ("out-quad", "in-out-cubic", ...).
func EasingByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}
