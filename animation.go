package willowfx

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Driver advances a progress value toward 1 over time. Entrances own exactly
// one driver; Reset is called at every activation with the current progress.
//
// There is no global animation manager; whoever owns the driver calls Step.
type Driver interface {
	// Reset restarts the drive from the given progress value.
	Reset(from float64)
	// Step advances by dt seconds and returns the new progress and whether
	// the drive has come to rest at 1.
	Step(dt float32) (float64, bool)
}

// --- Timing ---

type timingDriver struct {
	cfg   TimingConfig
	tween *gween.Tween
}

// NewTimingDriver returns a Driver that moves to 1 over cfg.Duration using
// cfg.Easing. A zero duration finishes on the first Step.
func NewTimingDriver(cfg TimingConfig) Driver {
	d := &timingDriver{cfg: cfg}
	d.Reset(0)
	return d
}

func (d *timingDriver) Reset(from float64) {
	fn := d.cfg.Easing
	if fn == nil {
		fn = ease.Linear
	}
	d.tween = gween.New(float32(from), 1, float32(d.cfg.Duration.Seconds()), fn)
}

func (d *timingDriver) Step(dt float32) (float64, bool) {
	if d.cfg.Duration <= 0 {
		return 1, true
	}
	val, finished := d.tween.Update(dt)
	if finished {
		return 1, true
	}
	return float64(val), false
}

// --- Spring ---

type springDriver struct {
	omega, zeta float64
	spring      harmonica.Spring
	springDT    float32
	pos, vel    float64
}

// NewSpringDriver returns a Driver that pulls the value to 1 with a damped
// spring. Stiffness, damping and mass are converted to harmonica's angular
// frequency and damping ratio. The value may overshoot 1 before settling.
func NewSpringDriver(cfg SpringConfig) Driver {
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}
	return &springDriver{
		omega: math.Sqrt(cfg.Stiffness / mass),
		zeta:  cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*mass)),
	}
}

// Reset keeps the current velocity so a re-activated spring stays continuous.
func (d *springDriver) Reset(from float64) {
	d.pos = from
}

func (d *springDriver) Step(dt float32) (float64, bool) {
	if dt > 0 {
		// harmonica bakes the time step into its coefficients.
		if dt != d.springDT {
			d.spring = harmonica.NewSpring(float64(dt), d.omega, d.zeta)
			d.springDT = dt
		}
		d.pos, d.vel = d.spring.Update(d.pos, d.vel, 1)
	}
	if math.Abs(1-d.pos) < restDisplacement && math.Abs(d.vel) < restSpeed {
		d.pos, d.vel = 1, 0
		return 1, true
	}
	return d.pos, false
}

// --- Chain ---

type chainDriver struct {
	drivers []Driver
	current int
	value   float64
}

// Chain runs drivers back to back; each one starts where the previous one
// came to rest. Panics if drivers is empty.
func Chain(drivers ...Driver) Driver {
	if len(drivers) == 0 {
		panic("willowfx: chain needs at least one driver")
	}
	return &chainDriver{drivers: drivers}
}

func (c *chainDriver) Reset(from float64) {
	c.current = 0
	c.value = from
	c.drivers[0].Reset(from)
}

func (c *chainDriver) Step(dt float32) (float64, bool) {
	val, done := c.drivers[c.current].Step(dt)
	c.value = val
	if !done {
		return val, false
	}
	if c.current == len(c.drivers)-1 {
		return val, true
	}
	c.current++
	c.drivers[c.current].Reset(val)
	return val, false
}

// --- Delay ---

// delayGate holds back the drive until the delay has elapsed. Negative
// delays behave as zero.
type delayGate struct {
	remaining float64
}

func newDelayGate(d time.Duration) delayGate {
	return delayGate{remaining: max(d.Seconds(), 0)}
}

// consume eats up to dt seconds of remaining delay and returns what is left
// for the drive. Returns 0 while the gate is still closed.
func (g *delayGate) consume(dt float32) float32 {
	if g.remaining <= 0 {
		return dt
	}
	g.remaining -= float64(dt)
	if g.remaining > 0 {
		return 0
	}
	left := float32(-g.remaining)
	g.remaining = 0
	return left
}

// open reports whether the delay has fully elapsed.
func (g *delayGate) open() bool {
	return g.remaining <= 0
}
