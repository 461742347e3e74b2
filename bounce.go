package willowfx

import (
	"time"

	"github.com/tanema/gween/ease"
)

// bounceDrive is the bounce timing: 400ms out-quad, then a zero-length settle.
var bounceDrive = TimingConfig{Duration: 400 * time.Millisecond, Easing: ease.OutQuad}

// Overshoot-and-settle breakpoints shared by every bounce direction.
var (
	bounceInput   = []float64{0, 0.4, 0.6, 0.75, 0.85, 1}
	bounceFactors = []float64{1, -0.3, 0.15, -0.08, 0.04, 0}

	fadeInFirstThird = []float64{0, 0.3, 1}
	fadeInOutput     = []float64{0, 1, 1}
)

// BounceInConfig configures NewBounceIn.
type BounceInConfig struct {
	EntranceConfig

	// Direction picks the axis and sign of the bounce. Diagonal directions
	// only fade.
	Direction    Direction
	BounceHeight float64
}

// DefaultBounceInConfig returns a 100px bounce from the bottom.
func DefaultBounceInConfig() BounceInConfig {
	return BounceInConfig{
		EntranceConfig: DefaultEntranceConfig(),
		Direction:      DirectionBottom,
		BounceHeight:   100,
	}
}

// NewBounceIn creates a container whose children drop in and bounce to rest.
// It is the only timing-driven preset.
func NewBounceIn(name string, cfg BounceInConfig, children ...*Node) *Node {
	n := newEntranceContainer(name, children)
	drv := Chain(NewTimingDriver(bounceDrive), NewTimingDriver(TimingConfig{}))
	attachEntrance(n, KindBounce, cfg.EntranceConfig, drv, cfg.bounceTable().styleAt)
	return n
}

// bounceTable precomputes the output table so styleAt does not allocate.
type bounceTable struct {
	direction Direction
	output    []float64
}

func (c BounceInConfig) bounceTable() bounceTable {
	sign := 1.0
	switch c.Direction {
	case DirectionBottom, DirectionRight:
		sign = -1
	}
	out := make([]float64, len(bounceFactors))
	for i, f := range bounceFactors {
		out[i] = sign * f * c.BounceHeight
	}
	return bounceTable{direction: c.Direction, output: out}
}

func (b bounceTable) styleAt(p float64) Style {
	s := Style{
		Opacity: Interpolate(p, fadeInFirstThird, fadeInOutput, ExtrapolateExtend),
		Scale:   1,
	}
	switch b.direction {
	case DirectionTop, DirectionBottom:
		s.TranslateY = Interpolate(p, bounceInput, b.output, ExtrapolateExtend)
	case DirectionLeft, DirectionRight:
		s.TranslateX = Interpolate(p, bounceInput, b.output, ExtrapolateExtend)
	}
	return s
}
