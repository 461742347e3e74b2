package willowfx

var (
	flipOpacityInput  = []float64{0, 0.5, 1}
	flipOpacityOutput = []float64{0, 1, 1}
)

// FlipInConfig configures NewFlipIn.
type FlipInConfig struct {
	EntranceConfig

	Axis      FlipAxis
	Direction FlipDirection
}

// DefaultFlipInConfig returns a forward flip about the vertical axis.
func DefaultFlipInConfig() FlipInConfig {
	return FlipInConfig{
		EntranceConfig: DefaultEntranceConfig(),
		Axis:           FlipAxisY,
		Direction:      FlipForward,
	}
}

// NewFlipIn creates a container that flips its children in from edge-on,
// driven by the default spring.
func NewFlipIn(name string, cfg FlipInConfig, children ...*Node) *Node {
	n := newEntranceContainer(name, children)
	attachEntrance(n, KindFlip, cfg.EntranceConfig, NewSpringDriver(SpringDefault), cfg.styleAt)
	return n
}

func (c FlipInConfig) styleAt(p float64) Style {
	from := 90.0
	if c.Direction == FlipBackward {
		from = -90
	}
	s := Style{
		Opacity: Interpolate(p, flipOpacityInput, flipOpacityOutput, ExtrapolateExtend),
		Scale:   lerp(p, 0.8, 1),
	}
	if c.Axis == FlipAxisX {
		s.RotateX = lerp(p, from, 0)
	} else {
		s.RotateY = lerp(p, from, 0)
	}
	return s
}
