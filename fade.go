package willowfx

// FadeInConfig configures NewFadeIn.
type FadeInConfig struct {
	EntranceConfig

	// Direction is the side the element drifts in from.
	Direction Direction
	// Distance is the travel along the primary axis. Diagonals travel half
	// of it horizontally.
	Distance float64
	// Scale is the starting scale; 1 disables the scale component.
	Scale float64
}

// DefaultFadeInConfig returns a fade from 75px below with no scaling.
func DefaultFadeInConfig() FadeInConfig {
	return FadeInConfig{
		EntranceConfig: DefaultEntranceConfig(),
		Direction:      DirectionTop,
		Distance:       75,
		Scale:          1,
	}
}

// NewFadeIn creates a container that fades its children in while they drift
// from Direction, driven by the default spring.
func NewFadeIn(name string, cfg FadeInConfig, children ...*Node) *Node {
	n := newEntranceContainer(name, children)
	attachEntrance(n, KindFade, cfg.EntranceConfig, NewSpringDriver(SpringDefault), cfg.styleAt)
	return n
}

func (c FadeInConfig) styleAt(p float64) Style {
	s := Style{Opacity: p, Scale: 1}
	d := c.Distance
	switch c.Direction {
	case DirectionTop:
		s.TranslateY = lerp(p, d, 0)
	case DirectionBottom:
		s.TranslateY = lerp(p, -d, 0)
	case DirectionLeft:
		s.TranslateX = lerp(p, d, 0)
	case DirectionRight:
		s.TranslateX = lerp(p, -d, 0)
	case DirectionTopLeft:
		s.TranslateY = lerp(p, d, 0)
		s.TranslateX = lerp(p, d*0.5, 0)
	case DirectionTopRight:
		s.TranslateY = lerp(p, d, 0)
		s.TranslateX = lerp(p, -d*0.5, 0)
	case DirectionBottomLeft:
		s.TranslateY = lerp(p, -d, 0)
		s.TranslateX = lerp(p, d*0.5, 0)
	case DirectionBottomRight:
		s.TranslateY = lerp(p, -d, 0)
		s.TranslateX = lerp(p, -d*0.5, 0)
	}
	if c.Scale != 1 {
		s.Scale = lerp(p, c.Scale, 1)
	}
	return s
}

// newEntranceContainer creates the wrapper node shared by every preset.
func newEntranceContainer(name string, children []*Node) *Node {
	n := NewContainer(name)
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}
