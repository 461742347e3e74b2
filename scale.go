package willowfx

// scaleInTravel is the fixed offset ScaleIn travels when a direction is set.
const scaleInTravel = 30.0

// ScaleInConfig configures NewScaleIn.
type ScaleInConfig struct {
	EntranceConfig

	InitialScale float64
	FinalScale   float64
	// Direction adds a 30px drift from one side when UseDirection is set.
	// Only the four edge directions translate; diagonals add no drift.
	Direction    Direction
	UseDirection bool
}

// DefaultScaleInConfig returns a grow from 0 to 1 with no drift.
func DefaultScaleInConfig() ScaleInConfig {
	return ScaleInConfig{
		EntranceConfig: DefaultEntranceConfig(),
		InitialScale:   0,
		FinalScale:     1,
	}
}

// NewScaleIn creates a container that grows its children from InitialScale to
// FinalScale while fading in, driven by the bouncy spring.
func NewScaleIn(name string, cfg ScaleInConfig, children ...*Node) *Node {
	n := newEntranceContainer(name, children)
	attachEntrance(n, KindScale, cfg.EntranceConfig, NewSpringDriver(SpringBouncy), cfg.styleAt)
	return n
}

func (c ScaleInConfig) styleAt(p float64) Style {
	s := Style{Opacity: p, Scale: lerp(p, c.InitialScale, c.FinalScale)}
	if !c.UseDirection || c.Direction.diagonal() {
		return s
	}
	switch c.Direction {
	case DirectionTop:
		s.TranslateY = lerp(p, scaleInTravel, 0)
	case DirectionBottom:
		s.TranslateY = lerp(p, -scaleInTravel, 0)
	case DirectionLeft:
		s.TranslateX = lerp(p, scaleInTravel, 0)
	case DirectionRight:
		s.TranslateX = lerp(p, -scaleInTravel, 0)
	}
	return s
}
