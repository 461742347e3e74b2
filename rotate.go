package willowfx

// RotateInConfig configures NewRotateIn.
type RotateInConfig struct {
	EntranceConfig

	// Rotation is the starting angle in degrees.
	Rotation  float64
	Direction RotateDirection
}

// DefaultRotateInConfig returns a full clockwise turn.
func DefaultRotateInConfig() RotateInConfig {
	return RotateInConfig{
		EntranceConfig: DefaultEntranceConfig(),
		Rotation:       360,
		Direction:      Clockwise,
	}
}

// NewRotateIn creates a container that spins its children into place while
// growing from half size, driven by the default spring.
func NewRotateIn(name string, cfg RotateInConfig, children ...*Node) *Node {
	n := newEntranceContainer(name, children)
	attachEntrance(n, KindRotate, cfg.EntranceConfig, NewSpringDriver(SpringDefault), cfg.styleAt)
	return n
}

func (c RotateInConfig) styleAt(p float64) Style {
	from := c.Rotation
	if c.Direction == CounterClockwise {
		from = -from
	}
	return Style{
		Opacity: p,
		Rotate:  lerp(p, from, 0),
		Scale:   lerp(p, 0.5, 1),
	}
}
