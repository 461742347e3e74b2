package willowfx

// screenSize stands in for the window dimensions when a SlideIn is built.
// Run sets it from RunConfig.
var screenSize = Vec2{X: 640, Y: 480}

// SetScreenSize sets the window dimensions SlideIn uses for its default
// travel. Entrances built earlier keep the size they captured.
func SetScreenSize(w, h float64) {
	screenSize = Vec2{X: w, Y: h}
}

// ScreenSize returns the dimensions set by SetScreenSize or Run.
func ScreenSize() Vec2 {
	return screenSize
}

// SlideInConfig configures NewSlideIn.
type SlideInConfig struct {
	EntranceConfig

	Direction Direction
	// Distance is the horizontal travel; 0 means the screen width. Vertical
	// travel is always derived from the screen height.
	Distance float64
	// Screen overrides the captured screen size when non-zero.
	Screen Vec2
}

// DefaultSlideInConfig returns a slide in from the left across the full screen width.
func DefaultSlideInConfig() SlideInConfig {
	return SlideInConfig{
		EntranceConfig: DefaultEntranceConfig(),
		Direction:      DirectionLeft,
	}
}

// NewSlideIn creates a container whose children slide in from off-screen
// without fading, driven by the default spring.
func NewSlideIn(name string, cfg SlideInConfig, children ...*Node) *Node {
	if cfg.Screen == (Vec2{}) {
		cfg.Screen = screenSize
	}
	n := newEntranceContainer(name, children)
	attachEntrance(n, KindSlide, cfg.EntranceConfig, NewSpringDriver(SpringDefault), cfg.styleAt)
	return n
}

func (c SlideInConfig) styleAt(p float64) Style {
	s := Style{Opacity: 1, Scale: 1}
	d := c.Distance
	if d == 0 {
		d = c.Screen.X
	}
	h := c.Screen.Y
	switch c.Direction {
	case DirectionLeft:
		s.TranslateX = lerp(p, d, 0)
	case DirectionRight:
		s.TranslateX = lerp(p, -d, 0)
	case DirectionTop:
		s.TranslateY = lerp(p, h/2, 0)
	case DirectionBottom:
		s.TranslateY = lerp(p, -h/2, 0)
	case DirectionTopLeft:
		s.TranslateX = lerp(p, d/2, 0)
		s.TranslateY = lerp(p, h/3, 0)
	case DirectionTopRight:
		s.TranslateX = lerp(p, -d/2, 0)
		s.TranslateY = lerp(p, h/3, 0)
	case DirectionBottomLeft:
		s.TranslateX = lerp(p, d/2, 0)
		s.TranslateY = lerp(p, -h/3, 0)
	case DirectionBottomRight:
		s.TranslateX = lerp(p, -d/2, 0)
		s.TranslateY = lerp(p, -h/3, 0)
	}
	return s
}
