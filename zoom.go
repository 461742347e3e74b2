package willowfx

var zoomInput = []float64{0, 0.5, 1}

// ZoomInConfig configures NewZoomIn.
type ZoomInConfig struct {
	EntranceConfig

	InitialScale float64
	// Overshoot is the scale reached halfway through the drive.
	Overshoot float64
}

// DefaultZoomInConfig returns a zoom from 0 overshooting to 1.1.
func DefaultZoomInConfig() ZoomInConfig {
	return ZoomInConfig{
		EntranceConfig: DefaultEntranceConfig(),
		InitialScale:   0,
		Overshoot:      1.1,
	}
}

// NewZoomIn creates a container that zooms its children past full size and
// settles at 1, driven by the bouncy spring.
func NewZoomIn(name string, cfg ZoomInConfig, children ...*Node) *Node {
	n := newEntranceContainer(name, children)
	output := []float64{cfg.InitialScale, cfg.Overshoot, 1}
	styleAt := func(p float64) Style {
		return Style{
			Opacity: Interpolate(p, fadeInFirstThird, fadeInOutput, ExtrapolateExtend),
			Scale:   Interpolate(p, zoomInput, output, ExtrapolateExtend),
		}
	}
	attachEntrance(n, KindZoom, cfg.EntranceConfig, NewSpringDriver(SpringBouncy), styleAt)
	return n
}
