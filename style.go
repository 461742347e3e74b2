package willowfx

import "math"

// Style is the animated overlay an Entrance writes onto its node. It is
// composed on top of the node's own transform, so user-set X/Y/Scale/Rotation
// are never overwritten by an animation.
//
// Angles are in degrees. RotateX and RotateY are 3D rotations about the
// horizontal and vertical axes; they are rendered as an orthographic
// projection (the node is squashed by cos of the angle along the other axis).
type Style struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64
	Rotate     float64
	RotateX    float64
	RotateY    float64
}

// IdentityStyle leaves a node exactly as its own transform describes it.
var IdentityStyle = Style{Opacity: 1, Scale: 1}

// scaleFactors returns the horizontal and vertical multipliers the style
// applies, including the flip projection.
func (s Style) scaleFactors() (float64, float64) {
	sx, sy := s.Scale, s.Scale
	if s.RotateY != 0 {
		sx *= math.Cos(s.RotateY * math.Pi / 180)
	}
	if s.RotateX != 0 {
		sy *= math.Cos(s.RotateX * math.Pi / 180)
	}
	return sx, sy
}

// radians returns the in-plane rotation in radians.
func (s Style) radians() float64 {
	return s.Rotate * math.Pi / 180
}
