package willowfx

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders Image, or a solid Color rectangle when Image is nil
)

// Direction is the side an element enters from. Top means the element starts
// below its resting place and moves up, matching the mobile convention the
// presets were tuned against.
type Direction uint8

const (
	DirectionTop Direction = iota
	DirectionBottom
	DirectionLeft
	DirectionRight
	DirectionTopLeft
	DirectionTopRight
	DirectionBottomLeft
	DirectionBottomRight
)

var directionNames = [...]string{
	DirectionTop:         "top",
	DirectionBottom:      "bottom",
	DirectionLeft:        "left",
	DirectionRight:       "right",
	DirectionTopLeft:     "top-left",
	DirectionTopRight:    "top-right",
	DirectionBottomLeft:  "bottom-left",
	DirectionBottomRight: "bottom-right",
}

// String returns the hyphenated direction name ("top-left").
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection maps a hyphenated name back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}

// diagonal reports whether d is one of the four corner directions.
func (d Direction) diagonal() bool {
	return d >= DirectionTopLeft && d <= DirectionBottomRight
}

// RotateDirection selects the sign of a RotateIn spin.
type RotateDirection uint8

const (
	Clockwise RotateDirection = iota
	CounterClockwise
)

// FlipAxis selects which 3D axis a FlipIn rotates about.
type FlipAxis uint8

const (
	FlipAxisY FlipAxis = iota // rotateY (horizontal flip), the default
	FlipAxisX                 // rotateX (vertical flip)
)

// FlipDirection selects the sign of a FlipIn rotation.
type FlipDirection uint8

const (
	FlipForward FlipDirection = iota
	FlipBackward
)

// EntranceKind identifies which preset an Entrance was built from.
type EntranceKind uint8

const (
	KindFade EntranceKind = iota
	KindSlide
	KindScale
	KindRotate
	KindBounce
	KindFlip
	KindZoom
)

var kindNames = [...]string{"fade", "slide", "scale", "rotate", "bounce", "flip", "zoom"}

func (k EntranceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
