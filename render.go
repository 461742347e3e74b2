package willowfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders every visible sprite in tree order using the world transforms
// computed by the last Update. Draw never advances animations.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	var op ebiten.DrawImageOptions
	s.drawNode(screen, s.root, &op)
	s.flushScreenshots(screen)
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node, op *ebiten.DrawImageOptions) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeSprite && n.worldAlpha > 0 {
		img := n.Image
		if img == nil {
			img = s.solidPixel()
		}
		*op = ebiten.DrawImageOptions{}
		setGeoM(&op.GeoM, n.worldTransform)
		a := n.worldAlpha * n.Color.A
		op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
		dst.DrawImage(img, op)
	}
	for _, child := range n.children {
		s.drawNode(dst, child, op)
	}
}

// solidPixel lazily creates the 1x1 white image used for color-only sprites.
func (s *Scene) solidPixel() *ebiten.Image {
	if s.whitePixel == nil {
		s.whitePixel = ebiten.NewImage(1, 1)
		s.whitePixel.Fill(ColorWhite.toRGBA())
	}
	return s.whitePixel
}

// setGeoM copies an affine [a, b, c, d, tx, ty] matrix into g.
func setGeoM(g *ebiten.GeoM, m [6]float64) {
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
}
