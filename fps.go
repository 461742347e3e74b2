package willowfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay redraws, in seconds.
const fpsRefresh = 0.5

// NewFPSWidget creates a sprite node showing the frame rate and how many of
// scene's entrances are still driving. Run adds one when RunConfig.ShowFPS
// is set.
func NewFPSWidget(scene *Scene) *Node {
	img := ebiten.NewImage(140, 32)
	node := NewSprite("fps_widget", img)

	elapsed := fpsRefresh
	node.OnUpdate = func(dt float64) {
		if elapsed += dt; elapsed < fpsRefresh {
			return
		}
		elapsed = 0
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fpsText(ebiten.ActualFPS(), scene))
	}
	return node
}

func fpsText(fps float64, scene *Scene) string {
	total, running := scene.EntranceCounts()
	return fmt.Sprintf("FPS: %.1f\nentrances: %d/%d", fps, running, total)
}
