package folio

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows FPS, TPS, and the current section in the top-left
// corner. The text is refreshed every half second.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	dirty bool
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 is enough for three short lines.
	return &fpsOverlay{img: ebiten.NewImage(120, 48), dirty: true}
}

func (f *fpsOverlay) update(dt float64, section string) {
	f.since += dt
	if f.since < 0.5 && !f.dirty {
		return
	}
	f.since = 0
	f.dirty = false

	f.img.Clear()
	// Dark backing so the text reads over the field.
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), section))
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	screen.DrawImage(f.img, &op)
}
