//go:build ebiten

package ui

import (
	"image/color"

	"rect-lives/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// minGridScale is the smallest cell size at which grid lines stay readable.
const minGridScale = 4

// Overlay draws optional visuals on top of the board: grid lines, the cell
// under the cursor and a paused banner.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
	paused   bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetPaused toggles the paused banner.
func (o *Overlay) SetPaused(paused bool) { o.paused = paused }

// Update handles the overlay hotkeys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showGrid && o.scale >= minGridScale {
		line := color.RGBA{R: 24, G: 24, B: 24, A: 24}
		for x := 1; x < size.W; x++ {
			o.rect(screen, x*o.scale, 0, 1, size.H*o.scale, line)
		}
		for y := 1; y < size.H; y++ {
			o.rect(screen, 0, y*o.scale, size.W*o.scale, 1, line)
		}
	}

	mx, my := ebiten.CursorPosition()
	cx, cy := mx/o.scale, my/o.scale
	if mx >= 0 && my >= 0 && cx < size.W && cy < size.H {
		o.rect(screen, cx*o.scale, cy*o.scale, o.scale, o.scale, color.RGBA{R: 34, G: 60, B: 96, A: 96})
	}

	if o.paused {
		text.Draw(screen, "PAUSED", basicfont.Face7x13, 8, 18, color.RGBA{R: 255, G: 200, B: 80, A: 255})
	}
}

func (o *Overlay) rect(dst *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
