// Ebitenviewer is the Ebitengine counterpart of the GLFW example: the same
// checkerboard raster navigated with wheel zoom and middle-drag pan,
// driven by the polling adapter instead of window callbacks.
package main

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/danyalejandro/imgzoompan"
	"github.com/danyalejandro/imgzoompan/backend/ebitenhost"
)

const (
	screenWidth  = 1024
	screenHeight = 768
	rasterWidth  = 1600
	rasterHeight = 1200
)

type game struct {
	raster  *ebiten.Image
	ctrl    *imgzoompan.Controller
	adapter *ebitenhost.Adapter
	view    imgzoompan.Extent
}

func (g *game) HitTest(pos imgzoompan.Vec2) (imgzoompan.Extent, bool) {
	if !g.view.Contains(pos) {
		return imgzoompan.Extent{}, false
	}
	return g.view, true
}

func (g *game) ApplyExtent(ext imgzoompan.Extent) {
	g.view = ext
}

// SetCursor implements imgzoompan.CursorHost on top of ebiten's cursor
// shapes.
func (g *game) SetCursor(cur imgzoompan.Cursor) {
	switch cur {
	case imgzoompan.CursorHand:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	case imgzoompan.CursorForbidden:
		ebiten.SetCursorShape(ebiten.CursorShapeNotAllowed)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// ContentRect implements ebitenhost.Viewer; the raster fills the screen.
func (g *game) ContentRect() (x, y, w, h float64) {
	return 0, 0, screenWidth, screenHeight
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.ctrl.BumpMagnify(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.ctrl.BumpMagnify(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	return g.adapter.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	sub := g.raster.SubImage(image.Rect(
		int(g.view.XMin), int(g.view.YMin),
		int(g.view.XMax), int(g.view.YMax),
	)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(screenWidth/g.view.Width(), screenHeight/g.view.Height())
	screen.DrawImage(sub, &op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"view %.0f,%.0f – %.0f,%.0f  (wheel: zoom, middle-drag: pan, right-click: reset)",
		g.view.XMin, g.view.YMin, g.view.XMax, g.view.YMax))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	g := &game{
		raster: checkerboard(rasterWidth, rasterHeight, 50),
		view:   imgzoompan.Extent{XMin: 0, XMax: rasterWidth, YMin: 0, YMax: rasterHeight},
	}

	ctrl, err := imgzoompan.New(g, g.view,
		imgzoompan.WithImageSize(rasterWidth, rasterHeight),
		imgzoompan.WithMagnify(1.2),
	)
	if err != nil {
		log.Fatal(err)
	}
	g.ctrl = ctrl
	g.adapter = ebitenhost.New(ctrl, g)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("imgzoompan ebiten example")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func checkerboard(w, h, cell int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			if (x/cell+y/cell)%2 == 0 {
				img.Pix[i+0] = 0xd0
				img.Pix[i+1] = 0xd0
				img.Pix[i+2] = 0xd8
			} else {
				img.Pix[i+0] = 0x30
				img.Pix[i+1] = 0x60
				img.Pix[i+2] = 0x90
			}
			img.Pix[i+3] = 0xff
		}
	}
	return ebiten.NewImageFromImage(img)
}
