// Package ebitenhost adapts Ebitengine's polled input to an
// imgzoompan.Controller. Unlike GLFW's callback model, ebiten exposes
// input as per-frame state, so the adapter is driven by calling Update
// once per game tick.
package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/danyalejandro/imgzoompan"
)

// Viewer reports where the raster content sits in screen coordinates.
type Viewer interface {
	ContentRect() (x, y, w, h float64)
}

// buttons pairs each ebiten mouse button with the controller's identifier.
var buttons = [...]struct {
	eb ebiten.MouseButton
	zp imgzoompan.MouseButton
}{
	{ebiten.MouseButtonLeft, imgzoompan.ButtonLeft},
	{ebiten.MouseButtonMiddle, imgzoompan.ButtonMiddle},
	{ebiten.MouseButtonRight, imgzoompan.ButtonRight},
}

// Adapter polls ebiten input and feeds a controller.
type Adapter struct {
	ctrl   *imgzoompan.Controller
	viewer Viewer
}

// New creates an adapter. Call Update from the game's Update method.
func New(ctrl *imgzoompan.Controller, viewer Viewer) *Adapter {
	return &Adapter{ctrl: ctrl, viewer: viewer}
}

// Update samples this frame's input and forwards the resulting events:
// wheel ticks first, then button edges, then pointer motion. Returns the
// first handler error, which only occurs on host contract violations.
func (a *Adapter) Update() error {
	mx, my := ebiten.CursorPosition()
	pos := a.toRaster(float64(mx), float64(my))

	if _, wy := ebiten.Wheel(); wy != 0 {
		// Wheel-up is positive in ebiten, zoom-in is negative here.
		delta := -int(math.Round(wy))
		if delta == 0 {
			if wy > 0 {
				delta = -1
			} else {
				delta = 1
			}
		}
		if err := a.ctrl.OnScroll(pos, delta, a.ctrl.Current()); err != nil {
			return err
		}
	}

	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			if err := a.ctrl.OnPointerDown(b.zp, pos); err != nil {
				return err
			}
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			if err := a.ctrl.OnPointerUp(b.zp, pos); err != nil {
				return err
			}
		}
	}

	// No-op unless a pan session is active.
	return a.ctrl.OnPointerMove(pos)
}

func (a *Adapter) toRaster(cx, cy float64) imgzoompan.Vec2 {
	x, y, w, h := a.viewer.ContentRect()
	ext := a.ctrl.Current()
	return imgzoompan.Vec2{
		X: ext.XMin + (cx-x)/w*ext.Width(),
		Y: ext.YMin + (cy-y)/h*ext.Height(),
	}
}
