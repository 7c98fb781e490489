// Package tcellhost adapts tcell mouse events to an imgzoompan.Controller,
// for terminal viewers that render a raster as a grid of cells. Feed every
// *tcell.EventMouse from the screen's event loop to HandleEvent; key
// events and everything else pass through untouched.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/danyalejandro/imgzoompan"
)

// Viewer reports where the raster content sits in cell coordinates.
type Viewer interface {
	ContentRect() (x, y, w, h float64)
}

// Adapter translates tcell's level-triggered button masks into the
// edge-triggered press/release events the controller consumes.
type Adapter struct {
	ctrl   *imgzoompan.Controller
	viewer Viewer
	held   tcell.ButtonMask
}

// New creates an adapter for one controller.
func New(ctrl *imgzoompan.Controller, viewer Viewer) *Adapter {
	return &Adapter{ctrl: ctrl, viewer: viewer}
}

var buttonMasks = [...]struct {
	mask tcell.ButtonMask
	zp   imgzoompan.MouseButton
}{
	{tcell.Button1, imgzoompan.ButtonLeft},
	{tcell.Button2, imgzoompan.ButtonRight},
	{tcell.Button3, imgzoompan.ButtonMiddle},
}

// HandleEvent consumes a tcell event. It returns true when the event was a
// mouse event it translated; other event types are left for the caller.
func (a *Adapter) HandleEvent(ev tcell.Event) (bool, error) {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false, nil
	}

	cx, cy := mouse.Position()
	pos := a.toRaster(float64(cx), float64(cy))
	cur := mouse.Buttons()

	if cur&tcell.WheelUp != 0 {
		if err := a.ctrl.OnScroll(pos, -1, a.ctrl.Current()); err != nil {
			return true, err
		}
	}
	if cur&tcell.WheelDown != 0 {
		if err := a.ctrl.OnScroll(pos, 1, a.ctrl.Current()); err != nil {
			return true, err
		}
	}

	// Press/release edges from the level-triggered mask.
	pressed := cur &^ a.held
	released := a.held &^ cur
	a.held = cur &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	for _, b := range buttonMasks {
		if pressed&b.mask != 0 {
			if err := a.ctrl.OnPointerDown(b.zp, pos); err != nil {
				return true, err
			}
		}
		if released&b.mask != 0 {
			if err := a.ctrl.OnPointerUp(b.zp, pos); err != nil {
				return true, err
			}
		}
	}

	return true, a.ctrl.OnPointerMove(pos)
}

func (a *Adapter) toRaster(cx, cy float64) imgzoompan.Vec2 {
	x, y, w, h := a.viewer.ContentRect()
	ext := a.ctrl.Current()
	return imgzoompan.Vec2{
		X: ext.XMin + (cx-x)/w*ext.Width(),
		Y: ext.YMin + (cy-y)/h*ext.Height(),
	}
}
