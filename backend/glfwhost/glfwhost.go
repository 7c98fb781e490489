// Package glfwhost adapts GLFW window input to an imgzoompan.Controller.
//
// Attach installs scroll, mouse-button and cursor-position callbacks on
// the window. GLFW keeps exactly one callback per kind, so installation
// REPLACES whatever handlers were there before; callers that need their
// own press/release handling compose it through the controller's
// WithButtonDownFunc/WithButtonUpFunc hooks, which run before the
// controller's own logic.
package glfwhost

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/danyalejandro/imgzoompan"
)

// Viewer reports where the raster content sits in window coordinates, so
// the adapter can map cursor positions into raster space.
type Viewer interface {
	// ContentRect returns the window-space rectangle (origin and size in
	// screen pixels) currently occupied by the raster.
	ContentRect() (x, y, w, h float64)
}

// Adapter forwards GLFW input events to a controller.
type Adapter struct {
	window *glfw.Window
	ctrl   *imgzoompan.Controller
	viewer Viewer
	err    error
}

// Attach wires the window's input callbacks to the controller. See the
// package comment for the callback-replacement caveat.
func Attach(window *glfw.Window, ctrl *imgzoompan.Controller, viewer Viewer) *Adapter {
	a := &Adapter{window: window, ctrl: ctrl, viewer: viewer}
	window.SetScrollCallback(a.scrollCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Err returns the first error a controller handler reported, if any.
// Handler errors only occur on host contract violations, so a non-nil
// result indicates a bug in the embedding application.
func (a *Adapter) Err() error { return a.err }

func (a *Adapter) record(err error) {
	if err != nil && a.err == nil {
		a.err = err
	}
}

// toRaster maps window coordinates to raster coordinates through the
// viewer's content rectangle and the controller's current extent.
func (a *Adapter) toRaster(cx, cy float64) imgzoompan.Vec2 {
	x, y, w, h := a.viewer.ContentRect()
	ext := a.ctrl.Current()
	return imgzoompan.Vec2{
		X: ext.XMin + (cx-x)/w*ext.Width(),
		Y: ext.YMin + (cy-y)/h*ext.Height(),
	}
}

func (a *Adapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if yoff == 0 {
		return
	}
	// GLFW reports wheel-up as positive; the controller's convention is
	// negative for zoom in.
	delta := -int(math.Round(yoff))
	if delta == 0 {
		if yoff > 0 {
			delta = -1
		} else {
			delta = 1
		}
	}
	cx, cy := w.GetCursorPos()
	a.record(a.ctrl.OnScroll(a.toRaster(cx, cy), delta, a.ctrl.Current()))
}

func (a *Adapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := mapButton(button)
	if b == imgzoompan.ButtonNone {
		return
	}
	cx, cy := w.GetCursorPos()
	pos := a.toRaster(cx, cy)
	switch action {
	case glfw.Press:
		a.record(a.ctrl.OnPointerDown(b, pos))
	case glfw.Release:
		a.record(a.ctrl.OnPointerUp(b, pos))
	}
}

func (a *Adapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.record(a.ctrl.OnPointerMove(a.toRaster(xpos, ypos)))
}

// mapButton maps GLFW mouse buttons to controller buttons.
func mapButton(button glfw.MouseButton) imgzoompan.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imgzoompan.ButtonLeft
	case glfw.MouseButtonMiddle:
		return imgzoompan.ButtonMiddle
	case glfw.MouseButtonRight:
		return imgzoompan.ButtonRight
	default:
		return imgzoompan.ButtonNone
	}
}

// Cursors maps controller cursor affordances onto GLFW standard cursors.
// Embed it in a Host implementation to satisfy imgzoompan.CursorHost.
type Cursors struct {
	window *glfw.Window
	shapes map[imgzoompan.Cursor]*glfw.Cursor
}

// NewCursors creates the standard cursor set for a window. The returned
// value owns the GLFW cursor objects; call Destroy when done.
func NewCursors(window *glfw.Window) *Cursors {
	return &Cursors{
		window: window,
		shapes: map[imgzoompan.Cursor]*glfw.Cursor{
			imgzoompan.CursorArrow: glfw.CreateStandardCursor(glfw.ArrowCursor),
			imgzoompan.CursorHand:  glfw.CreateStandardCursor(glfw.HandCursor),
			// GLFW 3.3 has no not-allowed shape; crosshair is the closest
			// affordance for "no pan target here".
			imgzoompan.CursorForbidden: glfw.CreateStandardCursor(glfw.CrosshairCursor),
		},
	}
}

// SetCursor implements imgzoompan.CursorHost.
func (c *Cursors) SetCursor(cur imgzoompan.Cursor) {
	if shape, ok := c.shapes[cur]; ok {
		c.window.SetCursor(shape)
	}
}

// Destroy releases the GLFW cursor objects.
func (c *Cursors) Destroy() {
	for _, shape := range c.shapes {
		shape.Destroy()
	}
	c.shapes = nil
}
