/*
Package imgzoompan provides mouse-wheel zoom and drag-pan navigation over a
fixed-size 2D raster, designed as the logic layer beneath an image viewer.

# Overview

The package owns the mapping between the visible sub-rectangle of a raster
(the extent) and pointer input. The host window system keeps rendering and
event dispatch; it forwards raw scroll and pointer events to a Controller
and redraws with whatever extent the controller hands back. Zoom scales the
extent around the pointer, pan translates it relative to a seed position,
and both are clamped so the extent never leaves the raster when its pixel
bounds are known.

# Quick Start

	host := myViewer{} // implements imgzoompan.Host
	ctrl, err := imgzoompan.New(host,
	    imgzoompan.Extent{XMin: 0, XMax: 400, YMin: 0, YMax: 300},
	    imgzoompan.WithImageSize(400, 300),
	    imgzoompan.WithMagnify(1.2),
	)
	if err != nil {
	    // bad configuration
	}

	// Event loop (driven by the host window system)
	ctrl.OnScroll(pos, wheelDelta, ctrl.Current())
	ctrl.OnPointerDown(imgzoompan.ButtonMiddle, pos)
	ctrl.OnPointerMove(pos)
	ctrl.OnPointerUp(imgzoompan.ButtonMiddle, pos)

Ready-made host adapters for GLFW, Ebitengine and tcell live under
backend/. A controller is single-threaded: drive it synchronously from one
event loop, one instance per viewport. Multiple viewports get one
controller each, with fully disjoint state.
*/
package imgzoompan
