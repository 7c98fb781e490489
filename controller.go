package imgzoompan

import "math"

// panSession tracks an in-progress drag. The seed is the pointer position
// normalized to (0,1) within the extent at pan start; the snapshot is that
// extent, held fixed for the whole drag so the normalized deltas stay
// meaningful while the extent itself is being translated.
type panSession struct {
	seed     Vec2
	snapshot Extent
}

// Controller owns the visible extent of one viewport and mutates it in
// response to scroll and pointer events forwarded by the host. It is a
// two-state machine: Idle, and Panning while a pan session exists.
//
// A controller is not safe for concurrent use; drive it from a single
// event loop.
type Controller struct {
	cfg  Config
	host Host

	// cursor is non-nil when the host also implements CursorHost.
	cursor CursorHost

	current  Extent
	original Extent
	hasOrig  bool

	// tracked is the extent produced by the last zoom. When a scroll
	// arrives for a different extent, the zoom is happening on a new view
	// and the original is re-captured.
	tracked    Extent
	hasTracked bool

	// zoomSteps accumulates net zoom-in steps since the last reset-to-zero
	// event, capping zoom depth independent of the raster's pixel bounds.
	zoomSteps int

	pan *panSession
}

// New creates a controller for one viewport. baseline is the extent
// currently displayed by the host. Construction fails with *ConfigError
// when an option is out of range or the baseline extent is degenerate.
func New(host Host, baseline Extent, opts ...Option) (*Controller, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if !baseline.Valid() {
		return nil, &ConfigError{Field: "extent", Value: baseline, Reason: "must have positive finite span on both axes"}
	}
	c := &Controller{
		cfg:     cfg,
		host:    host,
		current: baseline,
	}
	c.cursor, _ = host.(CursorHost)
	return c, nil
}

// Current returns the live visible extent.
func (c *Controller) Current() Extent { return c.current }

// Original returns the extent captured on the first zoom or pan action,
// if any. It is what Reset and the reset button restore.
func (c *Controller) Original() (Extent, bool) { return c.original, c.hasOrig }

// Panning reports whether a pan session is in progress.
func (c *Controller) Panning() bool { return c.pan != nil }

// ZoomSteps returns the accumulated net zoom-in step count.
func (c *Controller) ZoomSteps() int { return c.zoomSteps }

// Config returns the controller configuration after normalization.
func (c *Controller) Config() Config { return c.cfg }

// OnScroll handles one mouse-wheel tick. delta is signed: negative zooms
// in, positive zooms out, mirroring a wheel's vertical scroll convention.
// pos is the pointer position in raster coordinates within viewport, the
// extent the host is currently displaying. The extent is scaled around
// pos, so the view zooms into the cursor rather than the center.
//
// Steps that would push the accumulated zoom count past MaxZoomSteps are
// ignored. Steps whose result would leave the raster bounds restore the
// original extent instead; that is policy, not an error.
func (c *Controller) OnScroll(pos Vec2, delta int, viewport Extent) error {
	if !pos.finite() {
		return &InvalidEventError{Handler: "OnScroll", Reason: "pointer position is not finite"}
	}
	if !viewport.Valid() {
		return &InvalidEventError{Handler: "OnScroll", Reason: "viewport extent is degenerate"}
	}
	if delta == 0 {
		return nil
	}
	if c.zoomSteps-delta > c.cfg.MaxZoomSteps {
		return nil
	}

	// Zooming a view we haven't seen before: capture it as the extent to
	// restore on reset or on an out-of-bounds step.
	if !c.hasOrig || !c.hasTracked || viewport != c.tracked {
		c.original = viewport
		c.hasOrig = true
	}

	fx := math.Pow(c.cfg.Magnify*c.cfg.XMagnify, float64(delta))
	fy := math.Pow(c.cfg.Magnify*c.cfg.YMagnify, float64(delta))
	next := Extent{
		XMin: (viewport.XMin-pos.X)*fx + pos.X,
		XMax: (viewport.XMax-pos.X)*fx + pos.X,
		YMin: (viewport.YMin-pos.Y)*fy + pos.Y,
		YMax: (viewport.YMax-pos.Y)*fy + pos.Y,
	}.round()

	// Rounding can collapse a tiny extent to zero span; skip the step.
	if !next.Valid() {
		return nil
	}

	if c.cfg.Bounds.Known() && !insideBounds(next, c.cfg.Bounds) {
		c.current = c.original
		c.zoomSteps = 0
	} else {
		c.current = next
		c.zoomSteps -= delta
	}

	c.tracked = c.current
	c.hasTracked = true
	c.host.ApplyExtent(c.current)
	return nil
}

// insideBounds reports whether the extent lies within the raster.
func insideBounds(e Extent, b RasterBounds) bool {
	return e.XMin >= 0 && e.XMax <= b.Width && e.YMin >= 0 && e.YMax <= b.Height
}

// OnPointerDown handles a pointer press. The ButtonDown hook is invoked
// first, for every button. A press of the configured pan button over a
// viewable area starts a pan session; over empty space it only signals a
// forbidden cursor. Other buttons take no action here.
func (c *Controller) OnPointerDown(button MouseButton, pos Vec2) error {
	if !pos.finite() {
		return &InvalidEventError{Handler: "OnPointerDown", Reason: "pointer position is not finite"}
	}
	if c.cfg.ButtonDown != nil {
		c.cfg.ButtonDown(button, pos)
	}
	if button != c.cfg.PanButton || c.cfg.PanButton == ButtonNone {
		return nil
	}

	ext, ok := c.host.HitTest(pos)
	if !ok {
		c.setCursor(CursorForbidden)
		return nil
	}
	if !ext.Valid() {
		return &InvalidEventError{Handler: "OnPointerDown", Reason: "hit-test extent is degenerate"}
	}

	// The original extent is captured lazily on the first zoom or pan, so
	// the reset gesture works even when the first action was a drag.
	if !c.hasOrig {
		c.original = ext
		c.hasOrig = true
	}

	c.pan = &panSession{
		seed: Vec2{
			X: (pos.X - ext.XMin) / ext.Width(),
			Y: (pos.Y - ext.YMin) / ext.Height(),
		},
		snapshot: ext,
	}
	c.setCursor(CursorHand)
	return nil
}

// OnPointerMove handles pointer motion. It is a no-op unless a pan session
// is active. Panning translates the extent, never rescales it: the spans
// captured at pan start are preserved exactly. The two axes are clamped
// independently; motion along a blocked axis is absorbed while the other
// axis keeps moving.
func (c *Controller) OnPointerMove(pos Vec2) error {
	if c.pan == nil {
		return nil
	}
	if !pos.finite() {
		return &InvalidEventError{Handler: "OnPointerMove", Reason: "pointer position is not finite"}
	}

	snap := c.pan.snapshot
	spanX, spanY := snap.Width(), snap.Height()

	// Normalize against the snapshot ranges, not the live extent: the
	// percentages stay meaningful while the extent slides under the
	// pointer.
	dx := (pos.X-snap.XMin)/spanX - c.pan.seed.X
	dy := (pos.Y-snap.YMin)/spanY - c.pan.seed.Y

	newXMin := math.Round(snap.XMin - dx*spanX)
	newXMax := newXMin + spanX
	newYMin := math.Round(snap.YMin - dy*spanY)
	newYMax := newYMin + spanY

	changed := false
	if c.cfg.Bounds.Width <= 0 || (newXMin > 0 && newXMax < c.cfg.Bounds.Width) {
		if newXMin != c.current.XMin {
			c.current.XMin, c.current.XMax = newXMin, newXMax
			changed = true
		}
	}
	if c.cfg.Bounds.Height <= 0 || (newYMin > 0 && newYMax < c.cfg.Bounds.Height) {
		if newYMin != c.current.YMin {
			c.current.YMin, c.current.YMax = newYMin, newYMax
			changed = true
		}
	}

	if changed {
		c.host.ApplyExtent(c.current)
	}
	return nil
}

// OnPointerUp handles a pointer release. The ButtonUp hook is invoked
// first, for every button. A release of the configured reset button over
// the viewable area restores the original extent. Any active pan session
// ends regardless of which button was released, so a pan never gets stuck
// when the up-event arrives for a different button than the one that
// started it.
func (c *Controller) OnPointerUp(button MouseButton, pos Vec2) error {
	if !pos.finite() {
		return &InvalidEventError{Handler: "OnPointerUp", Reason: "pointer position is not finite"}
	}
	if c.cfg.ButtonUp != nil {
		c.cfg.ButtonUp(button, pos)
	}

	if button == c.cfg.ResetButton && c.cfg.ResetButton != ButtonNone && c.hasOrig {
		if _, ok := c.host.HitTest(pos); ok {
			c.restoreOriginal()
		}
	}

	if c.pan != nil {
		c.pan = nil
		c.setCursor(CursorArrow)
	}
	return nil
}

// Reset restores the original extent, for hosts that want a reset
// affordance outside the mouse-button protocol. No-op until a zoom or pan
// has captured an original; idempotent afterwards.
func (c *Controller) Reset() {
	if !c.hasOrig {
		return
	}
	c.restoreOriginal()
}

func (c *Controller) restoreOriginal() {
	c.current = c.original
	c.tracked = c.current
	c.hasTracked = true
	c.zoomSteps = 0
	c.host.ApplyExtent(c.current)
}

// BumpMagnify adjusts the live magnification factor by ChangeMagnify:
// dir > 0 multiplies, dir < 0 divides. The factor never drops below
// MinValue. Hosts typically bind this to +/- keys.
func (c *Controller) BumpMagnify(dir int) {
	switch {
	case dir > 0:
		c.cfg.Magnify *= c.cfg.ChangeMagnify
	case dir < 0:
		c.cfg.Magnify /= c.cfg.ChangeMagnify
	}
	c.cfg.Magnify = math.Max(c.cfg.Magnify, c.cfg.MinValue)
}

// BumpChangeMagnify adjusts ChangeMagnify itself by IncreaseChange, with
// the same MinValue floor.
func (c *Controller) BumpChangeMagnify(dir int) {
	switch {
	case dir > 0:
		c.cfg.ChangeMagnify *= c.cfg.IncreaseChange
	case dir < 0:
		c.cfg.ChangeMagnify /= c.cfg.IncreaseChange
	}
	c.cfg.ChangeMagnify = math.Max(c.cfg.ChangeMagnify, c.cfg.MinValue)
}

func (c *Controller) setCursor(cur Cursor) {
	if c.cursor != nil {
		c.cursor.SetCursor(cur)
	}
}
