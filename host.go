package imgzoompan

// Host is the set of capabilities the controller calls back into. The
// controller never reaches into the window system itself; the host owns
// rendering and hit-testing against whatever widget tree it has.
type Host interface {
	// HitTest resolves the viewable area under a pointer position and
	// returns its current extent. ok is false when there is no viewable
	// area under the pointer (e.g. a drag started outside the content).
	HitTest(pos Vec2) (ext Extent, ok bool)

	// ApplyExtent is the redraw sink: the host re-renders the raster so
	// that exactly ext is visible.
	ApplyExtent(ext Extent)
}

// Cursor is the pointer-affordance feedback the controller reports while
// interacting: a hand during a pan, a forbidden sign when a pan press
// finds no viewable area, and an arrow once the interaction ends.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorHand
	CursorForbidden
)

// CursorHost is optionally implemented by hosts that can change the
// pointer cursor. The controller detects it by type assertion; hosts
// without cursor support simply don't implement it.
type CursorHost interface {
	SetCursor(Cursor)
}
