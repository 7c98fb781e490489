package tcellhost

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/danyalejandro/imgzoompan"
)

// stubHost mirrors the applied extent back as the hit-test target, like a
// viewer whose raster fills the content area.
type stubHost struct {
	view imgzoompan.Extent
}

func (h *stubHost) HitTest(pos imgzoompan.Vec2) (imgzoompan.Extent, bool) {
	return h.view, true
}

func (h *stubHost) ApplyExtent(ext imgzoompan.Extent) {
	h.view = ext
}

// ContentRect maps cells 1:1 onto raster units for easy arithmetic.
func (s *stubHost) ContentRect() (x, y, w, h float64) {
	return 0, 0, 400, 300
}

func newFixture(t *testing.T) (*Adapter, *imgzoompan.Controller, *stubHost) {
	t.Helper()
	host := &stubHost{view: imgzoompan.Extent{XMin: 0, XMax: 400, YMin: 0, YMax: 300}}
	ctrl, err := imgzoompan.New(host, host.view,
		imgzoompan.WithImageSize(400, 300),
		imgzoompan.WithMagnify(2.0),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return New(ctrl, host), ctrl, host
}

func TestAdapter_WheelZoomsIn(t *testing.T) {
	a, ctrl, _ := newFixture(t)

	handled, err := a.HandleEvent(tcell.NewEventMouse(200, 150, tcell.WheelUp, 0))
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if !handled {
		t.Fatal("Expected mouse event to be handled")
	}

	want := imgzoompan.Extent{XMin: 100, XMax: 300, YMin: 75, YMax: 225}
	if ctrl.Current() != want {
		t.Errorf("Expected extent %+v after wheel up, got %+v", want, ctrl.Current())
	}
}

func TestAdapter_MiddleDragPans(t *testing.T) {
	a, ctrl, host := newFixture(t)

	// Zoom in first so there is room to pan.
	if _, err := a.HandleEvent(tcell.NewEventMouse(200, 150, tcell.WheelUp, 0)); err != nil {
		t.Fatalf("wheel: %v", err)
	}

	// tcell's Button3 is conventionally the middle button.
	if _, err := a.HandleEvent(tcell.NewEventMouse(200, 150, tcell.Button3, 0)); err != nil {
		t.Fatalf("press: %v", err)
	}
	if !ctrl.Panning() {
		t.Fatal("Expected pan session after middle press")
	}

	if _, err := a.HandleEvent(tcell.NewEventMouse(220, 150, tcell.Button3, 0)); err != nil {
		t.Fatalf("drag: %v", err)
	}
	want := imgzoompan.Extent{XMin: 90, XMax: 290, YMin: 75, YMax: 225}
	if host.view != want {
		t.Errorf("Expected extent %+v after drag, got %+v", want, host.view)
	}

	if _, err := a.HandleEvent(tcell.NewEventMouse(220, 150, tcell.ButtonNone, 0)); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ctrl.Panning() {
		t.Error("Expected pan session to end on release")
	}
}

func TestAdapter_IgnoresNonMouseEvents(t *testing.T) {
	a, _, _ := newFixture(t)

	handled, err := a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if handled {
		t.Error("Expected key event to pass through unhandled")
	}
}
