package imgzoompan

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	host := &fakeHost{}
	ctrl := newTestController(t, host, Extent{XMin: 0, XMax: 100, YMin: 0, YMax: 100})

	cfg := ctrl.Config()
	if cfg.Magnify != 1.1 || cfg.XMagnify != 1.0 || cfg.YMagnify != 1.0 {
		t.Errorf("Unexpected magnification defaults: %+v", cfg)
	}
	if cfg.ChangeMagnify != 1.1 || cfg.IncreaseChange != 1.1 || cfg.MinValue != 1.1 {
		t.Errorf("Unexpected adjustment defaults: %+v", cfg)
	}
	if cfg.MaxZoomSteps != 30 {
		t.Errorf("Expected maxZoomSteps 30, got %d", cfg.MaxZoomSteps)
	}
	if cfg.PanButton != ButtonMiddle || cfg.ResetButton != ButtonRight {
		t.Errorf("Unexpected button defaults: pan=%v reset=%v", cfg.PanButton, cfg.ResetButton)
	}
	if cfg.Bounds.Known() {
		t.Errorf("Expected raster bounds unknown by default, got %+v", cfg.Bounds)
	}
}

func TestConfig_FactorsBelowMinValueAreRaised(t *testing.T) {
	host := &fakeHost{}
	ctrl := newTestController(t, host, Extent{XMin: 0, XMax: 100, YMin: 0, YMax: 100},
		WithMagnify(1.0), WithChangeMagnify(0.3), WithIncreaseChange(1.05), WithMinValue(1.2))

	cfg := ctrl.Config()
	if cfg.Magnify != 1.2 {
		t.Errorf("Expected magnify raised to 1.2, got %v", cfg.Magnify)
	}
	if cfg.ChangeMagnify != 1.2 {
		t.Errorf("Expected changeMagnify raised to 1.2, got %v", cfg.ChangeMagnify)
	}
	if cfg.IncreaseChange != 1.2 {
		t.Errorf("Expected increaseChange raised to 1.2, got %v", cfg.IncreaseChange)
	}
}

func TestConfig_ValidationErrors(t *testing.T) {
	baseline := Extent{XMin: 0, XMax: 100, YMin: 0, YMax: 100}
	cases := []struct {
		name string
		opts []Option
	}{
		{"nan magnify", []Option{WithMagnify(math.NaN())}},
		{"inf changeMagnify", []Option{WithChangeMagnify(math.Inf(1))}},
		{"minValue below 1", []Option{WithMinValue(0.5)}},
		{"zero xMagnify", []Option{WithXMagnify(0)}},
		{"negative yMagnify", []Option{WithYMagnify(-1)}},
		{"negative maxZoomSteps", []Option{WithMaxZoomSteps(-1)}},
		{"negative image size", []Option{WithImageSize(-10, 20)}},
		{"pan button out of range", []Option{WithPanButton(MouseButton(4))}},
		{"reset button out of range", []Option{WithResetButton(MouseButton(-1))}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(&fakeHost{}, baseline, tc.opts...)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected ConfigError, got %v", err)
			}
		})
	}
}

func TestNew_RejectsDegenerateBaseline(t *testing.T) {
	for _, baseline := range []Extent{
		{XMin: 100, XMax: 100, YMin: 0, YMax: 100},
		{XMin: 0, XMax: 100, YMin: 50, YMax: 40},
		{XMin: math.NaN(), XMax: 100, YMin: 0, YMax: 100},
	} {
		if _, err := New(&fakeHost{}, baseline); err == nil {
			t.Errorf("Expected error for baseline %+v", baseline)
		}
	}
}

func TestNew_CursorHostIsOptional(t *testing.T) {
	// A host without SetCursor must still work; cursor feedback is
	// silently dropped.
	host := cursorlessHost{}
	ctrl, err := New(host, Extent{XMin: 0, XMax: 100, YMin: 0, YMax: 100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ctrl.OnPointerDown(ButtonMiddle, Vec2{X: 50, Y: 50}); err != nil {
		t.Fatalf("OnPointerDown: %v", err)
	}
	if !ctrl.Panning() {
		t.Error("Expected pan to start on a cursorless host")
	}
}

type cursorlessHost struct{}

func (cursorlessHost) HitTest(pos Vec2) (Extent, bool) {
	return Extent{XMin: 0, XMax: 100, YMin: 0, YMax: 100}, true
}

func (cursorlessHost) ApplyExtent(Extent) {}
