package imgzoompan

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeSettings(t, `
magnify: 2.0
xMagnify: 1.5
maxZoomSteps: 10
imgWidth: 640
imgHeight: 480
panButton: 1
resetButton: 0
`)

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}

	ctrl := newTestController(t, &fakeHost{}, Extent{XMin: 0, XMax: 640, YMin: 0, YMax: 480}, opts...)
	cfg := ctrl.Config()

	if cfg.Magnify != 2.0 || cfg.XMagnify != 1.5 {
		t.Errorf("Unexpected magnification from file: %+v", cfg)
	}
	if cfg.MaxZoomSteps != 10 {
		t.Errorf("Expected maxZoomSteps 10, got %d", cfg.MaxZoomSteps)
	}
	if cfg.Bounds != (RasterBounds{Width: 640, Height: 480}) {
		t.Errorf("Unexpected bounds: %+v", cfg.Bounds)
	}
	if cfg.PanButton != ButtonLeft {
		t.Errorf("Expected pan button left, got %v", cfg.PanButton)
	}
	// An explicit 0 must disable the reset gesture rather than fall back
	// to the default.
	if cfg.ResetButton != ButtonNone {
		t.Errorf("Expected reset button disabled, got %v", cfg.ResetButton)
	}
}

func TestLoadOptions_OmittedFieldsKeepDefaults(t *testing.T) {
	path := writeSettings(t, "magnify: 3.0\n")

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}

	ctrl := newTestController(t, &fakeHost{}, Extent{XMin: 0, XMax: 100, YMin: 0, YMax: 100}, opts...)
	cfg := ctrl.Config()

	if cfg.Magnify != 3.0 {
		t.Errorf("Expected magnify 3.0, got %v", cfg.Magnify)
	}
	if cfg.MaxZoomSteps != 30 || cfg.PanButton != ButtonMiddle || cfg.ResetButton != ButtonRight {
		t.Errorf("Expected defaults for omitted fields, got %+v", cfg)
	}
}

func TestLoadOptions_InvalidValuesFailConstruction(t *testing.T) {
	path := writeSettings(t, "panButton: 7\n")

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if _, err := New(&fakeHost{}, Extent{XMin: 0, XMax: 100, YMin: 0, YMax: 100}, opts...); err == nil {
		t.Error("Expected ConfigError for out-of-range button from settings file")
	}
}

func TestLoadOptions_BadFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeSettings(t, "magnify: [not a number\n")
	if _, err := LoadOptions(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
