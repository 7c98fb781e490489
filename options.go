package imgzoompan

import "math"

// Config holds the controller configuration after option application and
// normalization. Immutable once the controller is constructed, except for
// the magnification factors adjusted through BumpMagnify and
// BumpChangeMagnify.
type Config struct {
	// Magnify is the base magnification applied per zoom step.
	Magnify float64
	// XMagnify and YMagnify are per-axis multipliers on Magnify,
	// allowing anisotropic zoom.
	XMagnify float64
	YMagnify float64
	// ChangeMagnify is the relative adjustment applied to Magnify by
	// BumpMagnify.
	ChangeMagnify float64
	// IncreaseChange is the relative adjustment applied to ChangeMagnify
	// by BumpChangeMagnify.
	IncreaseChange float64
	// MinValue is the floor for all magnification factors. Supplied
	// factors below it are raised to it at construction time.
	MinValue float64
	// MaxZoomSteps caps the accumulated net zoom-in steps, protecting
	// against runaway magnification when raster bounds are disabled.
	MaxZoomSteps int
	// Bounds are the raster pixel dimensions; zero disables clamping.
	Bounds RasterBounds
	// PanButton starts a pan session; ButtonNone disables panning.
	PanButton MouseButton
	// ResetButton restores the original extent; ButtonNone disables it.
	ResetButton MouseButton
	// ButtonDown and ButtonUp are invoked first on every pointer press
	// and release, before the controller's own handling.
	ButtonDown ButtonFunc
	ButtonUp   ButtonFunc
}

// Option configures a Controller.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Magnify:        1.1,
		XMagnify:       1.0,
		YMagnify:       1.0,
		ChangeMagnify:  1.1,
		IncreaseChange: 1.1,
		MinValue:       1.1,
		MaxZoomSteps:   30,
		PanButton:      ButtonMiddle,
		ResetButton:    ButtonRight,
	}
}

// WithMagnify sets the base per-step magnification factor.
func WithMagnify(m float64) Option { return func(c *Config) { c.Magnify = m } }

// WithXMagnify sets the X-axis multiplier on the magnification factor.
func WithXMagnify(m float64) Option { return func(c *Config) { c.XMagnify = m } }

// WithYMagnify sets the Y-axis multiplier on the magnification factor.
func WithYMagnify(m float64) Option { return func(c *Config) { c.YMagnify = m } }

// WithChangeMagnify sets the relative adjustment used by BumpMagnify.
func WithChangeMagnify(m float64) Option { return func(c *Config) { c.ChangeMagnify = m } }

// WithIncreaseChange sets the relative adjustment used by BumpChangeMagnify.
func WithIncreaseChange(m float64) Option { return func(c *Config) { c.IncreaseChange = m } }

// WithMinValue sets the floor below which magnification factors are raised.
func WithMinValue(m float64) Option { return func(c *Config) { c.MinValue = m } }

// WithMaxZoomSteps caps the accumulated net zoom-in step count.
func WithMaxZoomSteps(n int) Option { return func(c *Config) { c.MaxZoomSteps = n } }

// WithImageSize sets the raster pixel bounds. Zero for either dimension
// disables clamping entirely.
func WithImageSize(width, height float64) Option {
	return func(c *Config) { c.Bounds = RasterBounds{Width: width, Height: height} }
}

// WithPanButton sets the button that starts a pan drag. ButtonNone
// disables panning.
func WithPanButton(b MouseButton) Option { return func(c *Config) { c.PanButton = b } }

// WithResetButton sets the button that restores the original extent.
// ButtonNone disables the reset gesture.
func WithResetButton(b MouseButton) Option { return func(c *Config) { c.ResetButton = b } }

// WithButtonDownFunc sets a hook invoked on every pointer press before the
// controller's own handling.
func WithButtonDownFunc(fn ButtonFunc) Option { return func(c *Config) { c.ButtonDown = fn } }

// WithButtonUpFunc sets a hook invoked on every pointer release before the
// controller's own handling.
func WithButtonUpFunc(fn ButtonFunc) Option { return func(c *Config) { c.ButtonUp = fn } }

// applyOptions builds a Config from defaults plus options, then validates
// and normalizes it.
func applyOptions(opts []Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c, c.normalize()
}

// normalize validates the configuration in place and raises magnification
// factors below MinValue up to it.
func (c *Config) normalize() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"magnify", c.Magnify},
		{"xMagnify", c.XMagnify},
		{"yMagnify", c.YMagnify},
		{"changeMagnify", c.ChangeMagnify},
		{"increaseChange", c.IncreaseChange},
		{"minValue", c.MinValue},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigError{Field: f.name, Value: f.value, Reason: "must be a finite number"}
		}
	}
	if c.MinValue < 1.0 {
		return &ConfigError{Field: "minValue", Value: c.MinValue, Reason: "must be >= 1.0"}
	}
	if c.XMagnify <= 0 {
		return &ConfigError{Field: "xMagnify", Value: c.XMagnify, Reason: "must be > 0"}
	}
	if c.YMagnify <= 0 {
		return &ConfigError{Field: "yMagnify", Value: c.YMagnify, Reason: "must be > 0"}
	}
	if c.MaxZoomSteps < 0 {
		return &ConfigError{Field: "maxZoomSteps", Value: c.MaxZoomSteps, Reason: "must be >= 0"}
	}
	if c.Bounds.Width < 0 {
		return &ConfigError{Field: "imgWidth", Value: c.Bounds.Width, Reason: "must be >= 0"}
	}
	if c.Bounds.Height < 0 {
		return &ConfigError{Field: "imgHeight", Value: c.Bounds.Height, Reason: "must be >= 0"}
	}
	if !c.PanButton.valid() {
		return &ConfigError{Field: "panButton", Value: int(c.PanButton), Reason: "must be in 0..3"}
	}
	if !c.ResetButton.valid() {
		return &ConfigError{Field: "resetButton", Value: int(c.ResetButton), Reason: "must be in 0..3"}
	}

	// Factors below the floor are normalized up, not rejected.
	c.Magnify = math.Max(c.Magnify, c.MinValue)
	c.ChangeMagnify = math.Max(c.ChangeMagnify, c.MinValue)
	c.IncreaseChange = math.Max(c.IncreaseChange, c.MinValue)
	return nil
}
