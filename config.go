package imgzoompan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the YAML shape of a controller configuration, for hosts that
// keep viewer preferences in a file. Omitted numeric fields fall back to
// the defaults; fields where zero is meaningful (button assignments, the
// step cap, the raster size) are pointers so that an explicit 0 survives.
type Settings struct {
	Magnify        float64  `yaml:"magnify,omitempty"`
	XMagnify       float64  `yaml:"xMagnify,omitempty"`
	YMagnify       float64  `yaml:"yMagnify,omitempty"`
	ChangeMagnify  float64  `yaml:"changeMagnify,omitempty"`
	IncreaseChange float64  `yaml:"increaseChange,omitempty"`
	MinValue       float64  `yaml:"minValue,omitempty"`
	MaxZoomSteps   *int     `yaml:"maxZoomSteps,omitempty"`
	ImgWidth       *float64 `yaml:"imgWidth,omitempty"`
	ImgHeight      *float64 `yaml:"imgHeight,omitempty"`
	PanButton      *int     `yaml:"panButton,omitempty"`
	ResetButton    *int     `yaml:"resetButton,omitempty"`
}

// Options converts the settings into controller options. Validation stays
// in New: a settings file with an out-of-range value still fails
// construction with *ConfigError.
func (s Settings) Options() []Option {
	var opts []Option
	if s.Magnify != 0 {
		opts = append(opts, WithMagnify(s.Magnify))
	}
	if s.XMagnify != 0 {
		opts = append(opts, WithXMagnify(s.XMagnify))
	}
	if s.YMagnify != 0 {
		opts = append(opts, WithYMagnify(s.YMagnify))
	}
	if s.ChangeMagnify != 0 {
		opts = append(opts, WithChangeMagnify(s.ChangeMagnify))
	}
	if s.IncreaseChange != 0 {
		opts = append(opts, WithIncreaseChange(s.IncreaseChange))
	}
	if s.MinValue != 0 {
		opts = append(opts, WithMinValue(s.MinValue))
	}
	if s.MaxZoomSteps != nil {
		opts = append(opts, WithMaxZoomSteps(*s.MaxZoomSteps))
	}
	if s.ImgWidth != nil || s.ImgHeight != nil {
		var w, h float64
		if s.ImgWidth != nil {
			w = *s.ImgWidth
		}
		if s.ImgHeight != nil {
			h = *s.ImgHeight
		}
		opts = append(opts, WithImageSize(w, h))
	}
	if s.PanButton != nil {
		opts = append(opts, WithPanButton(MouseButton(*s.PanButton)))
	}
	if s.ResetButton != nil {
		opts = append(opts, WithResetButton(MouseButton(*s.ResetButton)))
	}
	return opts
}

// LoadOptions reads a YAML settings file and returns the equivalent
// controller options.
func LoadOptions(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s.Options(), nil
}
