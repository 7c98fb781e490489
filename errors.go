package imgzoompan

import "fmt"

// ConfigError reports an out-of-range or malformed construction parameter.
// It is fatal to the attempted construction; the one exception is the
// documented normalization of magnification factors below MinValue, which
// is a silent clamp, not an error.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("imgzoompan: invalid config %s=%v: %s", e.Field, e.Value, e.Reason)
}

// InvalidEventError reports an event whose required fields are absent or
// not representable (NaN or infinite positions, degenerate extents).
// Malformed events are a host contract violation; the controller fails
// fast rather than guessing.
type InvalidEventError struct {
	Handler string
	Reason  string
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("imgzoompan: %s: invalid event: %s", e.Handler, e.Reason)
}
