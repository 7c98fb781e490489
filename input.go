package imgzoompan

// MouseButton identifies a pointer button in events and configuration.
// ButtonNone (0) is only meaningful in configuration, where it disables
// the corresponding action.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	buttonCount
)

// valid reports whether b can be used as a pan or reset button assignment.
func (b MouseButton) valid() bool {
	return b >= ButtonNone && b < buttonCount
}

// String returns a human-readable name for the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "?"
	}
}

// ButtonFunc is a host hook invoked on pointer press or release, before the
// controller's own handling. Hosts that had their own handlers on the
// window before attaching the controller compose them here.
type ButtonFunc func(button MouseButton, pos Vec2)
