// Package device models the per-frame raw device state consumed by the
// evaluation pass: keyboard and mouse buttons, mouse motion and wheel
// deltas, and connected gamepads.
package device

import "fmt"

// ID identifies a connected gamepad.
type ID string

// MouseButton represents a physical mouse button.
type MouseButton uint8

const (
	// MouseLeft is the primary button.
	MouseLeft MouseButton = iota

	// MouseRight is the secondary button.
	MouseRight

	// MouseMiddle is the wheel button.
	MouseMiddle

	// MouseBack is the first side button.
	MouseBack

	// MouseForward is the second side button.
	MouseForward
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseBack:
		return "Back"
	case MouseForward:
		return "Forward"
	default:
		return fmt.Sprintf("Button(%d)", b)
	}
}

// PadButton represents a gamepad button.
type PadButton uint8

const (
	// PadSouth is the bottom face button (A on Xbox, Cross on PS).
	PadSouth PadButton = iota

	// PadEast is the right face button (B on Xbox, Circle on PS).
	PadEast

	// PadWest is the left face button (X on Xbox, Square on PS).
	PadWest

	// PadNorth is the top face button (Y on Xbox, Triangle on PS).
	PadNorth

	// PadDPadUp through PadDPadRight are the directional pad buttons.
	PadDPadUp
	PadDPadDown
	PadDPadLeft
	PadDPadRight

	// PadLeftBumper and PadRightBumper are the shoulder buttons.
	PadLeftBumper
	PadRightBumper

	// PadSelect and PadStart are the menu buttons.
	PadSelect
	PadStart

	// PadLeftThumb and PadRightThumb are the stick click buttons.
	PadLeftThumb
	PadRightThumb
)

// String returns the button name.
func (b PadButton) String() string {
	switch b {
	case PadSouth:
		return "South"
	case PadEast:
		return "East"
	case PadWest:
		return "West"
	case PadNorth:
		return "North"
	case PadDPadUp:
		return "DPadUp"
	case PadDPadDown:
		return "DPadDown"
	case PadDPadLeft:
		return "DPadLeft"
	case PadDPadRight:
		return "DPadRight"
	case PadLeftBumper:
		return "LeftBumper"
	case PadRightBumper:
		return "RightBumper"
	case PadSelect:
		return "Select"
	case PadStart:
		return "Start"
	case PadLeftThumb:
		return "LeftThumb"
	case PadRightThumb:
		return "RightThumb"
	default:
		return fmt.Sprintf("PadButton(%d)", b)
	}
}

// PadAxis represents a gamepad analog axis.
type PadAxis uint8

const (
	// AxisLeftStickX and AxisLeftStickY are the left stick axes.
	AxisLeftStickX PadAxis = iota
	AxisLeftStickY

	// AxisRightStickX and AxisRightStickY are the right stick axes.
	AxisRightStickX
	AxisRightStickY

	// AxisLeftTrigger and AxisRightTrigger are the analog triggers.
	AxisLeftTrigger
	AxisRightTrigger
)

// String returns the axis name.
func (a PadAxis) String() string {
	switch a {
	case AxisLeftStickX:
		return "LeftStickX"
	case AxisLeftStickY:
		return "LeftStickY"
	case AxisRightStickX:
		return "RightStickX"
	case AxisRightStickY:
		return "RightStickY"
	case AxisLeftTrigger:
		return "LeftTrigger"
	case AxisRightTrigger:
		return "RightTrigger"
	default:
		return fmt.Sprintf("PadAxis(%d)", a)
	}
}

// PadSelector chooses which gamepads a binding reads from.
// The zero value matches any gamepad.
type PadSelector struct {
	id  ID
	one bool
}

// AnyPad returns a selector matching every connected gamepad. Axis
// values sum across pads; button values take the strongest press.
func AnyPad() PadSelector {
	return PadSelector{}
}

// OnePad returns a selector matching a single gamepad.
func OnePad(id ID) PadSelector {
	return PadSelector{id: id, one: true}
}

// Matches reports whether the selector includes the given gamepad.
func (s PadSelector) Matches(id ID) bool {
	return !s.one || s.id == id
}

// String returns the selector description.
func (s PadSelector) String() string {
	if !s.one {
		return "any"
	}
	return string(s.id)
}
