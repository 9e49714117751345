// Package binding associates an action identity with raw input
// sources, a modifier chain, and a condition set, and evaluates the
// whole pipeline for one frame.
package binding

import (
	"errors"
	"fmt"

	"github.com/dshills/actionflow/internal/input/device"
	"github.com/dshills/actionflow/internal/input/key"
	"github.com/dshills/actionflow/internal/input/value"
)

// ErrPadModKeys is returned when keyboard modifiers are attached to a
// gamepad source. Modifier keys are a keyboard/mouse-only concept.
var ErrPadModKeys = errors.New("keyboard modifiers cannot be applied to gamepad sources")

// SourceKind tags the physical origin of a Source.
type SourceKind uint8

const (
	// KindKeyboard is a keyboard key, captured as Bool.
	KindKeyboard SourceKind = iota

	// KindMouseButton is a mouse button, captured as Bool.
	KindMouseButton

	// KindMouseMotion is mouse movement, captured as Axis2D.
	KindMouseMotion

	// KindMouseWheel is scroll wheel movement, captured as Axis2D.
	KindMouseWheel

	// KindPadButton is a gamepad button, captured as Axis1D.
	KindPadButton

	// KindPadAxis is a gamepad stick or trigger axis, captured as Axis1D.
	KindPadAxis
)

// Source describes one physical input source plus the keyboard
// modifiers that must be held with it. It is an immutable value; two
// sources are equal only when kind, payload, and modifier set all match
// exactly.
type Source struct {
	kind      SourceKind
	key       key.Key
	mouse     device.MouseButton
	padButton device.PadButton
	padAxis   device.PadAxis
	mods      key.ModKeys
}

// Keyboard returns a keyboard key source without modifiers.
func Keyboard(k key.Key) Source {
	return Source{kind: KindKeyboard, key: k}
}

// MouseButton returns a mouse button source without modifiers.
func MouseButton(b device.MouseButton) Source {
	return Source{kind: KindMouseButton, mouse: b}
}

// MouseMotion returns a mouse movement source without modifiers.
func MouseMotion() Source {
	return Source{kind: KindMouseMotion}
}

// MouseWheel returns a scroll wheel source without modifiers.
func MouseWheel() Source {
	return Source{kind: KindMouseWheel}
}

// PadButton returns a gamepad button source.
func PadButton(b device.PadButton) Source {
	return Source{kind: KindPadButton, padButton: b}
}

// PadAxis returns a gamepad axis source.
func PadAxis(a device.PadAxis) Source {
	return Source{kind: KindPadAxis, padAxis: a}
}

// Kind returns the source kind tag.
func (s Source) Kind() SourceKind {
	return s.kind
}

// ModKeys returns the attached keyboard modifiers, always empty for
// gamepad kinds.
func (s Source) ModKeys() key.ModKeys {
	return s.mods
}

// IsPad reports whether the source is a gamepad kind.
func (s Source) IsPad() bool {
	return s.kind == KindPadButton || s.kind == KindPadAxis
}

// WithModKeys returns a copy with the modifier set replaced. Attaching
// modifiers to a gamepad source is a configuration error and is
// rejected rather than silently dropped.
func (s Source) WithModKeys(mods key.ModKeys) (Source, error) {
	if s.IsPad() {
		return s, fmt.Errorf("%s: %w", s, ErrPadModKeys)
	}
	s.mods = mods
	return s, nil
}

// String composes "{mods} + {source}" when modifiers are present, else
// just the source.
func (s Source) String() string {
	var name string
	switch s.kind {
	case KindKeyboard:
		name = s.key.String()
	case KindMouseButton:
		name = "Mouse " + s.mouse.String()
	case KindMouseMotion:
		name = "Mouse Motion"
	case KindMouseWheel:
		name = "Scroll Wheel"
	case KindPadButton:
		name = s.padButton.String()
	default:
		name = s.padAxis.String()
	}
	if s.mods.IsEmpty() {
		return name
	}
	return s.mods.String() + " + " + name
}

// Capture reads the source's raw value from the device snapshot. For
// keyboard and mouse kinds the currently held modifier set must equal
// the source's set exactly: Ctrl+A neither fires on plain A nor the
// other way around.
func (s Source) Capture(snap *device.Snapshot, pad device.PadSelector) value.Value {
	switch s.kind {
	case KindKeyboard:
		return value.Bool(snap.KeyPressed(s.key) && s.modsMatch(snap))
	case KindMouseButton:
		return value.Bool(snap.MousePressed(s.mouse) && s.modsMatch(snap))
	case KindMouseMotion:
		if !s.modsMatch(snap) {
			return value.Zero(value.DimAxis2D)
		}
		m := snap.Motion()
		return value.Axis2D(m.X, m.Y)
	case KindMouseWheel:
		if !s.modsMatch(snap) {
			return value.Zero(value.DimAxis2D)
		}
		w := snap.Wheel()
		return value.Axis2D(w.X, w.Y)
	case KindPadButton:
		return value.Axis1D(snap.PadButtonValue(pad, s.padButton))
	default:
		return value.Axis1D(snap.PadAxisValue(pad, s.padAxis))
	}
}

// modsMatch compares the held modifier set with the required one,
// ignoring the bound key itself when it is a modifier key.
func (s Source) modsMatch(snap *device.Snapshot) bool {
	held := snap.ModKeys()
	if s.kind == KindKeyboard {
		held = held.Without(key.ModKeyOf(s.key))
	}
	return held == s.mods
}
