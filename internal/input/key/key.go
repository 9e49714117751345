// Package key defines physical keyboard keys and the logical modifier
// key set used by input bindings.
package key

import (
	"fmt"
	"strings"
)

// Key represents a physical keyboard key. Left and right modifier keys
// are distinct physical keys; ModKeyOf folds them into logical bits.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit keys
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Physical modifier keys; each logical modifier has a left/right pair.
	KeyControlLeft
	KeyControlRight
	KeyShiftLeft
	KeyShiftRight
	KeyAltLeft
	KeyAltRight
	KeySuperLeft
	KeySuperRight
)

// keyNames maps keys to display names.
var keyNames = map[Key]string{
	KeyNone:         "None",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeySpace:        "Space",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",
	KeySuperLeft:    "SuperLeft",
	KeySuperRight:   "SuperRight",
}

// keyByName maps lowercase names to keys, built from keyNames plus
// letter/digit ranges.
var keyByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+36)
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	for k := KeyA; k <= KeyZ; k++ {
		m[strings.ToLower(k.String())] = k
	}
	for k := Key0; k <= Key9; k++ {
		m[k.String()] = k
	}
	return m
}()

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyA && k <= KeyZ {
		return string(rune('A' + (k - KeyA)))
	}
	if k >= Key0 && k <= Key9 {
		return string(rune('0' + (k - Key0)))
	}
	return fmt.Sprintf("Key(%d)", k)
}

// FromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	if k, ok := keyByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyNone
}

// IsModifier reports whether k is a physical modifier key.
func (k Key) IsModifier() bool {
	return k >= KeyControlLeft && k <= KeySuperRight
}

// IsLetter reports whether k is a letter key.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit reports whether k is a digit key.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsFunctionKey reports whether k is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey reports whether k is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}
