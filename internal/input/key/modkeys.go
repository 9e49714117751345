package key

import "strings"

// ModKeys is a bitset of logical keyboard modifiers. Each bit is backed
// by a left/right physical key pair; holding either physical key sets
// the bit.
type ModKeys uint8

const (
	// ModNone indicates no modifiers.
	ModNone ModKeys = 0

	// ModControl corresponds to KeyControlLeft and KeyControlRight.
	ModControl ModKeys = 1 << iota

	// ModShift corresponds to KeyShiftLeft and KeyShiftRight.
	ModShift

	// ModAlt corresponds to KeyAltLeft and KeyAltRight.
	ModAlt

	// ModSuper corresponds to KeySuperLeft and KeySuperRight.
	ModSuper
)

// AllMods is the set of all four modifiers.
const AllMods = ModControl | ModShift | ModAlt | ModSuper

// modPairs lists the physical key pair for each modifier bit in display
// order (Control, Shift, Alt, Super).
var modPairs = []struct {
	mod   ModKeys
	name  string
	left  Key
	right Key
}{
	{ModControl, "Ctrl", KeyControlLeft, KeyControlRight},
	{ModShift, "Shift", KeyShiftLeft, KeyShiftRight},
	{ModAlt, "Alt", KeyAltLeft, KeyAltRight},
	{ModSuper, "Super", KeySuperLeft, KeySuperRight},
}

// Has reports whether m contains the specified modifier.
func (m ModKeys) Has(mod ModKeys) bool {
	return m&mod != 0
}

// With returns a new ModKeys with the specified modifier added.
func (m ModKeys) With(mod ModKeys) ModKeys {
	return m | mod
}

// Without returns a new ModKeys with the specified modifier removed.
func (m ModKeys) Without(mod ModKeys) ModKeys {
	return m &^ mod
}

// IsEmpty reports whether no modifiers are set.
func (m ModKeys) IsEmpty() bool {
	return m == ModNone
}

// Keys returns the physical left/right key pairs for the set bits, in
// display order.
func (m ModKeys) Keys() [][2]Key {
	var pairs [][2]Key
	for _, p := range modPairs {
		if m.Has(p.mod) {
			pairs = append(pairs, [2]Key{p.left, p.right})
		}
	}
	return pairs
}

// String renders the active modifiers in fixed order Control, Shift,
// Alt, Super joined by " + ". The empty set renders as "".
func (m ModKeys) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	for _, p := range modPairs {
		if m.Has(p.mod) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, " + ")
}

// PressedMods returns the modifiers currently active, checking both
// physical keys of each pair against the held predicate.
func PressedMods(held func(Key) bool) ModKeys {
	var mods ModKeys
	for _, p := range modPairs {
		if held(p.left) || held(p.right) {
			mods = mods.With(p.mod)
		}
	}
	return mods
}

// ModKeyOf maps a physical key to its logical modifier bit.
// Returns ModNone if the key is not a modifier.
func ModKeyOf(k Key) ModKeys {
	switch k {
	case KeyControlLeft, KeyControlRight:
		return ModControl
	case KeyShiftLeft, KeyShiftRight:
		return ModShift
	case KeyAltLeft, KeyAltRight:
		return ModAlt
	case KeySuperLeft, KeySuperRight:
		return ModSuper
	default:
		return ModNone
	}
}
