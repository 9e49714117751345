package binding

import (
	"errors"
	"testing"

	"github.com/dshills/actionflow/internal/input/device"
	"github.com/dshills/actionflow/internal/input/key"
	"github.com/dshills/actionflow/internal/input/value"
)

func TestWithModKeys(t *testing.T) {
	s, err := Keyboard(key.KeyA).WithModKeys(key.ModControl)
	if err != nil {
		t.Fatalf("keyboard mod keys: %v", err)
	}
	if s.ModKeys() != key.ModControl {
		t.Errorf("ModKeys() = %v, want control", s.ModKeys())
	}

	if _, err := MouseButton(device.MouseLeft).WithModKeys(key.ModShift); err != nil {
		t.Errorf("mouse button mod keys should be allowed: %v", err)
	}
	if _, err := MouseMotion().WithModKeys(key.ModAlt); err != nil {
		t.Errorf("mouse motion mod keys should be allowed: %v", err)
	}
}

func TestWithModKeysRejectsPadSources(t *testing.T) {
	for _, s := range []Source{
		PadButton(device.PadSouth),
		PadAxis(device.AxisLeftStickX),
	} {
		if _, err := s.WithModKeys(key.ModControl); !errors.Is(err, ErrPadModKeys) {
			t.Errorf("%v.WithModKeys should return ErrPadModKeys, got %v", s, err)
		}
		if !s.ModKeys().IsEmpty() {
			t.Errorf("%v should carry no mod keys", s)
		}
	}
}

func TestSourceEquality(t *testing.T) {
	plain := Keyboard(key.KeyA)
	ctrl, _ := Keyboard(key.KeyA).WithModKeys(key.ModControl)

	if plain == ctrl {
		t.Error("Ctrl+A must be distinct from plain A")
	}
	if plain != Keyboard(key.KeyA) {
		t.Error("identical sources must compare equal")
	}
	if Keyboard(key.KeyA) == Keyboard(key.KeyB) {
		t.Error("different keys must not compare equal")
	}
}

func TestSourceString(t *testing.T) {
	ctrlA, _ := Keyboard(key.KeyA).WithModKeys(key.ModControl)
	all, _ := MouseMotion().WithModKeys(key.AllMods)

	tests := []struct {
		src  Source
		want string
	}{
		{Keyboard(key.KeyA), "A"},
		{ctrlA, "Ctrl + A"},
		{MouseButton(device.MouseLeft), "Mouse Left"},
		{MouseMotion(), "Mouse Motion"},
		{MouseWheel(), "Scroll Wheel"},
		{PadButton(device.PadNorth), "North"},
		{PadAxis(device.AxisLeftStickX), "LeftStickX"},
		{all, "Ctrl + Shift + Alt + Super + Mouse Motion"},
	}

	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCaptureKeyboard(t *testing.T) {
	snap := device.NewSnapshot()
	snap.PressKey(key.KeyA)

	if !Keyboard(key.KeyA).Capture(snap, device.AnyPad()).AsBool() {
		t.Error("pressed key should capture true")
	}
	if Keyboard(key.KeyB).Capture(snap, device.AnyPad()).AsBool() {
		t.Error("unpressed key should capture false")
	}
	if got := Keyboard(key.KeyA).Capture(snap, device.AnyPad()).Dim(); got != value.DimBool {
		t.Errorf("keyboard captures as Bool, got %v", got)
	}
}

func TestCaptureModifierMatchIsExact(t *testing.T) {
	ctrlA, _ := Keyboard(key.KeyA).WithModKeys(key.ModControl)

	// Plain A held: Ctrl+A must not capture.
	snap := device.NewSnapshot()
	snap.PressKey(key.KeyA)
	if ctrlA.Capture(snap, device.AnyPad()).AsBool() {
		t.Error("Ctrl+A must not fire on plain A")
	}

	// Ctrl+A held: plain A must not capture, Ctrl+A does.
	snap.PressKey(key.KeyControlLeft)
	if Keyboard(key.KeyA).Capture(snap, device.AnyPad()).AsBool() {
		t.Error("plain A must not fire while Ctrl is held")
	}
	if !ctrlA.Capture(snap, device.AnyPad()).AsBool() {
		t.Error("Ctrl+A should fire with Ctrl held")
	}

	// A superset of modifiers does not match either.
	snap.PressKey(key.KeyShiftLeft)
	if ctrlA.Capture(snap, device.AnyPad()).AsBool() {
		t.Error("Ctrl+Shift+A must not fire a Ctrl+A binding")
	}
}

func TestCaptureModifierKeyBinding(t *testing.T) {
	// Binding a bare modifier key must not be blocked by its own bit.
	snap := device.NewSnapshot()
	snap.PressKey(key.KeyShiftLeft)
	if !Keyboard(key.KeyShiftLeft).Capture(snap, device.AnyPad()).AsBool() {
		t.Error("a bound modifier key should capture while held")
	}
}

func TestCaptureMouse(t *testing.T) {
	snap := device.NewSnapshot()
	snap.Advance(0)
	snap.PressMouse(device.MouseRight)
	snap.AddMotion(2, -3)
	snap.AddWheel(0, 1)

	if !MouseButton(device.MouseRight).Capture(snap, device.AnyPad()).AsBool() {
		t.Error("pressed mouse button should capture true")
	}

	motion := MouseMotion().Capture(snap, device.AnyPad())
	if motion.Dim() != value.DimAxis2D {
		t.Errorf("mouse motion captures as Axis2D, got %v", motion.Dim())
	}
	if xy := motion.AsAxis2D(); xy.X != 2 || xy.Y != -3 {
		t.Errorf("motion = %v, want (2, -3)", xy)
	}

	wheel := MouseWheel().Capture(snap, device.AnyPad())
	if xy := wheel.AsAxis2D(); xy.X != 0 || xy.Y != 1 {
		t.Errorf("wheel = %v, want (0, 1)", xy)
	}

	// Motion gated on modifiers reads zero when they are absent.
	altMotion, _ := MouseMotion().WithModKeys(key.ModAlt)
	if altMotion.Capture(snap, device.AnyPad()).AsBool() {
		t.Error("modifier-gated motion should read zero without the modifier")
	}
}

func TestCapturePad(t *testing.T) {
	snap := device.NewSnapshot()
	snap.SetPadButton("js0", device.PadSouth, 1)
	snap.SetPadAxis("js0", device.AxisLeftStickX, -0.5)
	snap.SetPadAxis("js1", device.AxisLeftStickX, -0.25)

	btn := PadButton(device.PadSouth).Capture(snap, device.AnyPad())
	if btn.Dim() != value.DimAxis1D || btn.AsAxis1D() != 1 {
		t.Errorf("pad button = %v, want Axis1D(1)", btn)
	}

	axis := PadAxis(device.AxisLeftStickX).Capture(snap, device.AnyPad())
	if axis.AsAxis1D() != -0.75 {
		t.Errorf("any-pad axis = %v, want -0.75", axis.AsAxis1D())
	}

	single := PadAxis(device.AxisLeftStickX).Capture(snap, device.OnePad("js1"))
	if single.AsAxis1D() != -0.25 {
		t.Errorf("single-pad axis = %v, want -0.25", single.AsAxis1D())
	}
}
