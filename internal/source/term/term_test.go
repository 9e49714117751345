package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionflow/internal/input/device"
	"github.com/dshills/actionflow/internal/input/key"
)

const decay = 100 * time.Millisecond

func TestKeyPressAndDecay(t *testing.T) {
	snap := device.NewSnapshot()
	a := New(snap, decay)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if !snap.KeyPressed(key.KeyW) {
		t.Fatal("w should be pressed after the event")
	}

	a.Tick(40 * time.Millisecond)
	if !snap.KeyPressed(key.KeyW) {
		t.Error("w should survive a partial decay")
	}

	a.Tick(80 * time.Millisecond)
	if snap.KeyPressed(key.KeyW) {
		t.Error("w should auto-release after the decay expires")
	}
	if !snap.KeyJustReleased(key.KeyW) {
		t.Error("auto-release should produce a release edge")
	}
}

func TestKeyRepeatRestartsDecay(t *testing.T) {
	snap := device.NewSnapshot()
	a := New(snap, decay)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	a.Tick(80 * time.Millisecond)

	// A repeat within the decay window keeps the key held.
	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	a.Tick(80 * time.Millisecond)
	if !snap.KeyPressed(key.KeyW) {
		t.Error("repeated press should restart the decay timer")
	}
}

func TestModifierSync(t *testing.T) {
	snap := device.NewSnapshot()
	a := New(snap, decay)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModCtrl))
	if !snap.KeyPressed(key.KeyControlLeft) {
		t.Error("ctrl modifier should press the physical control key")
	}
	if !snap.KeyPressed(key.KeyA) {
		t.Error("a should be pressed")
	}
	if got := snap.ModKeys(); got != key.ModControl {
		t.Errorf("ModKeys() = %v, want control", got)
	}

	a.Tick(200 * time.Millisecond)
	if snap.KeyPressed(key.KeyControlLeft) {
		t.Error("modifier should decay with everything else")
	}
}

func TestCtrlLetterMapping(t *testing.T) {
	// Ctrl+letter never arrives as KeyRune: tcell folds it into a
	// control key code. Both shapes must land on the letter.
	tests := []struct {
		ev   *tcell.EventKey
		want key.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModCtrl), key.KeyA},
		{tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), key.KeyA},
		{tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), key.KeyZ},
	}
	for _, tt := range tests {
		if got := mapKey(tt.ev); got != tt.want {
			t.Errorf("mapKey(key=%v rune=%q) = %v, want %v", tt.ev.Key(), tt.ev.Rune(), got, tt.want)
		}
	}
}

func TestCtrlLetterPress(t *testing.T) {
	snap := device.NewSnapshot()
	a := New(snap, decay)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlE, 0, tcell.ModCtrl))
	if !snap.KeyPressed(key.KeyE) {
		t.Error("ctrl+e should press e")
	}
	if !snap.KeyPressed(key.KeyControlLeft) {
		t.Error("ctrl+e should press the physical control key")
	}
	if got := snap.ModKeys(); got != key.ModControl {
		t.Errorf("ModKeys() = %v, want control", got)
	}
}

func TestRuneMapping(t *testing.T) {
	tests := []struct {
		r    rune
		want key.Key
	}{
		{'a', key.KeyA},
		{'Z', key.KeyZ},
		{'0', key.Key0},
		{'9', key.Key9},
		{' ', key.KeySpace},
		{'é', key.KeyNone},
	}
	for _, tt := range tests {
		if got := mapRune(tt.r); got != tt.want {
			t.Errorf("mapRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestSpecialKeyMapping(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want key.Key
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.KeyEscape},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.KeyEnter},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.KeyUp},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.KeyF5},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.KeyBackspace},
		{tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), key.KeyPageUp},
	}
	for _, tt := range tests {
		if got := mapKey(tt.ev); got != tt.want {
			t.Errorf("mapKey(%v) = %v, want %v", tt.ev.Key(), got, tt.want)
		}
	}
}

func TestMouseButtons(t *testing.T) {
	snap := device.NewSnapshot()
	a := New(snap, decay)

	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if !snap.MousePressed(device.MouseLeft) {
		t.Error("button1 should press the left button")
	}

	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if snap.MousePressed(device.MouseLeft) {
		t.Error("mask clearing should release the left button")
	}
}

func TestMouseMotionDelta(t *testing.T) {
	snap := device.NewSnapshot()
	a := New(snap, decay)

	// The first event seeds the position without producing a delta.
	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if m := snap.Motion(); m.X != 0 || m.Y != 0 {
		t.Errorf("first event motion = %v, want zero", m)
	}

	a.HandleEvent(tcell.NewEventMouse(13, 4, tcell.ButtonNone, tcell.ModNone))
	if m := snap.Motion(); m.X != 3 || m.Y != -1 {
		t.Errorf("motion = %v, want (3, -1)", m)
	}
}

func TestMouseWheel(t *testing.T) {
	snap := device.NewSnapshot()
	a := New(snap, decay)

	a.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if w := snap.Wheel(); w.Y != 2 {
		t.Errorf("wheel = %v, want y=2", w)
	}

	// Wheel bits are momentary and must not latch as held buttons.
	a.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if w := snap.Wheel(); w.Y != 1 {
		t.Errorf("wheel after down = %v, want y=1", w)
	}
}

func TestUnrecognizedEvent(t *testing.T) {
	a := New(device.NewSnapshot(), decay)
	if a.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize events should be unrecognized")
	}
}

func TestSetDecay(t *testing.T) {
	snap := device.NewSnapshot()
	a := New(snap, decay)
	a.SetDecay(10 * time.Millisecond)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	a.Tick(20 * time.Millisecond)
	if snap.KeyPressed(key.KeyW) {
		t.Error("shortened decay should release sooner")
	}
}
