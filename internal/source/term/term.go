// Package term feeds terminal input into a device snapshot using
// tcell events.
//
// Terminals deliver key presses but never key releases, so each key is
// held for a configurable decay and then auto-released; modifier keys
// decay the same way. Mouse buttons have real press/release edges and
// are tracked from the tcell button mask.
package term

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionflow/internal/input/device"
	"github.com/dshills/actionflow/internal/input/key"
)

// Adapter translates tcell events into snapshot state.
type Adapter struct {
	snap  *device.Snapshot
	decay time.Duration

	held    map[key.Key]time.Duration
	buttons tcell.ButtonMask
	lastX   int
	lastY   int
	hasPos  bool
}

// New creates an adapter writing into the given snapshot. Keys
// auto-release after decay.
func New(snap *device.Snapshot, decay time.Duration) *Adapter {
	return &Adapter{
		snap:  snap,
		decay: decay,
		held:  make(map[key.Key]time.Duration),
	}
}

// HandleEvent applies one tcell event to the snapshot. It reports
// whether the event was recognized.
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
		return true
	case *tcell.EventMouse:
		a.handleMouse(ev)
		return true
	default:
		return false
	}
}

// SetDecay changes the auto-release delay for subsequent presses.
func (a *Adapter) SetDecay(decay time.Duration) {
	a.decay = decay
}

// Tick advances the decay clock and auto-releases expired keys. Call
// once per frame after Snapshot.Advance.
func (a *Adapter) Tick(delta time.Duration) {
	for k, left := range a.held {
		left -= delta
		if left <= 0 {
			delete(a.held, k)
			a.snap.ReleaseKey(k)
		} else {
			a.held[k] = left
		}
	}
}

// press holds a key and restarts its decay timer.
func (a *Adapter) press(k key.Key) {
	if k == key.KeyNone {
		return
	}
	a.snap.PressKey(k)
	a.held[k] = a.decay
}

func (a *Adapter) handleKey(ev *tcell.EventKey) {
	mods := ev.Modifiers()
	a.syncModKey(mods&tcell.ModCtrl != 0, key.KeyControlLeft)
	a.syncModKey(mods&tcell.ModShift != 0, key.KeyShiftLeft)
	a.syncModKey(mods&tcell.ModAlt != 0, key.KeyAltLeft)
	a.syncModKey(mods&tcell.ModMeta != 0, key.KeySuperLeft)

	a.press(mapKey(ev))
}

// syncModKey keeps a physical modifier key's decay alive while tcell
// reports the modifier as held.
func (a *Adapter) syncModKey(active bool, k key.Key) {
	if active {
		a.press(k)
	}
}

func (a *Adapter) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()

	for _, mb := range []struct {
		mask tcell.ButtonMask
		btn  device.MouseButton
	}{
		{tcell.Button1, device.MouseLeft},
		{tcell.Button2, device.MouseRight},
		{tcell.Button3, device.MouseMiddle},
	} {
		was := a.buttons&mb.mask != 0
		now := buttons&mb.mask != 0
		switch {
		case now && !was:
			a.snap.PressMouse(mb.btn)
		case !now && was:
			a.snap.ReleaseMouse(mb.btn)
		}
	}

	if buttons&tcell.WheelUp != 0 {
		a.snap.AddWheel(0, 1)
	}
	if buttons&tcell.WheelDown != 0 {
		a.snap.AddWheel(0, -1)
	}
	if buttons&tcell.WheelLeft != 0 {
		a.snap.AddWheel(-1, 0)
	}
	if buttons&tcell.WheelRight != 0 {
		a.snap.AddWheel(1, 0)
	}

	x, y := ev.Position()
	if a.hasPos {
		a.snap.AddMotion(float64(x-a.lastX), float64(y-a.lastY))
	}
	a.lastX, a.lastY = x, y
	a.hasPos = true

	a.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
}

// mapKey converts a tcell key event to a physical key.
func mapKey(ev *tcell.EventKey) key.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return mapRune(ev.Rune())
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyF1:
		return key.KeyF1
	case tcell.KeyF2:
		return key.KeyF2
	case tcell.KeyF3:
		return key.KeyF3
	case tcell.KeyF4:
		return key.KeyF4
	case tcell.KeyF5:
		return key.KeyF5
	case tcell.KeyF6:
		return key.KeyF6
	case tcell.KeyF7:
		return key.KeyF7
	case tcell.KeyF8:
		return key.KeyF8
	case tcell.KeyF9:
		return key.KeyF9
	case tcell.KeyF10:
		return key.KeyF10
	case tcell.KeyF11:
		return key.KeyF11
	case tcell.KeyF12:
		return key.KeyF12
	default:
		return mapCtrlKey(ev)
	}
}

// mapCtrlKey recovers the letter from a ctrl-combined event. tcell
// folds Ctrl+letter into a control key code instead of delivering
// KeyRune, so the plain switch never sees these presses.
func mapCtrlKey(ev *tcell.EventKey) key.Key {
	if ev.Modifiers()&tcell.ModCtrl == 0 {
		return key.KeyNone
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.KeyA + key.Key(k-tcell.KeyCtrlA)
	}
	return mapRune(ev.Rune())
}

func mapRune(r rune) key.Key {
	r = unicode.ToLower(r)
	switch {
	case r == ' ':
		return key.KeySpace
	case r >= 'a' && r <= 'z':
		return key.KeyA + key.Key(r-'a')
	case r >= '0' && r <= '9':
		return key.Key0 + key.Key(r-'0')
	default:
		return key.KeyNone
	}
}
