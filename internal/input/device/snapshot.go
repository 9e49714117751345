package device

import (
	"sort"
	"time"

	"github.com/dshills/actionflow/internal/input/key"
	"github.com/dshills/actionflow/internal/input/value"
)

// buttonState tracks one digital button across a frame boundary.
type buttonState struct {
	pressed      bool
	justPressed  bool
	justReleased bool
}

// padState holds the analog state of one connected gamepad.
type padState struct {
	buttons map[PadButton]float64
	axes    map[PadAxis]float64
}

func newPadState() *padState {
	return &padState{
		buttons: make(map[PadButton]float64),
		axes:    make(map[PadAxis]float64),
	}
}

// Snapshot is the raw device state for one frame. Source adapters write
// into it between frames; the evaluation pass reads it. It is not safe
// for concurrent use: frame evaluation is single-threaded.
type Snapshot struct {
	keys   map[key.Key]*buttonState
	mouse  map[MouseButton]*buttonState
	motion value.Vec2
	wheel  value.Vec2
	pads   map[ID]*padState
	delta  time.Duration
}

// NewSnapshot creates an empty device snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		keys:  make(map[key.Key]*buttonState),
		mouse: make(map[MouseButton]*buttonState),
		pads:  make(map[ID]*padState),
	}
}

// Advance starts a new frame: records the elapsed time, rolls off the
// just-pressed/just-released edges, and zeroes the motion and wheel
// accumulators. Held buttons stay held.
func (s *Snapshot) Advance(delta time.Duration) {
	s.delta = delta
	for _, b := range s.keys {
		b.justPressed = false
		b.justReleased = false
	}
	for _, b := range s.mouse {
		b.justPressed = false
		b.justReleased = false
	}
	s.motion = value.Vec2{}
	s.wheel = value.Vec2{}
}

// Delta returns the elapsed time recorded for the current frame.
func (s *Snapshot) Delta() time.Duration {
	return s.delta
}

func press(m map[key.Key]*buttonState, k key.Key) {
	b, ok := m[k]
	if !ok {
		b = &buttonState{}
		m[k] = b
	}
	if !b.pressed {
		b.justPressed = true
	}
	b.pressed = true
}

// PressKey marks a keyboard key as held.
func (s *Snapshot) PressKey(k key.Key) {
	press(s.keys, k)
}

// ReleaseKey marks a keyboard key as released.
func (s *Snapshot) ReleaseKey(k key.Key) {
	b, ok := s.keys[k]
	if !ok || !b.pressed {
		return
	}
	b.pressed = false
	b.justReleased = true
}

// KeyPressed reports whether a keyboard key is held.
func (s *Snapshot) KeyPressed(k key.Key) bool {
	b, ok := s.keys[k]
	return ok && b.pressed
}

// KeyJustPressed reports whether a key was pressed this frame.
func (s *Snapshot) KeyJustPressed(k key.Key) bool {
	b, ok := s.keys[k]
	return ok && b.justPressed
}

// KeyJustReleased reports whether a key was released this frame.
func (s *Snapshot) KeyJustReleased(k key.Key) bool {
	b, ok := s.keys[k]
	return ok && b.justReleased
}

// ModKeys returns the logical modifiers currently held.
func (s *Snapshot) ModKeys() key.ModKeys {
	return key.PressedMods(s.KeyPressed)
}

// PressMouse marks a mouse button as held.
func (s *Snapshot) PressMouse(b MouseButton) {
	st, ok := s.mouse[b]
	if !ok {
		st = &buttonState{}
		s.mouse[b] = st
	}
	if !st.pressed {
		st.justPressed = true
	}
	st.pressed = true
}

// ReleaseMouse marks a mouse button as released.
func (s *Snapshot) ReleaseMouse(b MouseButton) {
	st, ok := s.mouse[b]
	if !ok || !st.pressed {
		return
	}
	st.pressed = false
	st.justReleased = true
}

// MousePressed reports whether a mouse button is held.
func (s *Snapshot) MousePressed(b MouseButton) bool {
	st, ok := s.mouse[b]
	return ok && st.pressed
}

// AddMotion accumulates mouse movement for the current frame.
func (s *Snapshot) AddMotion(dx, dy float64) {
	s.motion.X += dx
	s.motion.Y += dy
}

// Motion returns the accumulated mouse movement for the current frame.
func (s *Snapshot) Motion() value.Vec2 {
	return s.motion
}

// AddWheel accumulates scroll wheel movement for the current frame.
func (s *Snapshot) AddWheel(dx, dy float64) {
	s.wheel.X += dx
	s.wheel.Y += dy
}

// Wheel returns the accumulated wheel movement for the current frame.
func (s *Snapshot) Wheel() value.Vec2 {
	return s.wheel
}

// Connect registers a gamepad. Connecting an already-connected pad is a
// no-op.
func (s *Snapshot) Connect(id ID) {
	if _, ok := s.pads[id]; !ok {
		s.pads[id] = newPadState()
	}
}

// Disconnect removes a gamepad and all of its state.
func (s *Snapshot) Disconnect(id ID) {
	delete(s.pads, id)
}

// Pads returns the connected gamepad IDs in sorted order.
func (s *Snapshot) Pads() []ID {
	ids := make([]ID, 0, len(s.pads))
	for id := range s.pads {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SetPadButton records a gamepad button value in 0..1. The pad is
// connected implicitly if needed.
func (s *Snapshot) SetPadButton(id ID, b PadButton, v float64) {
	s.Connect(id)
	s.pads[id].buttons[b] = v
}

// SetPadAxis records a gamepad axis value in its native -1..1 range.
// The pad is connected implicitly if needed.
func (s *Snapshot) SetPadAxis(id ID, a PadAxis, v float64) {
	s.Connect(id)
	s.pads[id].axes[a] = v
}

// PadButtonValue returns the button value for the selected pads. For an
// any-pad selector the strongest press across pads wins, matching a
// logical OR for digital buttons.
func (s *Snapshot) PadButtonValue(sel PadSelector, b PadButton) float64 {
	var max float64
	for id, pad := range s.pads {
		if !sel.Matches(id) {
			continue
		}
		if v := pad.buttons[b]; v > max {
			max = v
		}
	}
	return max
}

// PadAxisValue returns the axis value for the selected pads. For an
// any-pad selector the values sum across pads.
func (s *Snapshot) PadAxisValue(sel PadSelector, a PadAxis) float64 {
	var sum float64
	for id, pad := range s.pads {
		if !sel.Matches(id) {
			continue
		}
		sum += pad.axes[a]
	}
	return sum
}
