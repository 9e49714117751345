// Package action holds the per-action activation state machine and the
// per-pass action map read by chord conditions.
package action

import (
	"fmt"
	"time"

	"github.com/dshills/actionflow/internal/input/value"
)

// State is the activation lifecycle tag for one action in one frame.
// The ordering None < Ongoing < Fired is load-bearing: condition
// verdicts combine by taking the minimum.
type State uint8

const (
	// StateNone means the action is idle.
	StateNone State = iota

	// StateOngoing means the action is actuated but has not met its
	// firing conditions.
	StateOngoing

	// StateFired means the action's firing conditions are satisfied.
	// The state is level-triggered: sustained satisfaction keeps it
	// Fired every frame.
	StateFired
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateOngoing:
		return "ongoing"
	case StateFired:
		return "fired"
	default:
		return fmt.Sprintf("state(%d)", s)
	}
}

// Action is the state machine for one bound action. It records the
// condition evaluator's verdict each frame and maintains derived timers;
// transition authority belongs to the conditions, not to the machine.
type Action struct {
	name string
	dim  value.Dim

	state State
	val   value.Value

	// elapsed is the time spent in the current state, reset on every
	// transition.
	elapsed time.Duration

	// heldFor is the time the action has been non-idle (Ongoing or
	// Fired), reset when the action returns to None.
	heldFor time.Duration

	// firedFor is the time spent in Fired, reset on entering Fired.
	firedFor time.Duration

	// resolved marks the action as evaluated in the current pass.
	// Chords only inherit from resolved actions.
	resolved bool
}

// New creates an idle action with the given identity and declared
// output dimension.
func New(name string, dim value.Dim) *Action {
	return &Action{
		name: name,
		dim:  dim,
		val:  value.Zero(dim),
	}
}

// Name returns the action identity.
func (a *Action) Name() string { return a.name }

// Dim returns the declared output dimension.
func (a *Action) Dim() value.Dim { return a.dim }

// State returns the current activation state.
func (a *Action) State() State { return a.state }

// Value returns the last published value, converted to the declared
// dimension. It is retained while idle (e.g. a zero vector after
// release).
func (a *Action) Value() value.Value { return a.val }

// Elapsed returns the time spent in the current state.
func (a *Action) Elapsed() time.Duration { return a.elapsed }

// HeldFor returns the time the action has been non-idle.
func (a *Action) HeldFor() time.Duration { return a.heldFor }

// FiredFor returns the time spent in the Fired state.
func (a *Action) FiredFor() time.Duration { return a.firedFor }

// Update records this frame's verdict and value. Timers reset on a
// state transition and advance by the frame delta otherwise.
func (a *Action) Update(verdict State, v value.Value, delta time.Duration) {
	if verdict == a.state {
		a.elapsed += delta
	} else {
		a.elapsed = 0
	}

	switch {
	case verdict == StateNone:
		a.heldFor = 0
	case a.state == StateNone:
		a.heldFor = 0
	default:
		a.heldFor += delta
	}

	switch {
	case verdict != StateFired:
		a.firedFor = 0
	case a.state == StateFired:
		a.firedFor += delta
	default:
		a.firedFor = 0
	}

	a.state = verdict
	a.val = v.Convert(a.dim)
	a.resolved = true
}

// Reset returns the action to idle with zeroed value and timers, as
// when its owning context is deactivated.
func (a *Action) Reset() {
	a.state = StateNone
	a.val = value.Zero(a.dim)
	a.elapsed = 0
	a.heldFor = 0
	a.firedFor = 0
	a.resolved = false
}
