// Package condition classifies a binding's post-modifier value into an
// activation state each frame.
//
// Conditions come in two kinds. Explicit conditions directly determine
// firing (Down, Press, Release, Hold, Tap). Implicit conditions gate or
// inherit state but never independently cause firing (Chord, BlockBy).
// A binding fires only if all explicit conditions fire and no implicit
// condition blocks; verdicts combine by minimum across the two groups.
//
// Conditions are evaluated best-effort: a condition referencing data
// unavailable this frame degrades to StateNone and never aborts the
// evaluation of other actions.
package condition

import (
	"time"

	"github.com/dshills/actionflow/internal/input/action"
	"github.com/dshills/actionflow/internal/input/value"
)

// DefaultActuation is the magnitude threshold above which a value
// counts as actuated.
const DefaultActuation = 0.5

// Kind distinguishes explicit from implicit conditions.
type Kind uint8

const (
	// Explicit conditions directly determine firing.
	Explicit Kind = iota

	// Implicit conditions gate or inherit state.
	Implicit
)

// String returns the kind name.
func (k Kind) String() string {
	if k == Implicit {
		return "implicit"
	}
	return "explicit"
}

// Condition evaluates a post-modifier value into an activation state.
// Stateful conditions (Press, Hold, Tap...) track actuation across
// frames internally and must be declared per-binding, never shared.
type Condition interface {
	Evaluate(actions *action.Map, delta time.Duration, v value.Value) action.State
	Kind() Kind
}

// actuation resolves a configured threshold, falling back to the
// default for the zero value.
func actuation(threshold float64) float64 {
	if threshold == 0 {
		return DefaultActuation
	}
	return threshold
}

// Down fires while the value is actuated past the threshold.
type Down struct {
	// Actuation overrides DefaultActuation when nonzero.
	Actuation float64
}

// Evaluate implements Condition.
func (d *Down) Evaluate(_ *action.Map, _ time.Duration, v value.Value) action.State {
	if v.Actuated(actuation(d.Actuation)) {
		return action.StateFired
	}
	return action.StateNone
}

// Kind implements Condition.
func (*Down) Kind() Kind { return Explicit }

// Press fires once on the frame the value crosses the actuation
// threshold, then stays idle until released.
type Press struct {
	Actuation float64

	held bool
}

// Evaluate implements Condition.
func (p *Press) Evaluate(_ *action.Map, _ time.Duration, v value.Value) action.State {
	actuated := v.Actuated(actuation(p.Actuation))
	defer func() { p.held = actuated }()
	if actuated && !p.held {
		return action.StateFired
	}
	return action.StateNone
}

// Kind implements Condition.
func (*Press) Kind() Kind { return Explicit }

// Release reports Ongoing while the value is actuated and fires once on
// the frame it drops back below the threshold.
type Release struct {
	Actuation float64

	held bool
}

// Evaluate implements Condition.
func (r *Release) Evaluate(_ *action.Map, _ time.Duration, v value.Value) action.State {
	actuated := v.Actuated(actuation(r.Actuation))
	was := r.held
	r.held = actuated
	switch {
	case actuated:
		return action.StateOngoing
	case was:
		return action.StateFired
	default:
		return action.StateNone
	}
}

// Kind implements Condition.
func (*Release) Kind() Kind { return Explicit }

// Hold reports Ongoing while the value is actuated and fires once the
// hold time is reached. With OneShot set it fires for a single frame
// per press; otherwise it keeps firing while held.
type Hold struct {
	// HoldTime is the required actuation duration.
	HoldTime time.Duration

	// OneShot limits firing to one frame per press.
	OneShot bool

	Actuation float64

	held  time.Duration
	fired bool
}

// Evaluate implements Condition.
func (h *Hold) Evaluate(_ *action.Map, delta time.Duration, v value.Value) action.State {
	if !v.Actuated(actuation(h.Actuation)) {
		h.held = 0
		h.fired = false
		return action.StateNone
	}

	h.held += delta
	if h.held < h.HoldTime {
		return action.StateOngoing
	}
	if h.OneShot && h.fired {
		return action.StateNone
	}
	h.fired = true
	return action.StateFired
}

// Kind implements Condition.
func (*Hold) Kind() Kind { return Explicit }

// Tap reports Ongoing while the value is actuated under the tap time
// and fires once on a release that happens in time. Holding past the
// tap time cancels the tap.
type Tap struct {
	// TapTime is the longest press that still counts as a tap.
	TapTime time.Duration

	Actuation float64

	held     time.Duration
	actuated bool
	timedOut bool
}

// Evaluate implements Condition.
func (t *Tap) Evaluate(_ *action.Map, delta time.Duration, v value.Value) action.State {
	actuated := v.Actuated(actuation(t.Actuation))
	was := t.actuated
	t.actuated = actuated

	if actuated {
		if !was {
			t.held = 0
			t.timedOut = false
		}
		t.held += delta
		if t.held > t.TapTime {
			t.timedOut = true
			return action.StateNone
		}
		return action.StateOngoing
	}

	if was && !t.timedOut && t.held <= t.TapTime {
		t.held = 0
		return action.StateFired
	}
	t.held = 0
	return action.StateNone
}

// Kind implements Condition.
func (*Tap) Kind() Kind { return Explicit }
