package binding

import (
	"time"

	"github.com/dshills/actionflow/internal/input/action"
	"github.com/dshills/actionflow/internal/input/condition"
	"github.com/dshills/actionflow/internal/input/device"
	"github.com/dshills/actionflow/internal/input/modifier"
	"github.com/dshills/actionflow/internal/input/value"
)

// Entry pairs a source with the modifiers applied to that source alone,
// before its contribution joins the other entries. Composite presets
// use per-entry modifiers to route each source onto its axis.
type Entry struct {
	Source    Source
	Modifiers []modifier.Modifier
}

// Binding is the association of one action with its ordered sources,
// modifier chain, and condition set. Build it fluently:
//
//	b := binding.New("move", value.DimAxis2D).
//		ToEntries(binding.Cardinal(w, a, s, d)...).
//		Normalized()
type Binding struct {
	action     string
	dim        value.Dim
	pad        device.PadSelector
	entries    []Entry
	modifiers  []modifier.Modifier
	conditions []condition.Condition
	actuation  float64
	normalized bool
}

// New creates a binding for an action identity with a declared output
// dimension.
func New(actionName string, dim value.Dim) *Binding {
	return &Binding{action: actionName, dim: dim}
}

// Action returns the bound action identity.
func (b *Binding) Action() string {
	return b.action
}

// Dim returns the action's declared output dimension.
func (b *Binding) Dim() value.Dim {
	return b.dim
}

// To appends plain sources with no per-entry modifiers.
func (b *Binding) To(sources ...Source) *Binding {
	for _, s := range sources {
		b.entries = append(b.entries, Entry{Source: s})
	}
	return b
}

// ToEntries appends source entries, preserving order.
func (b *Binding) ToEntries(entries ...Entry) *Binding {
	b.entries = append(b.entries, entries...)
	return b
}

// With appends binding-level modifiers, applied after all entry
// contributions are combined.
func (b *Binding) With(mods ...modifier.Modifier) *Binding {
	b.modifiers = append(b.modifiers, mods...)
	return b
}

// When appends conditions, evaluated in order against the
// post-modifier value.
func (b *Binding) When(conds ...condition.Condition) *Binding {
	b.conditions = append(b.conditions, conds...)
	return b
}

// Pad restricts gamepad sources to the selected device. The default
// reads from any connected pad.
func (b *Binding) Pad(sel device.PadSelector) *Binding {
	b.pad = sel
	return b
}

// Actuation overrides the default actuation threshold used when the
// binding has no explicit conditions.
func (b *Binding) Actuation(threshold float64) *Binding {
	b.actuation = threshold
	return b
}

// Normalized clamps the combined value to unit length, for actions
// whose semantics require a direction. Opposite contributions still
// cancel to zero before the clamp.
func (b *Binding) Normalized() *Binding {
	b.normalized = true
	return b
}

// Evaluate runs the full pipeline for one frame: capture each entry,
// apply its per-entry modifiers, sum the contributions per axis, apply
// the binding-level chain, then classify with the condition set. The
// returned value is converted to the action's declared dimension.
func (b *Binding) Evaluate(snap *device.Snapshot, actions *action.Map, delta time.Duration) (value.Value, action.State) {
	combined := value.Zero(value.DimBool)
	for i, e := range b.entries {
		v := e.Source.Capture(snap, b.pad)
		for _, m := range e.Modifiers {
			v = m.Apply(actions, delta, v)
		}
		if i == 0 {
			combined = v
		} else {
			combined = combined.Add(v)
		}
	}
	if b.normalized {
		combined = combined.ClampLength(1)
	}

	for _, m := range b.modifiers {
		combined = m.Apply(actions, delta, combined)
	}

	verdict := b.verdict(actions, delta, combined)
	return combined.Convert(b.dim), verdict
}

// verdict combines the condition set: logical AND across explicit
// conditions, minimum cap across implicit ones. With no explicit
// conditions the actuation threshold decides.
func (b *Binding) verdict(actions *action.Map, delta time.Duration, v value.Value) action.State {
	explicit := action.StateFired
	haveExplicit := false
	implicitCap := action.StateFired

	for _, c := range b.conditions {
		st := c.Evaluate(actions, delta, v)
		if c.Kind() == condition.Implicit {
			if st < implicitCap {
				implicitCap = st
			}
		} else {
			haveExplicit = true
			if st < explicit {
				explicit = st
			}
		}
	}

	base := explicit
	if !haveExplicit {
		threshold := b.actuation
		if threshold == 0 {
			threshold = condition.DefaultActuation
		}
		if v.Actuated(threshold) {
			base = action.StateFired
		} else {
			base = action.StateNone
		}
	}

	if implicitCap < base {
		return implicitCap
	}
	return base
}
