package condition

import (
	"log/slog"
	"time"

	"github.com/dshills/actionflow/internal/input/action"
	"github.com/dshills/actionflow/internal/input/value"
)

// Chord requires another action in the same context to be active and
// inherits its state verbatim for the current frame.
//
// The dependency must have been evaluated earlier in the pass; a chord
// naming a missing or not-yet-evaluated action degrades to StateNone
// and logs a diagnostic. It never aborts the frame.
type Chord struct {
	// Action is the identity of the required action.
	Action string

	// Logger overrides slog.Default for diagnostics.
	Logger *slog.Logger
}

// Evaluate implements Condition.
func (c *Chord) Evaluate(actions *action.Map, _ time.Duration, _ value.Value) action.State {
	if actions != nil {
		if a, ok := actions.Resolved(c.Action); ok {
			return a.State()
		}
	}
	c.logger().Warn("chord dependency not present in context", "action", c.Action)
	return action.StateNone
}

// Kind implements Condition.
func (*Chord) Kind() Kind { return Implicit }

func (c *Chord) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// BlockBy blocks the binding while another action is fired this frame,
// the "not pressed elsewhere" gate. A missing blocker does not block.
type BlockBy struct {
	// Action is the identity of the blocking action.
	Action string
}

// Evaluate implements Condition.
func (b *BlockBy) Evaluate(actions *action.Map, _ time.Duration, _ value.Value) action.State {
	if actions != nil {
		if a, ok := actions.Resolved(b.Action); ok && a.State() == action.StateFired {
			return action.StateNone
		}
	}
	return action.StateFired
}

// Kind implements Condition.
func (*BlockBy) Kind() Kind { return Implicit }
