package lua

import (
	"log/slog"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/actionflow/internal/input/action"
	"github.com/dshills/actionflow/internal/input/condition"
	"github.com/dshills/actionflow/internal/input/value"
)

// Condition is a condition implemented by a Lua script.
type Condition struct {
	eng  *Engine
	name string
	fn   *lua.LFunction
	kind condition.Kind
	log  *slog.Logger
}

// LoadCondition compiles a condition script. The returned condition is
// stateful on the Lua side only if the script closes over its own
// locals.
func (e *Engine) LoadCondition(name, script string) (*Condition, error) {
	tbl, err := e.compile(name, script)
	if err != nil {
		return nil, err
	}
	f, err := fn(tbl, "evaluate", name)
	if err != nil {
		return nil, err
	}
	kind := condition.Explicit
	if k, ok := tbl.RawGetString("kind").(lua.LString); ok && string(k) == "implicit" {
		kind = condition.Implicit
	}
	return &Condition{eng: e, name: name, fn: f, kind: kind, log: slog.Default()}, nil
}

// RegisterCondition compiles a script and registers it as a condition
// kind, so bindings can instantiate it by name. The factory re-runs
// the script per instantiation: script-local state (closed-over
// accumulators) is never shared between bindings.
func (e *Engine) RegisterCondition(name, script string) error {
	if _, err := e.LoadCondition(name, script); err != nil {
		return err
	}
	condition.Register(name, func(map[string]any) (condition.Condition, error) {
		return e.LoadCondition(name, script)
	})
	return nil
}

// Evaluate implements condition.Condition. Script failures degrade to
// an idle state with a diagnostic; they never abort the frame.
func (c *Condition) Evaluate(_ *action.Map, delta time.Duration, v value.Value) action.State {
	c.eng.mu.Lock()
	defer c.eng.mu.Unlock()
	if c.eng.closed {
		return action.StateNone
	}

	L := c.eng.state
	if err := L.CallByParam(lua.P{Fn: c.fn, NRet: 1, Protect: true},
		toLua(L, v), lua.LNumber(delta.Seconds())); err != nil {
		c.log.Warn("lua condition failed", "condition", c.name, "error", err)
		return action.StateNone
	}
	ret := L.Get(-1)
	L.Pop(1)

	switch ret.String() {
	case "fired":
		return action.StateFired
	case "ongoing":
		return action.StateOngoing
	default:
		return action.StateNone
	}
}

// Kind implements condition.Condition.
func (c *Condition) Kind() condition.Kind {
	return c.kind
}
