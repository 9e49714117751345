package lua

import (
	"log/slog"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/actionflow/internal/input/action"
	"github.com/dshills/actionflow/internal/input/modifier"
	"github.com/dshills/actionflow/internal/input/value"
)

// Modifier is a value transform implemented by a Lua script.
type Modifier struct {
	eng  *Engine
	name string
	fn   *lua.LFunction
	log  *slog.Logger
}

// LoadModifier compiles a modifier script.
func (e *Engine) LoadModifier(name, script string) (*Modifier, error) {
	tbl, err := e.compile(name, script)
	if err != nil {
		return nil, err
	}
	f, err := fn(tbl, "apply", name)
	if err != nil {
		return nil, err
	}
	return &Modifier{eng: e, name: name, fn: f, log: slog.Default()}, nil
}

// RegisterModifier compiles a script and registers it as a modifier
// kind. Like conditions, every instantiation re-runs the script so
// instances never share script-local state.
func (e *Engine) RegisterModifier(name, script string) error {
	if _, err := e.LoadModifier(name, script); err != nil {
		return err
	}
	modifier.Register(name, func(map[string]any) (modifier.Modifier, error) {
		return e.LoadModifier(name, script)
	})
	return nil
}

// Apply implements modifier.Modifier. Script failures pass the value
// through unchanged with a diagnostic.
func (m *Modifier) Apply(_ *action.Map, delta time.Duration, v value.Value) value.Value {
	m.eng.mu.Lock()
	defer m.eng.mu.Unlock()
	if m.eng.closed {
		return v
	}

	L := m.eng.state
	if err := L.CallByParam(lua.P{Fn: m.fn, NRet: 1, Protect: true},
		toLua(L, v), lua.LNumber(delta.Seconds())); err != nil {
		m.log.Warn("lua modifier failed", "modifier", m.name, "error", err)
		return v
	}
	ret := L.Get(-1)
	L.Pop(1)
	return fromLua(ret, v)
}
