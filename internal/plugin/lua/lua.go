// Package lua lets host applications define custom condition and
// modifier kinds as Lua scripts.
//
// A condition script returns a table with an `evaluate` function and an
// optional `kind` field ("explicit" or "implicit"):
//
//	return {
//		kind = "explicit",
//		evaluate = function(value, delta)
//			if value.x > 0.8 then return "fired" end
//			return "none"
//		end,
//	}
//
// A modifier script returns a table with an `apply` function that
// yields a number, boolean, or {dim=..., x=..., y=..., z=...} table.
//
// Scripts run in a sandboxed state: only the base, table, string, and
// math libraries are open, and code loading functions are removed.
//
// IMPORTANT: gopher-lua's LState is not goroutine-safe. The Engine
// serializes all calls through a mutex; conditions and modifiers built
// from one Engine share that lock.
package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Engine owns a sandboxed Lua state and builds conditions and
// modifiers from scripts.
type Engine struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// New creates an Engine with a sandboxed state.
func New() *Engine {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(open.fn))
		L.Push(lua.LString(open.name))
		L.Call(1, 0)
	}

	// Remove code loading; scripts are compiled only through the Engine.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	return &Engine{state: L}
}

// Close releases the Lua state. Conditions and modifiers built from
// this engine must not be evaluated after Close.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.closed {
		e.state.Close()
		e.closed = true
	}
}

// compile runs a script and returns the table it yields.
func (e *Engine) compile(name, script string) (*lua.LTable, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, fmt.Errorf("lua engine is closed")
	}

	if err := e.state.DoString(script); err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	ret := e.state.Get(-1)
	e.state.Pop(1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("script %s must return a table, got %s", name, ret.Type())
	}
	return tbl, nil
}

// fn extracts a function field from a script table.
func fn(tbl *lua.LTable, field, script string) (*lua.LFunction, error) {
	v := tbl.RawGetString(field)
	f, ok := v.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("script %s must define a %q function", script, field)
	}
	return f, nil
}
