// Package context groups action bindings and drives the per-frame
// evaluation pass.
//
// Bindings evaluate in declaration order within a context, and contexts
// in registration order within a Manager. The ordering is load-bearing:
// chord conditions read the already-computed state of earlier actions
// in the same pass, and a forward reference degrades to an idle state
// rather than deferring.
package context

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dshills/actionflow/internal/input/action"
	"github.com/dshills/actionflow/internal/input/binding"
	"github.com/dshills/actionflow/internal/input/device"
	"github.com/dshills/actionflow/internal/input/value"
)

// Context owns a set of bindings and their action state machines. Each
// binding's state machine lives exactly as long as the binding.
type Context struct {
	id       uuid.UUID
	name     string
	log      *slog.Logger
	bindings []*binding.Binding
	actions  *action.Map
	active   bool
}

// New creates an active, empty context.
func New(name string) *Context {
	return &Context{
		id:      uuid.New(),
		name:    name,
		log:     slog.Default(),
		actions: action.NewMap(),
		active:  true,
	}
}

// ID returns the context's unique identity.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// Name returns the context name.
func (c *Context) Name() string {
	return c.name
}

// SetLogger replaces the context's diagnostic logger.
func (c *Context) SetLogger(log *slog.Logger) {
	c.log = log
}

// Bind registers a binding. Binding an action identity that already
// exists replaces the old binding and resets its state machine.
// Mutations apply starting with the next frame's evaluation.
func (c *Context) Bind(b *binding.Binding) {
	if _, ok := c.actions.Get(b.Action()); ok {
		c.Unbind(b.Action())
	}
	c.bindings = append(c.bindings, b)
	c.actions.Insert(action.New(b.Action(), b.Dim()))
}

// Unbind removes an action's binding and destroys its state machine.
func (c *Context) Unbind(actionName string) {
	for i, b := range c.bindings {
		if b.Action() == actionName {
			c.bindings = append(c.bindings[:i], c.bindings[i+1:]...)
			break
		}
	}
	c.actions.Remove(actionName)
}

// Active reports whether the context participates in evaluation.
func (c *Context) Active() bool {
	return c.active
}

// Activate resumes evaluation of the context's bindings.
func (c *Context) Activate() {
	c.active = true
}

// Deactivate suspends evaluation and resets every action to idle.
func (c *Context) Deactivate() {
	c.active = false
	for _, name := range c.actions.Names() {
		if a, ok := c.actions.Get(name); ok {
			a.Reset()
		}
	}
}

// Evaluate runs one frame's pass over all bindings in declaration
// order, updating each action's state machine. The frame delta comes
// from the snapshot. Inactive contexts are skipped.
func (c *Context) Evaluate(snap *device.Snapshot) {
	if !c.active {
		return
	}
	delta := snap.Delta()
	c.actions.BeginPass()
	for _, b := range c.bindings {
		a, ok := c.actions.Get(b.Action())
		if !ok {
			// Unbind raced a stale binding entry; nothing to update.
			c.log.Warn("binding without action state", "context", c.name, "action", b.Action())
			continue
		}
		v, verdict := b.Evaluate(snap, c.actions, delta)
		a.Update(verdict, v, delta)
	}
}

// Action returns the state machine for an action identity.
func (c *Context) Action(name string) (*action.Action, bool) {
	return c.actions.Get(name)
}

// Value returns an action's current value.
func (c *Context) Value(name string) (value.Value, bool) {
	a, ok := c.actions.Get(name)
	if !ok {
		return value.Value{}, false
	}
	return a.Value(), true
}

// State returns an action's current activation state. Missing actions
// report idle.
func (c *Context) State(name string) action.State {
	a, ok := c.actions.Get(name)
	if !ok {
		return action.StateNone
	}
	return a.State()
}

// Actions returns the context's action map.
func (c *Context) Actions() *action.Map {
	return c.actions
}
