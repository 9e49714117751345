package context

import (
	"github.com/dshills/actionflow/internal/input/device"
)

// Manager evaluates a set of contexts in registration order, once per
// frame. Evaluation is single-threaded; no binding ever runs
// concurrently with another.
type Manager struct {
	contexts []*Context
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers a context at the end of the evaluation order.
func (m *Manager) Add(c *Context) {
	m.contexts = append(m.contexts, c)
}

// Remove unregisters a context by name and resets its actions.
func (m *Manager) Remove(name string) {
	for i, c := range m.contexts {
		if c.Name() == name {
			c.Deactivate()
			m.contexts = append(m.contexts[:i], m.contexts[i+1:]...)
			return
		}
	}
}

// Get returns a registered context by name.
func (m *Manager) Get(name string) (*Context, bool) {
	for _, c := range m.contexts {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Contexts returns the contexts in registration order.
func (m *Manager) Contexts() []*Context {
	out := make([]*Context, len(m.contexts))
	copy(out, m.contexts)
	return out
}

// Evaluate runs one frame's pass over every active context.
func (m *Manager) Evaluate(snap *device.Snapshot) {
	for _, c := range m.contexts {
		c.Evaluate(snap)
	}
}
