package action

// Map is the action-identity-to-state map for one evaluation pass. It
// is built incrementally in declaration order; a later binding may read
// an earlier binding's already-computed state through Resolved.
type Map struct {
	order   []string
	actions map[string]*Action
}

// NewMap creates an empty action map.
func NewMap() *Map {
	return &Map{actions: make(map[string]*Action)}
}

// Insert adds an action. Inserting an existing identity replaces the
// state machine while keeping its declaration position.
func (m *Map) Insert(a *Action) {
	if _, ok := m.actions[a.name]; !ok {
		m.order = append(m.order, a.name)
	}
	m.actions[a.name] = a
}

// Remove deletes an action by identity.
func (m *Map) Remove(name string) {
	if _, ok := m.actions[name]; !ok {
		return
	}
	delete(m.actions, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Get returns the action for an identity, whether or not it has been
// evaluated this pass.
func (m *Map) Get(name string) (*Action, bool) {
	a, ok := m.actions[name]
	return a, ok
}

// Resolved returns the action only if it has been evaluated in the
// current pass. A forward reference (the action exists but runs later
// this pass) reports false.
func (m *Map) Resolved(name string) (*Action, bool) {
	a, ok := m.actions[name]
	if !ok || !a.resolved {
		return nil, false
	}
	return a, true
}

// BeginPass marks every action as unevaluated for a new frame.
func (m *Map) BeginPass() {
	for _, a := range m.actions {
		a.resolved = false
	}
}

// Names returns the action identities in declaration order.
func (m *Map) Names() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Len returns the number of actions.
func (m *Map) Len() int {
	return len(m.actions)
}
