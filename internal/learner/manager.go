package learner

import "sync"

// Manager owns all learner states, keyed by the transport's user id.
// States are created on first contact and never evicted; the population
// of a single tutoring bot fits comfortably in memory.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*State
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{states: make(map[int64]*State)}
}

// Get returns the state for id, creating it on first contact.
func (m *Manager) Get(id int64) *State {
	m.mu.RLock()
	s, ok := m.states[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok = m.states[id]; ok {
		return s
	}
	s = newState(id)
	m.states[id] = s
	return s
}

// Known reports whether a state already exists for id.
func (m *Manager) Known(id int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.states[id]
	return ok
}

// All returns a snapshot of every learner state. Used by the reminder
// scheduler.
func (m *Manager) All() []*State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*State, 0, len(m.states))
	for _, s := range m.states {
		out = append(out, s)
	}
	return out
}
