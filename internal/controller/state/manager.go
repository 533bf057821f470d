package state

import (
	"sync"

	"github.com/sashakmakeup/booking_bot/internal/model"
)

// Manager is the in-memory cache of per-chat conversation state sitting in
// front of the state repository.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]model.AgentState
}

// NewManager creates an empty state manager.
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]model.AgentState),
	}
}

// Get returns the cached state for a chat, if any.
func (m *Manager) Get(chatID int64) (model.AgentState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.states[chatID]
	return st, ok
}

// Set caches the state for a chat.
func (m *Manager) Set(chatID int64, st model.AgentState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[chatID] = st
}

// Clear drops the cached state for a chat.
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, chatID)
}
