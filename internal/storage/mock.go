package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/level"
	"github.com/anthill-game/anthill/pkg/state"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*state.GameState
	itemDefs  item.DefSet
	npcDefs   actor.NPCDefSet
	levels    map[string]level.Data
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		sessions: make(map[uuid.UUID]*state.GameState),
		itemDefs: item.DefSet{},
		npcDefs:  actor.NPCDefSet{},
		levels:   make(map[string]level.Data),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetItemDefs seeds the item definition catalog
func (m *MockStorage) SetItemDefs(defs item.DefSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.itemDefs = defs
}

// SetNPCDefs seeds the NPC definition catalog
func (m *MockStorage) SetNPCDefs(defs actor.NPCDefSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.npcDefs = defs
}

// AddLevel seeds a static level under the given name
func (m *MockStorage) AddLevel(name string, d level.Data) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[name] = d
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveSession mocks saving a session
func (m *MockStorage) SaveSession(ctx context.Context, id uuid.UUID, gs *state.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = gs
	return nil
}

// LoadSession mocks loading a session. Returns nil when absent.
func (m *MockStorage) LoadSession(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id], nil
}

// DeleteSession mocks deleting a session
func (m *MockStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// ItemDefs mocks loading the item catalog
func (m *MockStorage) ItemDefs(ctx context.Context) (item.DefSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.itemDefs, nil
}

// NPCDefs mocks loading the NPC catalog
func (m *MockStorage) NPCDefs(ctx context.Context) (actor.NPCDefSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.npcDefs, nil
}

// Level mocks loading a static level
func (m *MockStorage) Level(ctx context.Context, name string) (level.Data, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.levels[name]
	if !ok {
		return level.Data{}, fmt.Errorf("level not found: %s", name)
	}
	return d, nil
}

// ListLevels mocks listing static levels
func (m *MockStorage) ListLevels(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.levels))
	for name := range m.levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
