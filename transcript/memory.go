package transcript

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory transcript store backed by a mutex-protected
// map. Transcripts are deep-copied on save and load to prevent external
// mutation.
type MemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string]*Transcript
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transcripts: make(map[string]*Transcript),
	}
}

// Save persists a transcript by deep-copying it into the store.
func (m *MemoryStore) Save(_ context.Context, t *Transcript) error {
	if t == nil {
		return fmt.Errorf("transcript is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.transcripts[t.ID] = deepCopy(t)
	return nil
}

// Load retrieves a transcript by ID. Returns a deep copy so callers cannot
// mutate store state.
func (m *MemoryStore) Load(_ context.Context, id string) (*Transcript, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.transcripts[id]
	if !ok {
		return nil, fmt.Errorf("transcript not found: %s", id)
	}
	return deepCopy(t), nil
}

// Delete removes a transcript by ID. Returns an error if not found.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transcripts[id]; !ok {
		return fmt.Errorf("transcript not found: %s", id)
	}
	delete(m.transcripts, id)
	return nil
}

// List returns all transcripts in the store as deep copies.
func (m *MemoryStore) List(_ context.Context) ([]*Transcript, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Transcript, 0, len(m.transcripts))
	for _, t := range m.transcripts {
		result = append(result, deepCopy(t))
	}
	return result, nil
}

// deepCopy creates a deep copy of a transcript, keeping its ID.
func deepCopy(t *Transcript) *Transcript {
	steps := make([]Step, len(t.Steps))
	copy(steps, t.Steps)

	return &Transcript{
		ID:        t.ID,
		Project:   t.Project,
		AgentID:   t.AgentID,
		Steps:     steps,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
