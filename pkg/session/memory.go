package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. Entries accumulate for the process
// lifetime; there is no eviction. TODO: add an idle sweep calling Delete
// once an inactivity threshold is decided.
type MemoryStore struct {
	sessions sync.Map // userID -> *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context, userID string) (*Session, error) {
	v, ok := m.sessions.Load(userID)
	if !ok {
		return nil, nil
	}
	return v.(*Session), nil
}

func (m *MemoryStore) Put(_ context.Context, userID string, s *Session) error {
	m.sessions.Store(userID, s)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID string) error {
	m.sessions.Delete(userID)
	return nil
}
