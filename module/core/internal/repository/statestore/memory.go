package statestore

import (
	"context"
	"sync"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps trip state in a mutex-guarded map. An unknown
// device reads back as the zero state (outside every zone).
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]domain.TripState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]domain.TripState)}
}

func (s *MemoryStore) Get(_ context.Context, deviceID string) (domain.TripState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[deviceID], nil
}

func (s *MemoryStore) Put(_ context.Context, deviceID string, state domain.TripState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[deviceID] = state
	return nil
}
