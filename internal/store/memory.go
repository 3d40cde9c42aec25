package store

import (
	"sync"

	"github.com/diewo77/invoice-studio/internal/models"
)

// MemoryStore keeps the defaults in process memory. Used in tests and when
// running without a database file.
type MemoryStore struct {
	mu       sync.Mutex
	defaults models.SessionDefaults
	set      bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (models.SessionDefaults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return models.SessionDefaults{}, nil
	}
	return s.defaults, nil
}

func (s *MemoryStore) Save(d models.SessionDefaults) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = d
	s.set = true
	return nil
}
