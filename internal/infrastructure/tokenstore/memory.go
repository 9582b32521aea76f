package tokenstore

import (
	"sync"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/ports"
)

var _ ports.TokenStore = (*MemoryStore)(nil)

// MemoryStore token solo en memoria (tests y sesiones efímeras).
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore construye el store con un token inicial opcional.
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
