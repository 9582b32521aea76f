package memory

import (
	"slices"
	"sync"
)

// Avatar archivo de imagen subido.
type Avatar struct {
	ContentType string
	Data        []byte
}

// AvatarStore guarda los avatares subidos por nombre de archivo.
type AvatarStore struct {
	mu    sync.RWMutex
	files map[string]Avatar
}

// NewAvatarStore crea el almacén vacío.
func NewAvatarStore() *AvatarStore {
	return &AvatarStore{files: map[string]Avatar{}}
}

// Save guarda (o reemplaza) el archivo.
func (s *AvatarStore) Save(name, contentType string, data []byte) {
	s.mu.Lock()
	s.files[name] = Avatar{ContentType: contentType, Data: slices.Clone(data)}
	s.mu.Unlock()
}

// Get devuelve el archivo si existe.
func (s *AvatarStore) Get(name string) (Avatar, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.files[name]
	return a, ok
}
