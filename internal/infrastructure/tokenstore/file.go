// Package tokenstore implementa el almacenamiento durable del token de sesión.
package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/ports"
)

// TokenKey clave bajo la que se guarda el token (misma que usaba el localStorage del navegador).
const TokenKey = "super_admin_token"

var _ ports.TokenStore = (*FileStore)(nil)

// FileStore guarda el token en un archivo JSON {"super_admin_token": "..."} con permisos 0600.
// Mantiene una copia en memoria para que las lecturas por petición no toquen disco.
type FileStore struct {
	path  string
	mu    sync.RWMutex
	token string
}

// NewFileStore construye el store y carga el token existente, si lo hay.
// Un archivo corrupto se trata como "sin sesión".
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tokenstore: leer %s: %w", s.path, err)
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	s.token = data[TokenKey]
	return nil
}

// Token devuelve el token en memoria.
func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken persiste el token de forma atómica (archivo temporal + rename).
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("tokenstore: crear directorio: %w", err)
	}
	raw, err := json.Marshal(map[string]string{TokenKey: token})
	if err != nil {
		return fmt.Errorf("tokenstore: serializar: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("tokenstore: escribir: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("tokenstore: reemplazar: %w", err)
	}
	s.token = token
	return nil
}

// Clear borra el archivo y el token en memoria. Borrar un archivo inexistente no es error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("tokenstore: borrar: %w", err)
	}
	return nil
}
