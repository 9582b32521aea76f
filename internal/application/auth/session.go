// Package auth mantiene la sesión de la consola: token durable + usuario en memoria.
package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/ports"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/logger"
)

// Mode estado de autenticación de la consola.
type Mode int

const (
	ModeUnauthenticated Mode = iota
	ModeAuthenticated
)

func (m Mode) String() string {
	if m == ModeAuthenticated {
		return "super-admin"
	}
	return "auth"
}

// UserFetcher consulta el usuario actual (GET /super-admin/user).
type UserFetcher interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
}

// Session almacén de sesión. Seguro para uso concurrente: Restore corre fuera del hilo de UI.
type Session struct {
	tokens ports.TokenStore
	users  UserFetcher
	log    *logger.Logger

	mu   sync.RWMutex
	mode Mode
	user *entity.User
}

// NewSession construye la sesión en modo no autenticado.
func NewSession(tokens ports.TokenStore, users UserFetcher, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{tokens: tokens, users: users, log: log}
}

// Login persiste el token y pasa a modo autenticado.
func (s *Session) Login(user entity.User, token string) error {
	if token == "" {
		return fmt.Errorf("auth: login sin token")
	}
	if err := s.tokens.SetToken(token); err != nil {
		return fmt.Errorf("auth: guardar token: %w", err)
	}
	s.mu.Lock()
	s.mode = ModeAuthenticated
	s.user = &user
	s.mu.Unlock()
	s.log.Info().Str("user_id", user.ID).Msg("sesión iniciada")
	return nil
}

// Logout borra el token y vuelve a modo no autenticado.
// El estado en memoria se limpia aunque falle el borrado del archivo.
func (s *Session) Logout() error {
	s.clear()
	if err := s.tokens.Clear(); err != nil {
		return fmt.Errorf("auth: borrar token: %w", err)
	}
	s.log.Info().Msg("sesión cerrada")
	return nil
}

// Restore recupera la sesión al arrancar: si hay token consulta el usuario actual.
// Cualquier fallo borra el token y deja la sesión sin autenticar.
func (s *Session) Restore(ctx context.Context) error {
	if s.tokens.Token() == "" {
		return nil
	}
	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		s.clear()
		if cerr := s.tokens.Clear(); cerr != nil {
			s.log.Error().Err(cerr).Msg("auth: borrar token tras restore fallido")
		}
		s.log.Warn().Err(err).Msg("no se pudo restaurar la sesión")
		return fmt.Errorf("auth: restaurar sesión: %w", err)
	}
	s.mu.Lock()
	s.mode = ModeAuthenticated
	s.user = user
	s.mu.Unlock()
	return nil
}

// Expire se engancha al 401 del cliente: el token ya fue borrado, solo se limpia la memoria.
func (s *Session) Expire() {
	s.clear()
	s.log.Warn().Msg("sesión expirada (401)")
}

// SetUser reemplaza el usuario tras editar el perfil o el avatar.
func (s *Session) SetUser(user entity.User) {
	s.mu.Lock()
	if s.mode == ModeAuthenticated {
		s.user = &user
	}
	s.mu.Unlock()
}

func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Session) Authenticated() bool { return s.Mode() == ModeAuthenticated }

// User devuelve una copia del usuario actual.
func (s *Session) User() (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return entity.User{}, false
	}
	return *s.user, true
}

func (s *Session) clear() {
	s.mu.Lock()
	s.mode = ModeUnauthenticated
	s.user = nil
	s.mu.Unlock()
}
