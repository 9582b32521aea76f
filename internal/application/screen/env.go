// Package screen contiene un controlador por pantalla de la consola.
//
// Los controladores no conocen la terminal: exponen estado y operaciones que devuelven
// listing.Pending. La interfaz (internal/interfaces/tui) ejecuta cada Pending en una
// goroutine y aplica el Commit resultante en su hilo de actualización.
package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/auth"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/ports"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/logger"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/validation"
)

// Screen contrato común de las pantallas navegables.
type Screen interface {
	View() navigation.View
	// Parent vista a la que vuelve el botón atrás.
	Parent() navigation.View
	// Mount se invoca al entrar en la vista; puede devolver nil si no hay nada que cargar.
	Mount() listing.Pending
	// Leave cancela las cargas en curso.
	Leave()
}

// Deps dependencias de construcción del Env.
type Deps struct {
	API       ports.SuperAdminAPI
	Session   *auth.Session
	Router    *navigation.Router
	Notify    *notify.Service
	Receipts  ports.ReceiptRenderer
	Log       *logger.Logger
	Debounce  time.Duration
	ExportDir string
}

// Env dependencias compartidas por todas las pantallas.
type Env struct {
	Ctx       context.Context
	API       ports.SuperAdminAPI
	Session   *auth.Session
	Router    *navigation.Router
	Notify    *notify.Service
	Receipts  ports.ReceiptRenderer
	Log       *logger.Logger
	Validate  *validator.Validate
	Debounce  time.Duration
	ExportDir string

	mu       sync.Mutex
	deferred []listing.Pending
}

// NewEnv construye el entorno. ctx es el contexto raíz de la consola.
func NewEnv(ctx context.Context, d Deps) *Env {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Notify == nil {
		d.Notify = notify.New()
	}
	if d.Router == nil {
		d.Router = navigation.NewRouter()
	}
	if d.ExportDir == "" {
		d.ExportDir = "."
	}
	return &Env{
		Ctx:       ctx,
		API:       d.API,
		Session:   d.Session,
		Router:    d.Router,
		Notify:    d.Notify,
		Receipts:  d.Receipts,
		Log:       d.Log,
		Validate:  validation.New(),
		Debounce:  d.Debounce,
		ExportDir: d.ExportDir,
	}
}

// Defer encola trabajo iniciado fuera de una operación con retorno (p. ej. el callback
// de un diálogo de confirmación). La interfaz lo recoge con TakeDeferred tras cada evento.
func (e *Env) Defer(p listing.Pending) {
	if p == nil {
		return
	}
	e.mu.Lock()
	e.deferred = append(e.deferred, p)
	e.mu.Unlock()
}

// TakeDeferred vacía la cola de trabajo diferido.
func (e *Env) TakeDeferred() []listing.Pending {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.deferred
	e.deferred = nil
	return out
}

// Fail es el único camino de error de las pantallas: registra y muestra un toast.
// Las cancelaciones se ignoran y el 401 solo se registra (la consola vuelve al login).
func (e *Env) Fail(op string, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, context.Canceled):
		e.Log.Debug().Str("op", op).Msg("operación cancelada")
		return
	case errors.Is(err, domain.ErrUnauthorized):
		e.Log.Warn().Str("op", op).Msg("sesión expirada")
		return
	}
	e.Log.Error().Err(err).Str("op", op).Msg("operación fallida")
	e.Notify.Error(Message(err))
}

// failer adapta Fail al callback de listing.Fetch.
func (e *Env) failer(op string) func(error) listing.Pending {
	return func(err error) listing.Pending {
		e.Fail(op, err)
		return nil
	}
}

// apiError lo cumple *api.Error; evita depender del adaptador HTTP.
type apiError interface {
	error
	FieldErrors() map[string]string
}

// Message texto para el usuario: el mensaje del servidor si lo hay, si no el genérico.
func Message(err error) string {
	var ae apiError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	return domain.DefaultMessage
}
