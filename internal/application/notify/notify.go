// Package notify gestiona el overlay de notificaciones: un toast a la vez y un diálogo de confirmación.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL duración de un toast.
const DefaultTTL = 3000 * time.Millisecond

// Kind tipo de toast.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Toast mensaje transitorio visible.
type Toast struct {
	ID      uint64
	Kind    Kind
	Message string
}

// ConfirmOptions diálogo de confirmación.
type ConfirmOptions struct {
	Title        string
	Message      string
	ConfirmLabel string
	OnConfirm    func()
}

// Timer lo que devuelve AfterFunc; *time.Timer lo cumple.
type Timer interface {
	Stop() bool
}

// AfterFunc programa f tras d.
type AfterFunc func(d time.Duration, f func()) Timer

// Option configura el Service.
type Option func(*Service)

// WithTTL cambia la duración de los toasts.
func WithTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithAfterFunc reemplaza el temporizador (tests).
func WithAfterFunc(fn AfterFunc) Option {
	return func(s *Service) { s.afterFunc = fn }
}

// Service overlay único de la consola; se construye una vez y se comparte.
type Service struct {
	ttl       time.Duration
	afterFunc AfterFunc

	mu       sync.Mutex
	seq      uint64
	toast    *Toast
	timer    Timer
	confirm  *ConfirmOptions
	onChange func()
}

// New construye el servicio.
func New(opts ...Option) *Service {
	s := &Service{
		ttl: DefaultTTL,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// OnChange registra el listener de repintado. Puede invocarse desde la goroutine del temporizador.
func (s *Service) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// ShowToast reemplaza el toast actual y programa su cierre.
func (s *Service) ShowToast(kind Kind, message string) Toast {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.seq++
	t := Toast{ID: s.seq, Kind: kind, Message: message}
	s.toast = &t
	id := t.ID
	s.timer = s.afterFunc(s.ttl, func() { s.dismiss(id) })
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return t
}

func (s *Service) Success(message string) Toast { return s.ShowToast(Success, message) }
func (s *Service) Error(message string) Toast   { return s.ShowToast(Error, message) }
func (s *Service) Info(message string) Toast    { return s.ShowToast(Info, message) }

// Toast devuelve el toast visible.
func (s *Service) Toast() (Toast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toast == nil {
		return Toast{}, false
	}
	return *s.toast, true
}

// DismissToast cierra el toast visible (tecla de cierre).
func (s *Service) DismissToast() {
	s.mu.Lock()
	var id uint64
	if s.toast != nil {
		id = s.toast.ID
	}
	s.mu.Unlock()
	if id != 0 {
		s.dismiss(id)
	}
}

// dismiss solo cierra si id sigue siendo el toast visible: un temporizador viejo
// no puede cerrar un toast más nuevo.
func (s *Service) dismiss(id uint64) {
	s.mu.Lock()
	if s.toast == nil || s.toast.ID != id {
		s.mu.Unlock()
		return
	}
	s.toast = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Confirm abre el diálogo; una segunda llamada reemplaza la primera.
func (s *Service) Confirm(opts ConfirmOptions) {
	if opts.ConfirmLabel == "" {
		opts.ConfirmLabel = "Confirm"
	}
	s.mu.Lock()
	s.confirm = &opts
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Dialog devuelve el diálogo abierto.
func (s *Service) Dialog() (ConfirmOptions, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.confirm == nil {
		return ConfirmOptions{}, false
	}
	return *s.confirm, true
}

// Accept ejecuta el callback y cierra el diálogo.
func (s *Service) Accept() {
	s.mu.Lock()
	c := s.confirm
	s.mu.Unlock()
	if c == nil {
		return
	}
	if c.OnConfirm != nil {
		c.OnConfirm()
	}
	s.closeDialog(c)
}

// Cancel cierra el diálogo sin ejecutar el callback.
func (s *Service) Cancel() {
	s.mu.Lock()
	c := s.confirm
	s.mu.Unlock()
	if c != nil {
		s.closeDialog(c)
	}
}

// closeDialog cierra c salvo que el callback haya abierto otro diálogo.
func (s *Service) closeDialog(c *ConfirmOptions) {
	s.mu.Lock()
	if s.confirm != c {
		s.mu.Unlock()
		return
	}
	s.confirm = nil
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
