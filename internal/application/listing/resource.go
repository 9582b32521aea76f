// Package listing reúne el patrón común de las pantallas lista/detalle:
// recursos con generación, debounce de búsqueda, ciclo de orden, filtro local
// y mapeo de errores por campo.
//
// El trabajo asíncrono se expresa como Pending (I/O fuera del hilo de UI) que devuelve
// un Commit (aplica estado en el hilo de UI) que a su vez puede devolver otro Pending.
package listing

import (
	"context"
)

// Pending trabajo bloqueante; corre en una goroutine.
type Pending func() Commit

// Commit aplica el resultado en el hilo de UI; puede encadenar otro Pending (refetch).
type Commit func() Pending

// Drain ejecuta una cadena completa de forma síncrona.
func Drain(p Pending) {
	for p != nil {
		c := p()
		if c == nil {
			return
		}
		p = c()
	}
}

// Then encadena b después de que a termine (incluidos sus follow-ups).
func Then(a Pending, b func() Pending) Pending {
	if a == nil {
		return b()
	}
	return func() Commit {
		c := a()
		return func() Pending {
			var next Pending
			if c != nil {
				next = c()
			}
			if next == nil {
				return b()
			}
			return Then(next, b)
		}
	}
}

// Resource estado de una carga: datos, error y bandera de carga.
// Solo se modifica desde el hilo de UI.
type Resource[T any] struct {
	Data    T
	Err     error
	Loading bool
	Loaded  bool

	gen    uint64
	cancel context.CancelFunc
}

// Ticket identifica una carga concreta.
type Ticket struct {
	gen uint64
	Ctx context.Context
}

// Begin inicia una carga: cancela la anterior y devuelve el ticket vigente.
func (r *Resource[T]) Begin(parent context.Context) Ticket {
	if r.cancel != nil {
		r.cancel()
	}
	r.gen++
	ctx, cancel := context.WithCancel(parent)
	r.cancel = cancel
	r.Loading = true
	return Ticket{gen: r.gen, Ctx: ctx}
}

// Current indica si t sigue siendo la carga vigente.
func (r *Resource[T]) Current(t Ticket) bool { return t.gen == r.gen }

// Resolve aplica el resultado si el ticket sigue vigente. Las respuestas viejas se descartan.
// En error se conservan los datos previos.
func (r *Resource[T]) Resolve(t Ticket, data T, err error) bool {
	if !r.Current(t) {
		return false
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.Loading = false
	r.Err = err
	if err == nil {
		r.Data = data
		r.Loaded = true
	}
	return true
}

// Cancel invalida la carga en curso (salir de la pantalla o cambiar de sujeto).
func (r *Resource[T]) Cancel() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.gen++
	r.Loading = false
}

// Reset descarta datos y carga en curso.
func (r *Resource[T]) Reset() {
	r.Cancel()
	var zero T
	r.Data = zero
	r.Err = nil
	r.Loaded = false
}

// Fetch arranca una carga de r y devuelve el trabajo pendiente. Begin se ejecuta ya
// (hilo de UI); fetch corre en el Pending. done se invoca solo si el resultado se aplicó.
func Fetch[T any](ctx context.Context, r *Resource[T], fetch func(context.Context) (T, error), done func(err error) Pending) Pending {
	t := r.Begin(ctx)
	return func() Commit {
		data, err := fetch(t.Ctx)
		return func() Pending {
			if !r.Resolve(t, data, err) {
				return nil
			}
			if done != nil {
				return done(err)
			}
			return nil
		}
	}
}
