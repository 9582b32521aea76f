package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
)

// Kind clasifica los fallos del backend.
type Kind int

const (
	KindNetwork Kind = iota // transporte caído o cuerpo no parseable
	KindValidation
	KindUnauthorized
	KindNotFound
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return domain.ErrValidation
	case KindUnauthorized:
		return domain.ErrUnauthorized
	case KindNotFound:
		return domain.ErrNotFound
	case KindServer:
		return domain.ErrServer
	default:
		return domain.ErrNetwork
	}
}

// Error es el resultado fallido de una llamada: mensaje del servidor (o el genérico)
// y, en validaciones, el mapa de errores por campo.
type Error struct {
	Kind      Kind
	Status    int
	Message   string
	Fields    map[string][]string
	RequestID string
	Err       error // causa de transporte/parseo, si la hay
}

func (e *Error) Error() string {
	if e.Message == "" {
		return domain.DefaultMessage
	}
	return e.Message
}

// Unwrap expone el sentinel de dominio del Kind y la causa original.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// FieldErrors devuelve el primer mensaje de cada campo, listo para pintar bajo el input.
func (e *Error) FieldErrors() map[string]string {
	if len(e.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Fields))
	for field, msgs := range e.Fields {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	return out
}

// FieldNames campos con error, ordenados.
func (e *Error) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// AsError extrae el *Error de una cadena de errores.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// fromEnvelope construye el error de una respuesta no exitosa.
func fromEnvelope(status int, env dto.Envelope) *Error {
	msg := env.Message
	if msg == "" {
		msg = domain.DefaultMessage
	}
	kind := KindServer
	switch {
	case len(env.Errors) > 0 || status == http.StatusUnprocessableEntity:
		kind = KindValidation
	case status == http.StatusNotFound:
		kind = KindNotFound
	}
	return &Error{Kind: kind, Status: status, Message: msg, Fields: env.Errors}
}
