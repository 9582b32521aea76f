package listing

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"

	"github.com/videeinfotech/sultan-super-admin-app/pkg/validation"
)

// Filter devuelve los elementos cuyo texto (fields) contiene query sin distinguir
// mayúsculas (case folding Unicode). Query vacía devuelve la lista completa.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.TrimSpace(query)
	if q == "" {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(q)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(fold.String(f), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FieldErrors mensaje por campo, listo para pintar bajo cada input.
type FieldErrors map[string]string

// fieldErrorer lo cumplen los errores del cliente API con errores por campo.
type fieldErrorer interface {
	FieldErrors() map[string]string
}

// FieldErrorsFrom extrae los errores por campo de err: de la validación local
// o de la respuesta 422 del backend. Devuelve nil si err no trae campos.
func FieldErrorsFrom(err error) FieldErrors {
	if err == nil {
		return nil
	}
	if msgs := validation.Messages(err); len(msgs) > 0 {
		out := make(FieldErrors, len(msgs))
		for f, m := range msgs {
			out[f] = m[0]
		}
		return out
	}
	var fe fieldErrorer
	if errors.As(err, &fe) {
		if m := fe.FieldErrors(); len(m) > 0 {
			return FieldErrors(m)
		}
	}
	return nil
}
