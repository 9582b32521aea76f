package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El cliente HTTP los envuelve en *api.Error para que errors.Is funcione en las pantallas.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUnauthorized  = errors.New("sesión no autorizada")
	ErrValidation    = errors.New("datos inválidos")
	ErrNetwork       = errors.New("fallo de red o de respuesta")
	ErrServer        = errors.New("el servidor rechazó la operación")
	ErrMissingID     = errors.New("no hay registro seleccionado")
	ErrUnknownView   = errors.New("vista desconocida")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrEmailTaken    = errors.New("el email ya está registrado")
	ErrWrongPassword = errors.New("contraseña actual incorrecta")
)

// DefaultMessage es el texto mostrado cuando el backend no envía mensaje.
const DefaultMessage = "Something went wrong"
