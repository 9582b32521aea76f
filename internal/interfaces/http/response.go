package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/validation"
)

// Mensajes estándar del backend.
const (
	msgInvalidData     = "The given data was invalid."
	msgUnauthenticated = "Unauthenticated."
	msgForbidden       = "This action is unauthorized."
	msgNotFound        = "Resource not found."
	msgInvalidBody     = "Malformed request body."
	msgServerError     = "Server Error"
)

var validate = validation.New()

// envelope cuerpo de todas las respuestas: {success, data?, message?, errors?}.
type envelope struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(envelope{Success: true, Data: data})
}

func created(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(envelope{Success: true, Data: data, Message: message})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Success: false, Message: message})
}

func invalid(c *fiber.Ctx, message string, errs map[string][]string) error {
	if message == "" {
		message = msgInvalidData
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(envelope{Success: false, Message: message, Errors: errs})
}

func fieldError(field, message string) map[string][]string {
	return map[string][]string{field: {message}}
}

// parseAndValidate lee el cuerpo JSON en dst y aplica sus tags validate.
// Si falla ya escribió la respuesta y devuelve false.
func parseAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if err := validate.Struct(dst); err != nil {
		return false, invalid(c, "", validation.Messages(err))
	}
	return true, nil
}

// handleError traduce errores de dominio a la respuesta HTTP.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, msgUnauthenticated)
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, msgForbidden)
	case errors.Is(err, domain.ErrEmailTaken):
		return invalid(c, "", fieldError("email", "The email has already been taken."))
	case errors.Is(err, domain.ErrWrongPassword):
		return invalid(c, "", fieldError("current_password", "The current password is incorrect."))
	case errors.Is(err, domain.ErrInvalidInput):
		return invalid(c, "", nil)
	default:
		return fail(c, fiber.StatusInternalServerError, msgServerError)
	}
}
