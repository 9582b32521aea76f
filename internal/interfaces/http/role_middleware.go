package http

import (
	"slices"

	"github.com/gofiber/fiber/v2"
)

// RequireRole devuelve un middleware Fiber que exige uno de los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → el token no trae rol.
//   - 403 Forbidden    → el rol no está permitido.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, msgUnauthenticated)
		}
		if !slices.Contains(roles, role) {
			return fail(c, fiber.StatusForbidden, msgForbidden)
		}
		return c.Next()
	}
}
