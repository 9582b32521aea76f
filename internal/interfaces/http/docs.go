package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// MountDocs sirve Swagger UI en /docs con el swagger.json generado por swag.
// Devuelve false sin montar nada si file está vacío o no existe.
func MountDocs(app *fiber.App, file string) bool {
	if file == "" {
		return false
	}
	if _, err := os.Stat(file); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: file,
		Path:     "docs",
		Title:    "Sultan Super Admin API",
	}))
	return true
}
