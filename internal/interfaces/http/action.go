package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// actionFrom extrae y normaliza el parámetro ?action= de la petición.
func actionFrom(c *fiber.Ctx) string {
	return strings.ToLower(strings.TrimSpace(c.Query("action")))
}
