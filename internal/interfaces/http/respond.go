package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/domain"
)

// respondOK envía la envoltura de éxito con estado 200.
func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

// respondError mapea los errores de dominio a códigos HTTP:
// validación 422, no encontrado 404, estado inválido 400, duplicado 409,
// credenciales 401 y cualquier otro 500 con el detalle en un campo aparte.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(domain.ErrNotFound.Error()))
	case errors.Is(err, domain.ErrInvalidState):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(domain.ErrEmailAlreadyExists.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(domain.ErrUnauthorized.Error()))
	default:
		resp := dto.Fail("error interno del servidor")
		resp.Detail = err.Error()
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}

// respondMethodNotAllowed rechaza el verbo HTTP equivocado para una acción.
func respondMethodNotAllowed(c *fiber.Ctx, action string) error {
	return c.Status(fiber.StatusMethodNotAllowed).
		JSON(dto.Fail("método no permitido para la acción " + action))
}

// respondInvalidAction rechaza acciones desconocidas o ausentes.
func respondInvalidAction(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("acción inválida"))
}

// respondBadBody rechaza cuerpos que no decodifican como JSON.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail("cuerpo de la petición inválido"))
}
