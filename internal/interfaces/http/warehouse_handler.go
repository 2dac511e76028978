package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/application/warehouses"
	"github.com/dgarciat/tirestock-api/internal/domain"
)

// WarehouseHandler despacha las acciones del recurso /api/warehouses:
// list (con estadísticas embebidas) e inventory (detalle por bodega).
type WarehouseHandler struct {
	uc *warehouses.UseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *warehouses.UseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Actions enruta la acción pedida validando primero el verbo HTTP.
func (h *WarehouseHandler) Actions(c *fiber.Ctx) error {
	action := actionFrom(c)
	switch action {
	case "list":
		if c.Method() != fiber.MethodGet {
			return respondMethodNotAllowed(c, action)
		}
		return h.list(c)
	case "inventory":
		if c.Method() != fiber.MethodGet {
			return respondMethodNotAllowed(c, action)
		}
		return h.inventory(c)
	default:
		return respondInvalidAction(c)
	}
}

func (h *WarehouseHandler) list(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *WarehouseHandler) inventory(c *fiber.Ctx) error {
	resp, err := h.uc.Inventory(c.Context(), c.Query("warehouse"))
	if err != nil {
		// El parámetro ausente es un 400 de la interfaz, no un 422
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		return respondError(c, err)
	}
	return respondOK(c, resp)
}
