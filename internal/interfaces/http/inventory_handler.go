package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/application/inventory"
)

// InventoryHandler despacha las acciones del recurso /api/inventory:
// list, confirm, add, update y delete, seleccionadas por ?action=.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Actions enruta la acción pedida validando primero el verbo HTTP.
func (h *InventoryHandler) Actions(c *fiber.Ctx) error {
	action := actionFrom(c)
	switch action {
	case "list":
		if c.Method() != fiber.MethodGet {
			return respondMethodNotAllowed(c, action)
		}
		return h.list(c)
	case "confirm":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.confirm(c)
	case "add":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.add(c)
	case "update":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.update(c)
	case "delete":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.delete(c)
	default:
		return respondInvalidAction(c)
	}
}

func (h *InventoryHandler) list(c *fiber.Ctx) error {
	views, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, views)
}

func (h *InventoryHandler) confirm(c *fiber.Ctx) error {
	var req dto.ConfirmStockRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	item, err := h.uc.Confirm(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, item)
}

func (h *InventoryHandler) add(c *fiber.Ctx) error {
	var req dto.AddInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	item, err := h.uc.Add(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, item)
}

func (h *InventoryHandler) update(c *fiber.Ctx) error {
	var req dto.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	item, err := h.uc.Update(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, item)
}

func (h *InventoryHandler) delete(c *fiber.Ctx) error {
	var req dto.DeleteInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Delete(c.Context(), req.ID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"id": req.ID, "deleted": true})
}
