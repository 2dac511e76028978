package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/application/reorders"
)

// ReorderHandler despacha las acciones del recurso /api/reorders:
// list (con filtro opcional por estado), create y update_status.
type ReorderHandler struct {
	uc *reorders.UseCase
}

// NewReorderHandler construye el handler.
func NewReorderHandler(uc *reorders.UseCase) *ReorderHandler {
	return &ReorderHandler{uc: uc}
}

// Actions enruta la acción pedida validando primero el verbo HTTP.
func (h *ReorderHandler) Actions(c *fiber.Ctx) error {
	action := actionFrom(c)
	switch action {
	case "list":
		if c.Method() != fiber.MethodGet {
			return respondMethodNotAllowed(c, action)
		}
		return h.list(c)
	case "create":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.create(c)
	case "update_status":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.updateStatus(c)
	default:
		return respondInvalidAction(c)
	}
}

func (h *ReorderHandler) list(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *ReorderHandler) create(c *fiber.Ctx) error {
	var req dto.CreateReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	r, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, r)
}

func (h *ReorderHandler) updateStatus(c *fiber.Ctx) error {
	var req dto.UpdateReorderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	r, err := h.uc.UpdateStatus(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, r)
}
