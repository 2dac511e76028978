package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgarciat/tirestock-api/internal/application/deliveries"
	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/application/transactions"
)

// DeliveryHandler despacha las acciones del recurso /api/deliveries:
// list (pendientes), suppliers, add_pending, confirm, reject y
// transactions (vista del log desde esta pantalla en el cliente original).
type DeliveryHandler struct {
	uc   *deliveries.UseCase
	txns *transactions.UseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *deliveries.UseCase, txns *transactions.UseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, txns: txns}
}

// Actions enruta la acción pedida validando primero el verbo HTTP.
func (h *DeliveryHandler) Actions(c *fiber.Ctx) error {
	action := actionFrom(c)
	switch action {
	case "list":
		if c.Method() != fiber.MethodGet {
			return respondMethodNotAllowed(c, action)
		}
		return h.listPending(c)
	case "suppliers":
		if c.Method() != fiber.MethodGet {
			return respondMethodNotAllowed(c, action)
		}
		return h.suppliers(c)
	case "transactions":
		if c.Method() != fiber.MethodGet {
			return respondMethodNotAllowed(c, action)
		}
		return h.transactions(c)
	case "add_pending":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.addPending(c)
	case "confirm":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.confirm(c)
	case "reject":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.reject(c)
	default:
		return respondInvalidAction(c)
	}
}

func (h *DeliveryHandler) listPending(c *fiber.Ctx) error {
	pending, err := h.uc.ListPending(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, pending)
}

func (h *DeliveryHandler) suppliers(c *fiber.Ctx) error {
	suppliers, err := h.uc.ListSuppliers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, suppliers)
}

func (h *DeliveryHandler) transactions(c *fiber.Ctx) error {
	log, err := h.txns.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, log)
}

func (h *DeliveryHandler) addPending(c *fiber.Ctx) error {
	var req dto.AddPendingDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	d, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, d)
}

func (h *DeliveryHandler) confirm(c *fiber.Ctx) error {
	var req dto.ConfirmDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	item, err := h.uc.Confirm(c.Context(), req.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, item)
}

func (h *DeliveryHandler) reject(c *fiber.Ctx) error {
	var req dto.RejectDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	d, err := h.uc.Reject(c.Context(), req.ID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, d)
}
