package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/application/transactions"
)

// TransactionHandler despacha las acciones del recurso /api/transactions:
// list y clear_old.
type TransactionHandler struct {
	uc *transactions.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *transactions.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Actions enruta la acción pedida validando primero el verbo HTTP.
func (h *TransactionHandler) Actions(c *fiber.Ctx) error {
	action := actionFrom(c)
	switch action {
	case "list":
		if c.Method() != fiber.MethodGet {
			return respondMethodNotAllowed(c, action)
		}
		return h.list(c)
	case "clear_old":
		if c.Method() != fiber.MethodPost {
			return respondMethodNotAllowed(c, action)
		}
		return h.clearOld(c)
	default:
		return respondInvalidAction(c)
	}
}

func (h *TransactionHandler) list(c *fiber.Ctx) error {
	log, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, log)
}

func (h *TransactionHandler) clearOld(c *fiber.Ctx) error {
	var req dto.ClearOldTransactionsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	result, err := h.uc.ClearOld(c.Context(), req.Days)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, result)
}
