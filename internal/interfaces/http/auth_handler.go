package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgarciat/tirestock-api/internal/application/auth"
	"github.com/dgarciat/tirestock-api/internal/application/dto"
)

// AuthHandler expone registro y login (rutas clásicas, sin ?action=).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register da de alta un usuario.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	user, err := h.uc.Register(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}

// Login valida credenciales y devuelve el JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, resp)
}
