package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/commerce-api/internal/api/dto"
	"github.com/spec-kit/commerce-api/internal/service"
	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

// AuthHandler exposes token issuance.
type AuthHandler struct {
	credentials *service.CredentialService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(credentials *service.CredentialService) *AuthHandler {
	return &AuthHandler{credentials: credentials}
}

// Login handles POST /api/users/login. Failed credential checks answer 401
// with the failure envelope.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	resp, err := h.credentials.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	if !resp.IsSuccess {
		return c.Status(http.StatusUnauthorized).JSON(resp)
	}
	return c.JSON(resp)
}
