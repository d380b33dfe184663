package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

const identityKey = "auth_identity"

// Middleware is the pipeline stage that authenticates every protected
// request from its bearer token. Rejected requests never reach a handler or
// the store; verification itself touches no shared state.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the authentication stage.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewAuthenticationFailed("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewAuthenticationFailed("invalid authorization header")
	}

	identity, err := m.tokens.Verify(parts[1])
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			c.Set("Token-Expired", "true")
			return apperrors.NewTokenExpired()
		}
		return apperrors.NewAuthenticationFailed("invalid token")
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated principal.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
