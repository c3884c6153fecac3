package middleware

import (
	"strings"

	"precario/internal/delivery/http/response"
	"precario/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the administrative routes with JWT access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the authenticated
// user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "nao_autenticado", "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "nao_autenticado", "invalid token format, must be a bearer token")
		}

		userID, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "nao_autenticado", "invalid or expired token")
		}

		c.Set("userID", userID)

		return next(c)
	}
}
