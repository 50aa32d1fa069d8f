// Package middleware holds the gin middleware shared by the API routes.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/dto"
)

// claimsKey is the gin context key holding the caller's *adapter.TokenClaims.
const claimsKey = "auth.claims"

const bearerPrefix = "Bearer "

// AuthMiddleware rejects requests without a valid bearer token.
type AuthMiddleware struct {
	tokens adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokens adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the Authorization header and stores the token claims
// on the context for GetUserIDFromContext.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, domainerror.ErrCodeMissingToken, "Authorization header is required")
			return
		}

		raw, found := strings.CutPrefix(header, bearerPrefix)
		if !found {
			abortUnauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid authorization header format")
			return
		}
		if raw = strings.TrimSpace(raw); raw == "" {
			abortUnauthorized(c, domainerror.ErrCodeMissingToken, "Token is required")
			return
		}

		claims, err := m.tokens.ValidateAccessToken(c.Request.Context(), raw)
		switch {
		case errors.Is(err, domainerror.ErrExpiredToken):
			abortUnauthorized(c, domainerror.ErrCodeExpiredToken, "Token has expired")
			return
		case err != nil:
			abortUnauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated caller's ID.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return uuid.Nil, false
	}
	claims, ok := v.(*adapter.TokenClaims)
	if !ok || claims == nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func abortUnauthorized(c *gin.Context, code domainerror.AuthErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}
