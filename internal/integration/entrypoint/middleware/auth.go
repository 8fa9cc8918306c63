// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

const userIDContextKey = "user_id"

// Auth returns a middleware that validates the bearer access token and
// stores the caller's user ID in the request context.
func Auth(tokenService adapter.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "authorization header must be 'Bearer <token>'",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			return
		}

		claims, err := tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			code := domainerror.ErrCodeInvalidToken
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				code = authErr.Code
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "invalid or expired token",
				Code:  string(code),
			})
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user's ID set by Auth.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
