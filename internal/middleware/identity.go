package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

const (
	// UserIDHeader lets clients without a session name themselves.
	UserIDHeader = "User-Id"

	ContextUserID      = "user_id"
	ContextDisplayName = "display_name"

	maxUserIDLength = 64
)

// TokenValidator is an interface for validating session tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.SessionClaims, error)
}

// Identity resolves who is calling. A bearer session token wins, then the
// User-Id header, then the shared anonymous id. A token that is present but
// invalid is rejected so clients notice an expired session.
func Identity(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
				return
			}

			claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextDisplayName, claims.DisplayName)
			c.Next()
			return
		}

		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = models.AnonymousUserID
		}
		if len(userID) > maxUserIDLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "User-Id header too long"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the caller resolved by Identity, or the anonymous id when the
// middleware did not run.
func UserID(c *gin.Context) string {
	if id := c.GetString(ContextUserID); id != "" {
		return id
	}
	return models.AnonymousUserID
}
