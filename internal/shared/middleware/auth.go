package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kunstkamera-backend/internal/shared/response"
	"kunstkamera-backend/pkg/jwt"
)

const userIDKey = "userID"

// Auth validates the Bearer access token and puts the principal's user ID
// into the gin context. Requests without a valid token get 401.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveUser(c, manager)
		if !ok {
			response.Unauthorized(c, "missing or invalid access token")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the principal when a valid token is present and
// continues anonymously otherwise. "No session" is never an error here;
// downstream handlers see the absence via CurrentUser.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUser(c, manager); ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated principal, or (uuid.Nil, false) for
// an anonymous request.
func CurrentUser(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func resolveUser(c *gin.Context, manager *jwt.Manager) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}

	claims, err := manager.ValidateAccessToken(parts[1])
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}
