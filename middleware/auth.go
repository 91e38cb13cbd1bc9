package middleware

import (
	"net/http"
	"strings"

	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserID    = "user_id"
	ContextUsername  = "username"
	ContextIsManager = "is_manager"
)

// JWTAuth validates the Bearer token, rejects revoked tokens and puts the
// caller identity on the context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")
		if !strings.HasPrefix(bearer, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing bearer token"})
			return
		}

		claims, err := services.ParseToken(strings.TrimPrefix(bearer, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}
		if services.IsRevoked(c.Request.Context(), claims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "token revoked"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token subject"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextIsManager, claims.IsManager)
		c.Next()
	}
}

// ManagerOnly requires a JWTAuth-authenticated manager account.
func ManagerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsManager) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "manager access required"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by JWTAuth.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
