package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// AdminRequired gates a route group to admin accounts. It relies on the role
// claim set by AuthMiddleware and must be registered after it.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if domain.UserRole(role) != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
