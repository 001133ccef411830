package middleware

import (
	"net/http"                  // HTTP status codes
	"villa_api/internal/domain" // Role names
	"villa_api/internal/dto"    // Response envelope

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware gates a route on the admin role claim carried by the
// token. Runs after JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role") // Get role from context
		// Check if the role claim exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(http.StatusUnauthorized, "Unauthorized"))
			return
		}
		// Check if the role claim is admin
		if role != domain.RoleAdmin {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error(http.StatusForbidden, "Admin access required"))
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
