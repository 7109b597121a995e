package userrole

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventlottery/eventlottery-backend/middleware"
)

const roleKey = "role"

// RequireRole resolves the caller's role from its device ID and admits only
// the allowed roles. Lookups that fail resolve to entrant.
func RequireRole(svc Service, allowed ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome := svc.ResolveRole(c.Request.Context(), middleware.GetDeviceID(c))
		c.Set(roleKey, outcome.Role)

		for _, role := range allowed {
			if outcome.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "unauthorized",
			"role":  outcome.Role,
		})
	}
}

// RoleFromContext returns the role set by RequireRole.
func RoleFromContext(c *gin.Context) (Role, bool) {
	v, exists := c.Get(roleKey)
	if !exists {
		return RoleEntrant, false
	}
	role, ok := v.(Role)
	return role, ok
}
