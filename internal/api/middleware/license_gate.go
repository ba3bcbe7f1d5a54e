package middleware

import (
	"net/http"

	"hr-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WarningHeader is set on allowed responses when the tenant is over a soft
// limit, so domain controllers can surface it.
const WarningHeader = "X-Quota-Warning"

// RequireModule gates a module-scoped route group: the request's tenant must
// pass the authorization gate for the module before any domain handler runs.
// The tenant id is taken from the authenticated context set by the auth
// middleware. Deny is definitive; callers must not retry automatically.
func RequireModule(gate service.GateServiceInterface, moduleID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantIDValue := c.GetString("tenant_id")
		tenantID, err := uuid.Parse(tenantIDValue)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No tenant context"})
			return
		}

		decision, err := gate.Authorize(tenantID, moduleID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			return
		}

		if !decision.Allowed {
			status := http.StatusForbidden
			if decision.Reason == service.DenyQuotaExceeded {
				status = http.StatusTooManyRequests
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":    decision.Err().Error(),
				"decision": decision,
			})
			return
		}

		if decision.Warning {
			c.Writer.Header().Set(WarningHeader, "soft limit reached")
		}
		c.Set("module_id", moduleID)
		c.Next()
	}
}
