package handlers

import (
	"net/http"

	"hr-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthorizeHandler exposes the gate decision as an admin probe endpoint so
// operators and domain services can inspect why a request would be denied.
type AuthorizeHandler struct {
	gate service.GateServiceInterface
}

// NewAuthorizeHandler creates a new authorize handler
func NewAuthorizeHandler(gate service.GateServiceInterface) *AuthorizeHandler {
	return &AuthorizeHandler{gate: gate}
}

// Authorize handles GET /api/v1/tenants/:id/authorize/:module
// @Summary Probe the authorization gate
// @Description Returns the gate decision for a (tenant, module) pair without side effects
// @Tags gate
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param module path string true "Module ID"
// @Success 200 {object} service.Decision "Gate decision"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 500 {object} map[string]interface{} "Unexpected gate failure"
// @Security BearerAuth
// @Router /tenants/{id}/authorize/{module} [get]
func (h *AuthorizeHandler) Authorize(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	decision, err := h.gate.Authorize(id, c.Param("module"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, decision)
}
