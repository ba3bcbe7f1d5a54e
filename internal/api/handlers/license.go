package handlers

import (
	"errors"
	"net/http"

	apperrors "hr-platform-backend/internal/errors"
	"hr-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LicenseHandler handles HTTP requests for module licenses
type LicenseHandler struct {
	service service.LicenseServiceInterface
}

// NewLicenseHandler creates a new license handler
func NewLicenseHandler(service service.LicenseServiceInterface) *LicenseHandler {
	return &LicenseHandler{service: service}
}

// ListLicenses handles GET /api/v1/tenants/:id/licenses
// @Summary List tenant licenses
// @Description Get all module license records for a tenant
// @Tags licenses
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.LicenseListResponse "Licenses"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{id}/licenses [get]
func (h *LicenseHandler) ListLicenses(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	licenses, err := h.service.List(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list licenses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, licenses)
}

// GrantLicense handles POST /api/v1/tenants/:id/licenses/:module
// @Summary Grant a module license
// @Description Enable a module and its full dependency closure for a tenant
// @Tags licenses
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param module path string true "Module ID"
// @Param license body service.GrantLicenseRequest false "Tier and expiry"
// @Success 200 {object} service.LicenseListResponse "Updated licenses"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Tenant or module not found"
// @Security BearerAuth
// @Router /tenants/{id}/licenses/{module} [post]
func (h *LicenseHandler) GrantLicense(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}
	moduleID := c.Param("module")

	var req service.GrantLicenseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	licenses, err := h.service.Grant(id, moduleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsUnknownModule(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant license", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, licenses)
}

// RevokeLicense handles DELETE /api/v1/tenants/:id/licenses/:module
// @Summary Revoke a module license
// @Description Disable one module's license; dependents are denied by the gate, not by cascading writes
// @Tags licenses
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param module path string true "Module ID"
// @Success 204 "License revoked"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant, module or license not found"
// @Security BearerAuth
// @Router /tenants/{id}/licenses/{module} [delete]
func (h *LicenseHandler) RevokeLicense(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}
	moduleID := c.Param("module")

	if err := h.service.Revoke(id, moduleID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsUnknownModule(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke license", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
