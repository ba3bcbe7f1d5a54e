package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "hr-platform-backend/internal/errors"
	"hr-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles HTTP requests for tenant lifecycle management
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant handles POST /api/v1/tenants
// @Summary Provision a new tenant
// @Description Create a tenant with its admin principal and default module licenses
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} service.TenantResponse "Successfully provisioned tenant"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Tenant already exists"
// @Failure 500 {object} map[string]interface{} "Provisioning failed"
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTenantExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsProvisioningFailed(err):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenant", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /api/v1/tenants/:id
// @Summary Get tenant by ID
// @Description Get a specific tenant by its UUID
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantResponse "Successfully retrieved tenant"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	tenant, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tenant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ListTenants handles GET /api/v1/tenants
// @Summary List tenants
// @Description Get all tenants with pagination
// @Tags tenants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TenantListResponse "Successfully retrieved tenants"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tenants, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tenants", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// SuspendTenant handles POST /api/v1/tenants/:id/suspend
// @Summary Suspend a tenant
// @Description Move an active tenant to suspended; idempotent when already suspended
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantResponse "Suspended tenant"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 409 {object} map[string]interface{} "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /tenants/{id}/suspend [post]
func (h *TenantHandler) SuspendTenant(c *gin.Context) {
	h.lifecycle(c, h.service.Suspend)
}

// ReactivateTenant handles POST /api/v1/tenants/:id/reactivate
// @Summary Reactivate a tenant
// @Description Move a suspended tenant back to active
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantResponse "Reactivated tenant"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 409 {object} map[string]interface{} "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /tenants/{id}/reactivate [post]
func (h *TenantHandler) ReactivateTenant(c *gin.Context) {
	h.lifecycle(c, h.service.Reactivate)
}

// ArchiveTenant handles POST /api/v1/tenants/:id/archive
// @Summary Archive a tenant
// @Description Retire a tenant permanently; irreversible
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantResponse "Archived tenant"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 409 {object} map[string]interface{} "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /tenants/{id}/archive [post]
func (h *TenantHandler) ArchiveTenant(c *gin.Context) {
	h.lifecycle(c, h.service.Archive)
}

// lifecycle runs one state transition and maps its error taxonomy to HTTP
func (h *TenantHandler) lifecycle(c *gin.Context, op func(uuid.UUID) (*service.TenantResponse, error)) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	tenant, err := op(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsInvalidTransition(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tenant", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// GetLimits handles GET /api/v1/tenants/:id/limits
// @Summary Get tenant limits and usage
// @Description Returns the limits/usage view with soft-limit warnings
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.LimitsResponse "Limits and usage"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{id}/limits [get]
func (h *TenantHandler) GetLimits(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	limits, err := h.service.CheckLimits(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get limits", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, limits)
}

// UpdateUsage handles POST /api/v1/tenants/:id/usage
// @Summary Record resource usage
// @Description Apply a usage delta; rejected with 429 when it would exceed a hard limit
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param usage body service.UpdateUsageRequest true "Usage delta"
// @Success 200 {object} service.UsageResponse "New usage"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 409 {object} map[string]interface{} "Concurrent update, retry"
// @Failure 429 {object} map[string]interface{} "Quota exceeded"
// @Security BearerAuth
// @Router /tenants/{id}/usage [post]
func (h *TenantHandler) UpdateUsage(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	var req service.UpdateUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	usage, err := h.service.UpdateUsage(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsQuotaExceeded(err):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		case apperrors.IsTenantNotActive(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update usage", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, usage)
}

func parseTenantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}
