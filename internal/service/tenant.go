package service

import (
	"errors"
	"fmt"

	"hr-platform-backend/internal/database/models"
	apperrors "hr-platform-backend/internal/errors"
	"hr-platform-backend/internal/logger"
	"hr-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"
)

// softLimitNumerator/Denominator: usage at or above 90% of a limit raises
// the soft-limit warning.
const (
	softLimitNumerator   = 9
	softLimitDenominator = 10
)

// TenantService handles tenant provisioning, lifecycle transitions and
// usage tracking
type TenantService struct {
	repo        repository.TenantRepositoryInterface
	licenseRepo repository.ModuleLicenseRepositoryInterface
	licenses    LicenseServiceInterface
	principals  PrincipalCreator
	gate        GateInvalidator
	validator   *validator.Validate
	log         *logger.Logger

	defaultModules []string
	retryLimit     int
}

// NewTenantService creates a new tenant service
func NewTenantService(
	repo repository.TenantRepositoryInterface,
	licenseRepo repository.ModuleLicenseRepositoryInterface,
	licenses LicenseServiceInterface,
	principals PrincipalCreator,
	gate GateInvalidator,
	validator *validator.Validate,
	defaultModules []string,
	retryLimit int,
) *TenantService {
	if retryLimit < 1 {
		retryLimit = 1
	}
	return &TenantService{
		repo:           repo,
		licenseRepo:    licenseRepo,
		licenses:       licenses,
		principals:     principals,
		gate:           gate,
		validator:      validator,
		log:            logger.New(),
		defaultModules: defaultModules,
		retryLimit:     retryLimit,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=100"`
	DisplayName    string           `json:"display_name" validate:"required,max=200"`
	Domain         string           `json:"domain" validate:"required,max=100"`
	DeploymentMode string           `json:"deployment_mode,omitempty"`
	AdminEmail     string           `json:"admin_email" validate:"required,email"`
	AdminName      string           `json:"admin_name,omitempty" validate:"max=200"`
	Limits         map[string]int64 `json:"limits,omitempty"`
	Modules        []string         `json:"modules,omitempty"`
}

// UpdateUsageRequest represents a usage delta for one resource kind
type UpdateUsageRequest struct {
	Resource string `json:"resource" validate:"required"`
	Delta    int64  `json:"delta" validate:"required"`
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	DisplayName    string           `json:"display_name"`
	Domain         string           `json:"domain"`
	Status         string           `json:"status"`
	DeploymentMode string           `json:"deployment_mode"`
	AdminEmail     string           `json:"admin_email"`
	AdminName      string           `json:"admin_name,omitempty"`
	Limits         map[string]int64 `json:"limits"`
	Usage          map[string]int64 `json:"usage"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ResourceStatus describes one metered resource for a tenant
type ResourceStatus struct {
	Resource         string `json:"resource"`
	Limit            int64  `json:"limit"`
	Usage            int64  `json:"usage"`
	SoftLimitWarning bool   `json:"soft_limit_warning"`
	Exhausted        bool   `json:"exhausted"`
}

// LimitsResponse represents the limits/usage view of a tenant
type LimitsResponse struct {
	TenantID  uuid.UUID        `json:"tenant_id"`
	Resources []ResourceStatus `json:"resources"`
}

// UsageResponse is the result of a usage update
type UsageResponse struct {
	TenantID         uuid.UUID `json:"tenant_id"`
	Resource         string    `json:"resource"`
	Usage            int64     `json:"usage"`
	Limit            *int64    `json:"limit,omitempty"`
	SoftLimitWarning bool      `json:"soft_limit_warning"`
}

// Create provisions a new tenant: writes it in the provisioning state,
// grants the default module closure, creates the admin principal, then
// flips the tenant to active. Any failure after the tenant row exists rolls
// everything back; a partial tenant must never become externally visible.
func (s *TenantService) Create(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	mode := models.DeploymentMode(req.DeploymentMode)
	if req.DeploymentMode == "" {
		mode = models.DeploymentModeHosted
	}
	if !mode.IsValid() {
		return nil, apperrors.NewValidationError("deployment_mode", "must be hosted or self_managed")
	}

	limits := models.ResourceMap{}
	for kind, value := range req.Limits {
		rk := models.ResourceKind(kind)
		if !rk.IsValid() {
			return nil, apperrors.NewValidationError("limits", fmt.Sprintf("unknown resource kind: %s", kind))
		}
		if value < 0 {
			return nil, apperrors.NewValidationError("limits", fmt.Sprintf("limit for %s must not be negative", kind))
		}
		limits[rk] = value
	}

	existingByName, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant by name: %w", err)
	}
	if existingByName != nil {
		return nil, apperrors.ErrTenantExists
	}

	existingByDomain, err := s.repo.GetByDomain(req.Domain)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant by domain: %w", err)
	}
	if existingByDomain != nil {
		return nil, apperrors.ErrTenantExists
	}

	tenant := &models.Tenant{
		Name:           req.Name,
		DisplayName:    req.DisplayName,
		Domain:         req.Domain,
		Status:         models.TenantStatusProvisioning,
		DeploymentMode: mode,
		AdminEmail:     req.AdminEmail,
		AdminName:      req.AdminName,
		Limits:         limits,
		Usage:          models.ResourceMap{},
		Version:        1,
	}

	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := s.finishProvisioning(tenant, req.Modules); err != nil {
		return nil, s.rollbackProvisioning(tenant, err)
	}

	s.log.WithField("tenant_id", tenant.ID).Infof("provisioned tenant %s", tenant.Name)
	return s.toResponse(tenant), nil
}

// finishProvisioning runs the steps between the provisioning write and the
// flip to active.
func (s *TenantService) finishProvisioning(tenant *models.Tenant, modules []string) error {
	if len(modules) == 0 {
		modules = s.defaultModules
	}
	for _, moduleID := range modules {
		if _, err := s.licenses.Grant(tenant.ID, moduleID, &GrantLicenseRequest{}); err != nil {
			return fmt.Errorf("default grant of %s: %w", moduleID, err)
		}
	}

	if s.principals != nil {
		if err := s.principals.CreateAdminPrincipal(tenant.ID, tenant.AdminEmail, tenant.AdminName); err != nil {
			return fmt.Errorf("admin principal creation: %w", err)
		}
	}

	tenant.Status = models.TenantStatusActive
	if err := s.repo.UpdateWithVersion(tenant); err != nil {
		return fmt.Errorf("activation: %w", err)
	}
	return nil
}

// rollbackProvisioning removes the partially created tenant and its license
// rows, aggregating cleanup failures with the original cause.
func (s *TenantService) rollbackProvisioning(tenant *models.Tenant, cause error) error {
	result := multierror.Append(nil, cause)
	if err := s.licenseRepo.DeleteByTenant(tenant.ID); err != nil {
		result = multierror.Append(result, fmt.Errorf("license cleanup: %w", err))
	}
	if err := s.repo.Delete(tenant.ID); err != nil {
		result = multierror.Append(result, fmt.Errorf("tenant cleanup: %w", err))
	}
	s.gate.InvalidateTenant(tenant.ID)
	s.log.WithField("tenant_id", tenant.ID).Errorf("provisioning of tenant %s rolled back: %v", tenant.Name, result)
	return apperrors.NewProvisioningFailedError(tenant.Name, result.ErrorOrNil())
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.getTenant(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(tenant), nil
}

// GetAll retrieves all tenants with pagination
func (s *TenantService) GetAll(page, pageSize int) (*TenantListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	tenants, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i, tenant := range tenants {
		responses[i] = *s.toResponse(&tenant)
	}

	return &TenantListResponse{
		Tenants:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Suspend moves an active tenant to suspended. Idempotent when the tenant
// is already suspended; archived tenants are rejected.
func (s *TenantService) Suspend(id uuid.UUID) (*TenantResponse, error) {
	return s.transition(id, models.TenantStatusSuspended, func(status models.TenantStatus) (bool, error) {
		if status == models.TenantStatusSuspended {
			return false, nil // already there
		}
		if !status.CanTransitionTo(models.TenantStatusSuspended) {
			return false, apperrors.NewInvalidTransitionError(string(status), string(models.TenantStatusSuspended))
		}
		return true, nil
	})
}

// Reactivate moves a suspended tenant back to active
func (s *TenantService) Reactivate(id uuid.UUID) (*TenantResponse, error) {
	return s.transition(id, models.TenantStatusActive, func(status models.TenantStatus) (bool, error) {
		if status != models.TenantStatusSuspended {
			return false, apperrors.NewInvalidTransitionError(string(status), string(models.TenantStatusActive))
		}
		return true, nil
	})
}

// Archive retires a tenant permanently. Irreversible; the gate denies every
// module for an archived tenant.
func (s *TenantService) Archive(id uuid.UUID) (*TenantResponse, error) {
	return s.transition(id, models.TenantStatusArchived, func(status models.TenantStatus) (bool, error) {
		if status == models.TenantStatusArchived {
			return false, nil
		}
		if !status.CanTransitionTo(models.TenantStatusArchived) {
			return false, apperrors.NewInvalidTransitionError(string(status), string(models.TenantStatusArchived))
		}
		return true, nil
	})
}

// transition runs one lifecycle change under the optimistic version check,
// retrying a bounded number of times on conflict. check returns whether a
// write is needed; returning (false, nil) makes the operation idempotent.
func (s *TenantService) transition(id uuid.UUID, target models.TenantStatus, check func(models.TenantStatus) (bool, error)) (*TenantResponse, error) {
	var lastErr error
	for attempt := 0; attempt < s.retryLimit; attempt++ {
		tenant, err := s.getTenant(id)
		if err != nil {
			return nil, err
		}

		write, err := check(tenant.Status)
		if err != nil {
			return nil, err
		}
		if !write {
			return s.toResponse(tenant), nil
		}

		tenant.Status = target
		err = s.repo.UpdateWithVersion(tenant)
		if err == nil {
			s.gate.InvalidateTenant(id)
			s.log.WithField("tenant_id", id).Infof("tenant %s -> %s", tenant.Name, target)
			return s.toResponse(tenant), nil
		}
		if !apperrors.IsConflict(err) {
			return nil, fmt.Errorf("failed to update tenant: %w", err)
		}
		lastErr = err
	}
	return nil, lastErr
}

// CheckLimits returns the limits/usage view of a tenant
func (s *TenantService) CheckLimits(id uuid.UUID) (*LimitsResponse, error) {
	tenant, err := s.getTenant(id)
	if err != nil {
		return nil, err
	}

	resp := &LimitsResponse{TenantID: tenant.ID}
	for _, kind := range []models.ResourceKind{models.ResourceUsers, models.ResourceStorage, models.ResourceAPICalls} {
		limit, ok := tenant.LimitFor(kind)
		if !ok {
			continue
		}
		usage := tenant.UsageFor(kind)
		resp.Resources = append(resp.Resources, ResourceStatus{
			Resource:         string(kind),
			Limit:            limit,
			Usage:            usage,
			SoftLimitWarning: overSoftLimit(usage, limit),
			Exhausted:        usage >= limit,
		})
	}
	return resp, nil
}

// UpdateUsage applies a usage delta under the tenant's version check so the
// increment-and-check is atomic: concurrent increments cannot both pass a
// hard limit only one should have passed. A rejected increment persists
// nothing.
func (s *TenantService) UpdateUsage(id uuid.UUID, req *UpdateUsageRequest) (*UsageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	kind := models.ResourceKind(req.Resource)
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("resource", fmt.Sprintf("unknown resource kind: %s", req.Resource))
	}

	var lastErr error
	for attempt := 0; attempt < s.retryLimit; attempt++ {
		tenant, err := s.getTenant(id)
		if err != nil {
			return nil, err
		}
		if tenant.Status == models.TenantStatusArchived {
			return nil, apperrors.NewTenantNotActiveError(string(tenant.Status))
		}

		usage := tenant.Usage.Clone()
		newValue := usage[kind] + req.Delta
		if newValue < 0 {
			newValue = 0
		}

		limit, limited := tenant.LimitFor(kind)
		if limited && req.Delta > 0 && newValue > limit {
			return nil, apperrors.NewQuotaExceededError(string(kind), limit)
		}

		usage[kind] = newValue
		tenant.Usage = usage

		err = s.repo.UpdateWithVersion(tenant)
		if err == nil {
			s.gate.InvalidateTenant(id)
			resp := &UsageResponse{
				TenantID: id,
				Resource: string(kind),
				Usage:    newValue,
			}
			if limited {
				l := limit
				resp.Limit = &l
				resp.SoftLimitWarning = overSoftLimit(newValue, limit)
			}
			return resp, nil
		}
		if !apperrors.IsConflict(err) {
			return nil, fmt.Errorf("failed to update usage: %w", err)
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *TenantService) getTenant(id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	limits := make(map[string]int64, len(tenant.Limits))
	for k, v := range tenant.Limits {
		limits[string(k)] = v
	}
	usage := make(map[string]int64, len(tenant.Usage))
	for k, v := range tenant.Usage {
		usage[string(k)] = v
	}
	return &TenantResponse{
		ID:             tenant.ID,
		Name:           tenant.Name,
		DisplayName:    tenant.DisplayName,
		Domain:         tenant.Domain,
		Status:         string(tenant.Status),
		DeploymentMode: string(tenant.DeploymentMode),
		AdminEmail:     tenant.AdminEmail,
		AdminName:      tenant.AdminName,
		Limits:         limits,
		Usage:          usage,
		CreatedAt:      tenant.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      tenant.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func overSoftLimit(usage, limit int64) bool {
	if limit <= 0 {
		return false
	}
	return usage*softLimitDenominator >= limit*softLimitNumerator
}
