package service

import (
	"errors"
	"fmt"
	"time"

	"hr-platform-backend/internal/catalog"
	"hr-platform-backend/internal/database/models"
	apperrors "hr-platform-backend/internal/errors"
	"hr-platform-backend/internal/logger"
	"hr-platform-backend/internal/repository"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LicenseService handles per-tenant module entitlements
type LicenseService struct {
	repo    repository.ModuleLicenseRepositoryInterface
	tenants repository.TenantRepositoryInterface
	catalog *catalog.Catalog
	gate    GateInvalidator
	clock   clock.Clock
	log     *logger.Logger
}

// NewLicenseService creates a new license service
func NewLicenseService(
	repo repository.ModuleLicenseRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	cat *catalog.Catalog,
	gate GateInvalidator,
	clk clock.Clock,
) *LicenseService {
	if clk == nil {
		clk = clock.New()
	}
	return &LicenseService{
		repo:    repo,
		tenants: tenants,
		catalog: cat,
		gate:    gate,
		clock:   clk,
		log:     logger.New(),
	}
}

// GrantLicenseRequest represents the request to grant a module license
type GrantLicenseRequest struct {
	Tier      string     `json:"tier,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// LicenseResponse represents a single module license
type LicenseResponse struct {
	ModuleID  string     `json:"module_id"`
	Enabled   bool       `json:"enabled"`
	Tier      string     `json:"tier"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	UpdatedAt string     `json:"updated_at"`
}

// LicenseListResponse represents all licenses of a tenant
type LicenseListResponse struct {
	TenantID uuid.UUID         `json:"tenant_id"`
	Licenses []LicenseResponse `json:"licenses"`
}

// Grant enables the module and its full dependency closure for the tenant.
// There is no partial grant: all rows are written in one transaction. The
// requested tier and expiry apply to every module in the closure.
func (s *LicenseService) Grant(tenantID uuid.UUID, moduleID string, req *GrantLicenseRequest) (*LicenseListResponse, error) {
	if req == nil {
		req = &GrantLicenseRequest{}
	}

	tier := models.LicenseTier(req.Tier)
	if req.Tier == "" {
		tier = models.LicenseTierStandard
	}
	if !tier.IsValid() {
		return nil, apperrors.NewValidationError("tier", fmt.Sprintf("unknown license tier: %s", req.Tier))
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(s.clock.Now()) {
		return nil, apperrors.NewValidationError("expires_at", "expiry must be in the future")
	}

	if _, err := s.getTenant(tenantID); err != nil {
		return nil, err
	}

	closure, err := s.catalog.Resolve(moduleID)
	if err != nil {
		return nil, err
	}

	licenses := make([]*models.ModuleLicense, 0, len(closure))
	for _, id := range closure {
		licenses = append(licenses, &models.ModuleLicense{
			TenantID:  tenantID,
			ModuleID:  id,
			Enabled:   true,
			Tier:      tier,
			ExpiresAt: req.ExpiresAt,
		})
	}

	if err := s.repo.UpsertAll(licenses); err != nil {
		return nil, fmt.Errorf("failed to grant module %s: %w", moduleID, err)
	}

	s.gate.InvalidateTenant(tenantID)
	s.log.WithField("tenant_id", tenantID).Infof("granted module %s (closure %v)", moduleID, closure)
	return s.List(tenantID)
}

// Revoke disables only the named module's license. Dependents keep their
// rows; the gate denies them live because their dependency closure is no
// longer satisfied.
func (s *LicenseService) Revoke(tenantID uuid.UUID, moduleID string) error {
	if !s.catalog.Has(moduleID) {
		return apperrors.NewUnknownModuleError(moduleID)
	}
	if _, err := s.getTenant(tenantID); err != nil {
		return err
	}

	if err := s.repo.Disable(tenantID, moduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLicenseNotFound
		}
		return fmt.Errorf("failed to revoke module %s: %w", moduleID, err)
	}

	s.gate.InvalidateTenant(tenantID)
	s.log.WithField("tenant_id", tenantID).Infof("revoked module %s", moduleID)
	return nil
}

// List returns all license records for a tenant
func (s *LicenseService) List(tenantID uuid.UUID) (*LicenseListResponse, error) {
	if _, err := s.getTenant(tenantID); err != nil {
		return nil, err
	}

	licenses, err := s.repo.GetByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	resp := &LicenseListResponse{TenantID: tenantID, Licenses: make([]LicenseResponse, len(licenses))}
	for i, l := range licenses {
		resp.Licenses[i] = LicenseResponse{
			ModuleID:  l.ModuleID,
			Enabled:   l.Enabled,
			Tier:      string(l.Tier),
			ExpiresAt: l.ExpiresAt,
			UpdatedAt: l.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return resp, nil
}

func (s *LicenseService) getTenant(id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenants.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}
