package repository

import (
	"hr-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByName(name string) (*models.Tenant, error)
	GetByDomain(domain string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	// UpdateWithVersion persists the tenant only if its stored version still
	// matches tenant.Version, then bumps the version. A mismatch returns
	// a ConflictError.
	UpdateWithVersion(tenant *models.Tenant) error
	// Delete hard-deletes a tenant row. Only provisioning rollback may use
	// it; normal removal is the archived state.
	Delete(id uuid.UUID) error
}

// ModuleLicenseRepositoryInterface defines the interface for module license repository operations
type ModuleLicenseRepositoryInterface interface {
	// UpsertAll writes all license records in a single transaction so a
	// closure grant is atomic.
	UpsertAll(licenses []*models.ModuleLicense) error
	GetByTenant(tenantID uuid.UUID) ([]models.ModuleLicense, error)
	GetByTenantAndModule(tenantID uuid.UUID, moduleID string) (*models.ModuleLicense, error)
	Disable(tenantID uuid.UUID, moduleID string) error
	DeleteByTenant(tenantID uuid.UUID) error
}
