package testutils

import (
	"time"

	"hr-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories for convenient test access
type FactorySet struct {
	Tenant        *TenantFactory
	ModuleLicense *ModuleLicenseFactory
}

// NewFactorySet creates a FactorySet with all available factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:        NewTenantFactory(),
		ModuleLicense: NewModuleLicenseFactory(),
	}
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	// Unique name and domain per tenant to avoid index collisions
	slug := "acme-" + id.String()[:8]

	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           slug,
		DisplayName:    "Acme Corp",
		Domain:         slug + ".example.com",
		Status:         models.TenantStatusActive,
		DeploymentMode: models.DeploymentModeHosted,
		AdminEmail:     "admin@" + slug + ".example.com",
		AdminName:      "Ada Admin",
		Limits: models.ResourceMap{
			models.ResourceUsers:     100,
			models.ResourceStorage:  10240,
			models.ResourceAPICalls:  100000,
		},
		Usage:   models.ResourceMap{},
		Version: 1,
	}
}

// WithName sets a custom name (and derived domain) for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	tenant.Domain = name + ".example.com"
	return tenant
}

// WithStatus sets a custom lifecycle status for the tenant
func (f *TenantFactory) WithStatus(status models.TenantStatus) *models.Tenant {
	tenant := f.Create()
	tenant.Status = status
	return tenant
}

// WithLimits sets custom resource limits for the tenant
func (f *TenantFactory) WithLimits(limits models.ResourceMap) *models.Tenant {
	tenant := f.Create()
	tenant.Limits = limits
	return tenant
}

// WithUsage sets current resource usage for the tenant
func (f *TenantFactory) WithUsage(usage models.ResourceMap) *models.Tenant {
	tenant := f.Create()
	tenant.Usage = usage
	return tenant
}

// ModuleLicenseFactory provides methods to create test ModuleLicense data
type ModuleLicenseFactory struct{}

// NewModuleLicenseFactory creates a new ModuleLicenseFactory
func NewModuleLicenseFactory() *ModuleLicenseFactory {
	return &ModuleLicenseFactory{}
}

// Create creates a test ModuleLicense with default values
func (f *ModuleLicenseFactory) Create() *models.ModuleLicense {
	return &models.ModuleLicense{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:  uuid.New(),
		ModuleID:  "hr-core",
		Enabled:   true,
		Tier:      models.LicenseTierStandard,
		ExpiresAt: nil,
	}
}

// WithTenant sets the tenant ID for the license
func (f *ModuleLicenseFactory) WithTenant(tenantID uuid.UUID) *models.ModuleLicense {
	license := f.Create()
	license.TenantID = tenantID
	return license
}

// WithModule sets the module ID for the license
func (f *ModuleLicenseFactory) WithModule(tenantID uuid.UUID, moduleID string) *models.ModuleLicense {
	license := f.Create()
	license.TenantID = tenantID
	license.ModuleID = moduleID
	return license
}

// WithExpiry sets an expiry timestamp for the license
func (f *ModuleLicenseFactory) WithExpiry(tenantID uuid.UUID, moduleID string, expiresAt time.Time) *models.ModuleLicense {
	license := f.WithModule(tenantID, moduleID)
	license.ExpiresAt = &expiresAt
	return license
}

// Disabled creates a revoked license row
func (f *ModuleLicenseFactory) Disabled(tenantID uuid.UUID, moduleID string) *models.ModuleLicense {
	license := f.WithModule(tenantID, moduleID)
	license.Enabled = false
	return license
}
