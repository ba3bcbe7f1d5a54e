package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant lifecycle operations
type TenantServiceInterface interface {
	Create(req *CreateTenantRequest) (*TenantResponse, error)
	GetByID(id uuid.UUID) (*TenantResponse, error)
	GetAll(page, pageSize int) (*TenantListResponse, error)
	Suspend(id uuid.UUID) (*TenantResponse, error)
	Reactivate(id uuid.UUID) (*TenantResponse, error)
	Archive(id uuid.UUID) (*TenantResponse, error)
	CheckLimits(id uuid.UUID) (*LimitsResponse, error)
	UpdateUsage(id uuid.UUID, req *UpdateUsageRequest) (*UsageResponse, error)
}

// LicenseServiceInterface defines the interface for module license operations
type LicenseServiceInterface interface {
	Grant(tenantID uuid.UUID, moduleID string, req *GrantLicenseRequest) (*LicenseListResponse, error)
	Revoke(tenantID uuid.UUID, moduleID string) error
	List(tenantID uuid.UUID) (*LicenseListResponse, error)
}

// GateServiceInterface is the read-only request-time authorization decision
// function. Denials are expected outcomes carried in the Decision; the error
// return is reserved for unexpected failures (persistence, misconfiguration).
type GateServiceInterface interface {
	Authorize(tenantID uuid.UUID, moduleID string) (*Decision, error)
	InvalidateTenant(tenantID uuid.UUID)
}

// GateInvalidator is the slice of the gate that mutation paths need: every
// lifecycle or license change for a tenant drops its cached decisions.
type GateInvalidator interface {
	InvalidateTenant(tenantID uuid.UUID)
}

// PrincipalCreator creates the initial admin principal for a freshly
// provisioned tenant. Identity management is an external collaborator; this
// is the contract we consume.
type PrincipalCreator interface {
	CreateAdminPrincipal(tenantID uuid.UUID, email, name string) error
}
