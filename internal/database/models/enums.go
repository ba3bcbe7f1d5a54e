package models

// TenantStatus defines the lifecycle state of a tenant
type TenantStatus string

const (
	TenantStatusProvisioning TenantStatus = "provisioning"
	TenantStatusActive       TenantStatus = "active"
	TenantStatusSuspended    TenantStatus = "suspended"
	TenantStatusArchived     TenantStatus = "archived"
)

// IsValid checks if the TenantStatus is valid
func (s TenantStatus) IsValid() bool {
	switch s {
	case TenantStatusProvisioning, TenantStatusActive, TenantStatusSuspended, TenantStatusArchived:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle state machine permits moving
// from s to target. Archived is terminal; provisioning only exits to active.
func (s TenantStatus) CanTransitionTo(target TenantStatus) bool {
	switch s {
	case TenantStatusProvisioning:
		return target == TenantStatusActive
	case TenantStatusActive:
		return target == TenantStatusSuspended || target == TenantStatusArchived
	case TenantStatusSuspended:
		return target == TenantStatusActive || target == TenantStatusArchived
	case TenantStatusArchived:
		return false
	}
	return false
}

// DeploymentMode defines how a tenant's instance is operated
type DeploymentMode string

const (
	DeploymentModeHosted      DeploymentMode = "hosted"
	DeploymentModeSelfManaged DeploymentMode = "self_managed"
)

// IsValid checks if the DeploymentMode is valid
func (m DeploymentMode) IsValid() bool {
	switch m {
	case DeploymentModeHosted, DeploymentModeSelfManaged:
		return true
	}
	return false
}

// LicenseTier defines the commercial tier of a module license
type LicenseTier string

const (
	LicenseTierStandard     LicenseTier = "standard"
	LicenseTierProfessional LicenseTier = "professional"
	LicenseTierEnterprise   LicenseTier = "enterprise"
)

// IsValid checks if the LicenseTier is valid
func (t LicenseTier) IsValid() bool {
	switch t {
	case LicenseTierStandard, LicenseTierProfessional, LicenseTierEnterprise:
		return true
	}
	return false
}

// ResourceKind identifies a metered tenant resource
type ResourceKind string

const (
	ResourceUsers    ResourceKind = "users"
	ResourceStorage  ResourceKind = "storage_mb"
	ResourceAPICalls ResourceKind = "api_calls"
)

// IsValid checks if the ResourceKind is valid
func (r ResourceKind) IsValid() bool {
	switch r {
	case ResourceUsers, ResourceStorage, ResourceAPICalls:
		return true
	}
	return false
}
