package models

import (
	"time"

	"github.com/google/uuid"
)

// ModuleLicense is a per-tenant, per-module entitlement record. Enabled only
// says what was granted for this module; whether the module is actually
// usable is computed by the gate against the dependency closure.
type ModuleLicense struct {
	BaseModel
	TenantID  uuid.UUID   `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_tenant_module"`
	ModuleID  string      `json:"module_id" gorm:"not null;size:50;uniqueIndex:idx_tenant_module"`
	Enabled   bool        `json:"enabled" gorm:"not null;default:false"`
	Tier      LicenseTier `json:"tier" gorm:"not null;size:20;default:'standard'"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
}

// TableName returns the table name for ModuleLicense
func (ModuleLicense) TableName() string {
	return "module_licenses"
}

// ValidAt reports whether the license is enabled and not expired at the
// given instant. Expired licenses are treated as disabled without eager
// deletion.
func (l *ModuleLicense) ValidAt(now time.Time) bool {
	if !l.Enabled {
		return false
	}
	if l.ExpiresAt != nil && !now.Before(*l.ExpiresAt) {
		return false
	}
	return true
}
