package models

// Tenant represents an isolated customer organization. Lifecycle state and
// usage counters are guarded by the Version column: every mutation goes
// through a conditional update on (id, version).
type Tenant struct {
	BaseModel
	Name           string         `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName    string         `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Domain         string         `json:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Status         TenantStatus   `json:"status" gorm:"not null;size:20;default:'provisioning';index"`
	DeploymentMode DeploymentMode `json:"deployment_mode" gorm:"not null;size:20;default:'hosted'"`

	// Admin contact metadata, opaque to the gate
	AdminEmail string `json:"admin_email" gorm:"not null;size:200" validate:"required,email"`
	AdminName  string `json:"admin_name" gorm:"size:200"`

	Limits ResourceMap `json:"limits" gorm:"type:jsonb;default:'{}'"`
	Usage  ResourceMap `json:"usage" gorm:"type:jsonb;default:'{}'"`

	// Version backs optimistic concurrency on lifecycle and usage updates
	Version int64 `json:"version" gorm:"not null;default:1"`

	// Relationships
	Licenses []ModuleLicense `json:"licenses,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// IsActive reports whether the tenant may pass the authorization gate
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

// LimitFor returns the configured ceiling for a resource kind and whether
// one is set. A missing entry means the resource is unmetered.
func (t *Tenant) LimitFor(kind ResourceKind) (int64, bool) {
	if t.Limits == nil {
		return 0, false
	}
	limit, ok := t.Limits[kind]
	return limit, ok
}

// UsageFor returns the current consumption for a resource kind
func (t *Tenant) UsageFor(kind ResourceKind) int64 {
	if t.Usage == nil {
		return 0
	}
	return t.Usage[kind]
}
