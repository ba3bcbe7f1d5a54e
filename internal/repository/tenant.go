package repository

import (
	"time"

	"hr-platform-backend/internal/database/models"
	apperrors "hr-platform-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByName retrieves a tenant by name
func (r *TenantRepository) GetByName(name string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByDomain retrieves a tenant by domain
func (r *TenantRepository) GetByDomain(domain string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "domain = ?", domain).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves all tenants with pagination
func (r *TenantRepository) GetAll(limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at").Limit(limit).Offset(offset).Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// UpdateWithVersion performs a conditional write guarded by the version
// column. Two concurrent administrative operations on the same tenant cannot
// both win; the loser gets a ConflictError.
func (r *TenantRepository) UpdateWithVersion(tenant *models.Tenant) error {
	result := r.db.Model(&models.Tenant{}).
		Where("id = ? AND version = ?", tenant.ID, tenant.Version).
		Updates(map[string]interface{}{
			"display_name":    tenant.DisplayName,
			"status":          tenant.Status,
			"deployment_mode": tenant.DeploymentMode,
			"admin_email":     tenant.AdminEmail,
			"admin_name":      tenant.AdminName,
			"limits":          tenant.Limits,
			"usage":           tenant.Usage,
			"version":         tenant.Version + 1,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrConflict
	}
	tenant.Version++
	return nil
}

// Delete hard-deletes a tenant row. License rows cascade via the FK
// constraint.
func (r *TenantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tenant{}, "id = ?", id).Error
}
