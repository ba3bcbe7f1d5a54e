package repository

import (
	"time"

	"hr-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModuleLicenseRepository handles database operations for module licenses
type ModuleLicenseRepository struct {
	db *gorm.DB
}

// NewModuleLicenseRepository creates a new module license repository
func NewModuleLicenseRepository(db *gorm.DB) *ModuleLicenseRepository {
	return &ModuleLicenseRepository{db: db}
}

// UpsertAll writes every license in one transaction, updating existing
// (tenant_id, module_id) rows in place. A closure grant is all-or-nothing.
func (r *ModuleLicenseRepository) UpsertAll(licenses []*models.ModuleLicense) error {
	if len(licenses) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, license := range licenses {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "tenant_id"}, {Name: "module_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"enabled":    license.Enabled,
					"tier":       license.Tier,
					"expires_at": license.ExpiresAt,
					"updated_at": time.Now(),
				}),
			}).Create(license).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByTenant retrieves all license records for a tenant
func (r *ModuleLicenseRepository) GetByTenant(tenantID uuid.UUID) ([]models.ModuleLicense, error) {
	var licenses []models.ModuleLicense
	err := r.db.Where("tenant_id = ?", tenantID).Order("module_id").Find(&licenses).Error
	if err != nil {
		return nil, err
	}
	return licenses, nil
}

// GetByTenantAndModule retrieves a single license record
func (r *ModuleLicenseRepository) GetByTenantAndModule(tenantID uuid.UUID, moduleID string) (*models.ModuleLicense, error) {
	var license models.ModuleLicense
	err := r.db.First(&license, "tenant_id = ? AND module_id = ?", tenantID, moduleID).Error
	if err != nil {
		return nil, err
	}
	return &license, nil
}

// Disable flips a license to disabled without touching its dependents.
// Dependent modules are denied by the gate at decision time, not by a
// cascading write.
func (r *ModuleLicenseRepository) Disable(tenantID uuid.UUID, moduleID string) error {
	result := r.db.Model(&models.ModuleLicense{}).
		Where("tenant_id = ? AND module_id = ?", tenantID, moduleID).
		Updates(map[string]interface{}{
			"enabled":    false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByTenant removes all license rows for a tenant. Used by
// provisioning rollback.
func (r *ModuleLicenseRepository) DeleteByTenant(tenantID uuid.UUID) error {
	return r.db.Delete(&models.ModuleLicense{}, "tenant_id = ?", tenantID).Error
}
