package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"hr-platform-backend/internal/config"
	"hr-platform-backend/internal/database"
	"hr-platform-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name           string           `yaml:"name"`
	DisplayName    string           `yaml:"display_name"`
	Domain         string           `yaml:"domain"`
	Status         string           `yaml:"status,omitempty"`
	DeploymentMode string           `yaml:"deployment_mode,omitempty"`
	AdminEmail     string           `yaml:"admin_email"`
	AdminName      string           `yaml:"admin_name,omitempty"`
	Limits         map[string]int64 `yaml:"limits,omitempty"`
	Usage          map[string]int64 `yaml:"usage,omitempty"`
}

type LicenseData struct {
	TenantName string `yaml:"tenant_name"`
	ModuleID   string `yaml:"module_id"`
	Enabled    *bool  `yaml:"enabled,omitempty"`
	Tier       string `yaml:"tier,omitempty"`
	ExpiresAt  string `yaml:"expires_at,omitempty"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type LicensesFile struct {
	Licenses []LicenseData `yaml:"licenses"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	licenses, err := loadLicenses(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load licenses: %w", err)
	}

	// Create tenants first
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Name, err)
		}
		tenantMap[tenantData.Name] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("📋 Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create module licenses
	licenseCreated := 0
	for _, licenseData := range licenses {
		_, created, err := createLicense(db, licenseData, tenantMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create license %s/%s: %v", licenseData.TenantName, licenseData.ModuleID, err)
			continue // Continue with other licenses
		}
		if created {
			licenseCreated++
		}
	}
	log.Printf("📋 Module licenses: %d created, %d total", licenseCreated, len(licenses))

	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTenants = append(allTenants, file.Tenants...)
		}
		return nil
	})

	return allTenants, err
}

func loadLicenses(dataDir string) ([]LicenseData, error) {
	var allLicenses []LicenseData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "licenses") {
			var file LicensesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLicenses = append(allLicenses, file.Licenses...)
		}
		return nil
	})

	return allLicenses, err
}

func createTenant(db *gorm.DB, tenantData TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	if err := db.Where("name = ?", tenantData.Name).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.TenantStatusActive
			if tenantData.Status != "" {
				status = models.TenantStatus(tenantData.Status)
			}

			deploymentMode := models.DeploymentModeHosted
			if tenantData.DeploymentMode != "" {
				deploymentMode = models.DeploymentMode(tenantData.DeploymentMode)
			}

			tenant = models.Tenant{
				Name:           tenantData.Name,
				DisplayName:    tenantData.DisplayName,
				Domain:         tenantData.Domain,
				Status:         status,
				DeploymentMode: deploymentMode,
				AdminEmail:     tenantData.AdminEmail,
				AdminName:      tenantData.AdminName,
				Limits:         toResourceMap(tenantData.Limits),
				Usage:          toResourceMap(tenantData.Usage),
				Version:        1,
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query tenant: %w", err)
		}
	}

	return &tenant, false, nil // created = false (existing)
}

func createLicense(db *gorm.DB, licenseData LicenseData, tenantMap map[string]*models.Tenant) (*models.ModuleLicense, bool, error) {
	tenant := tenantMap[licenseData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for license %s", licenseData.TenantName, licenseData.ModuleID)
	}

	var license models.ModuleLicense
	if err := db.Where("tenant_id = ? AND module_id = ?", tenant.ID, licenseData.ModuleID).First(&license).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			enabled := true
			if licenseData.Enabled != nil {
				enabled = *licenseData.Enabled
			}

			tier := models.LicenseTierStandard
			if licenseData.Tier != "" {
				tier = models.LicenseTier(licenseData.Tier)
			}

			var expiresAt *time.Time
			if licenseData.ExpiresAt != "" {
				parsed, err := time.Parse(time.RFC3339, licenseData.ExpiresAt)
				if err != nil {
					return nil, false, fmt.Errorf("failed to parse expires_at %q: %w", licenseData.ExpiresAt, err)
				}
				expiresAt = &parsed
			}

			license = models.ModuleLicense{
				TenantID:  tenant.ID,
				ModuleID:  licenseData.ModuleID,
				Enabled:   enabled,
				Tier:      tier,
				ExpiresAt: expiresAt,
			}

			if err := db.Create(&license).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create license: %w", err)
			}
			return &license, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query license: %w", err)
		}
	}

	return &license, false, nil // created = false (existing)
}

func toResourceMap(values map[string]int64) models.ResourceMap {
	if len(values) == 0 {
		return models.ResourceMap{}
	}
	out := make(models.ResourceMap, len(values))
	for k, v := range values {
		out[models.ResourceKind(k)] = v
	}
	return out
}
