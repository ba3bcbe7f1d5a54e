//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"hr-platform-backend/internal/database/models"
	"hr-platform-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ModuleLicenseRepositoryTestSuite tests the ModuleLicenseRepository
type ModuleLicenseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ModuleLicenseRepository
	tenantRepo    *TenantRepository
	factories     *testutils.FactorySet
	tenant        *models.Tenant
}

func (suite *ModuleLicenseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewModuleLicenseRepository(suite.baseTestSuite.DB)
	suite.tenantRepo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ModuleLicenseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ModuleLicenseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenant = suite.factories.Tenant.Create()
	suite.Require().NoError(suite.tenantRepo.Create(suite.tenant))
}

func (suite *ModuleLicenseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ModuleLicenseRepositoryTestSuite) TestUpsertAll_InsertsClosure() {
	licenses := []*models.ModuleLicense{
		suite.factories.ModuleLicense.WithModule(suite.tenant.ID, "hr-core"),
		suite.factories.ModuleLicense.WithModule(suite.tenant.ID, "payroll"),
		suite.factories.ModuleLicense.WithModule(suite.tenant.ID, "reports"),
	}

	err := suite.repo.UpsertAll(licenses)

	suite.NoError(err)

	stored, err := suite.repo.GetByTenant(suite.tenant.ID)
	suite.NoError(err)
	suite.Len(stored, 3)
	suite.Equal("hr-core", stored[0].ModuleID)
	suite.Equal("payroll", stored[1].ModuleID)
	suite.Equal("reports", stored[2].ModuleID)
}

func (suite *ModuleLicenseRepositoryTestSuite) TestUpsertAll_ReenablesExistingRow() {
	disabled := suite.factories.ModuleLicense.Disabled(suite.tenant.ID, "payroll")
	suite.NoError(suite.repo.UpsertAll([]*models.ModuleLicense{disabled}))

	expiry := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	regrant := suite.factories.ModuleLicense.WithExpiry(suite.tenant.ID, "payroll", expiry)
	regrant.Tier = models.LicenseTierEnterprise
	suite.NoError(suite.repo.UpsertAll([]*models.ModuleLicense{regrant}))

	stored, err := suite.repo.GetByTenantAndModule(suite.tenant.ID, "payroll")
	suite.NoError(err)
	suite.True(stored.Enabled)
	suite.Equal(models.LicenseTierEnterprise, stored.Tier)
	suite.NotNil(stored.ExpiresAt)

	// Still a single row for the pair
	all, err := suite.repo.GetByTenant(suite.tenant.ID)
	suite.NoError(err)
	suite.Len(all, 1)
}

func (suite *ModuleLicenseRepositoryTestSuite) TestUpsertAll_Empty() {
	suite.NoError(suite.repo.UpsertAll(nil))
}

func (suite *ModuleLicenseRepositoryTestSuite) TestDisable() {
	license := suite.factories.ModuleLicense.WithModule(suite.tenant.ID, "payroll")
	suite.NoError(suite.repo.UpsertAll([]*models.ModuleLicense{license}))

	err := suite.repo.Disable(suite.tenant.ID, "payroll")

	suite.NoError(err)

	stored, err := suite.repo.GetByTenantAndModule(suite.tenant.ID, "payroll")
	suite.NoError(err)
	suite.False(stored.Enabled)
}

func (suite *ModuleLicenseRepositoryTestSuite) TestDisable_LeavesOtherModules() {
	suite.NoError(suite.repo.UpsertAll([]*models.ModuleLicense{
		suite.factories.ModuleLicense.WithModule(suite.tenant.ID, "hr-core"),
		suite.factories.ModuleLicense.WithModule(suite.tenant.ID, "payroll"),
	}))

	suite.NoError(suite.repo.Disable(suite.tenant.ID, "payroll"))

	core, err := suite.repo.GetByTenantAndModule(suite.tenant.ID, "hr-core")
	suite.NoError(err)
	suite.True(core.Enabled)
}

func (suite *ModuleLicenseRepositoryTestSuite) TestDisable_NoRow() {
	err := suite.repo.Disable(suite.tenant.ID, "payroll")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ModuleLicenseRepositoryTestSuite) TestDeleteByTenant() {
	suite.NoError(suite.repo.UpsertAll([]*models.ModuleLicense{
		suite.factories.ModuleLicense.WithModule(suite.tenant.ID, "hr-core"),
		suite.factories.ModuleLicense.WithModule(suite.tenant.ID, "payroll"),
	}))

	suite.NoError(suite.repo.DeleteByTenant(suite.tenant.ID))

	stored, err := suite.repo.GetByTenant(suite.tenant.ID)
	suite.NoError(err)
	suite.Empty(stored)
}

func TestModuleLicenseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleLicenseRepositoryTestSuite))
}
