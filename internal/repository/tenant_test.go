//go:build integration
// +build integration

package repository

import (
	"testing"

	"hr-platform-backend/internal/database/models"
	apperrors "hr-platform-backend/internal/errors"
	"hr-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
	factories     *testutils.FactorySet
}

func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TenantRepositoryTestSuite) TestCreate() {
	tenant := suite.factories.Tenant.Create()

	err := suite.repo.Create(tenant)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tenant.ID)
	suite.NotZero(tenant.CreatedAt)
}

func (suite *TenantRepositoryTestSuite) TestCreateDuplicateName() {
	tenant1 := suite.factories.Tenant.WithName("acme-dup")
	suite.NoError(suite.repo.Create(tenant1))

	tenant2 := suite.factories.Tenant.WithName("acme-dup")
	tenant2.Domain = "other.example.com"

	err := suite.repo.Create(tenant2)

	suite.Error(err)
}

func (suite *TenantRepositoryTestSuite) TestGetByID() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	found, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.Equal(tenant.Name, found.Name)
	suite.Equal(tenant.Domain, found.Domain)
	suite.Equal(models.TenantStatusActive, found.Status)
}

func (suite *TenantRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TenantRepositoryTestSuite) TestGetByNameAndDomain() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	byName, err := suite.repo.GetByName(tenant.Name)
	suite.NoError(err)
	suite.Equal(tenant.ID, byName.ID)

	byDomain, err := suite.repo.GetByDomain(tenant.Domain)
	suite.NoError(err)
	suite.Equal(tenant.ID, byDomain.ID)
}

func (suite *TenantRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Tenant.Create()))
	}

	tenants, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(tenants, 2)
}

func (suite *TenantRepositoryTestSuite) TestUpdateWithVersion() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	tenant.Status = models.TenantStatusSuspended
	err := suite.repo.UpdateWithVersion(tenant)

	suite.NoError(err)
	suite.Equal(int64(2), tenant.Version)

	found, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal(models.TenantStatusSuspended, found.Status)
	suite.Equal(int64(2), found.Version)
}

func (suite *TenantRepositoryTestSuite) TestUpdateWithVersion_StaleVersionConflicts() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	// Two copies of the same row; the second write carries a stale version
	stale, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)

	tenant.Status = models.TenantStatusSuspended
	suite.NoError(suite.repo.UpdateWithVersion(tenant))

	stale.Status = models.TenantStatusArchived
	err = suite.repo.UpdateWithVersion(stale)

	suite.Error(err)
	suite.True(apperrors.IsConflict(err))

	found, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal(models.TenantStatusSuspended, found.Status)
}

func (suite *TenantRepositoryTestSuite) TestUpdateWithVersion_PersistsUsage() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	tenant.Usage = models.ResourceMap{models.ResourceUsers: 42}
	suite.NoError(suite.repo.UpdateWithVersion(tenant))

	found, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal(int64(42), found.Usage[models.ResourceUsers])
}

func (suite *TenantRepositoryTestSuite) TestDelete() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	suite.NoError(suite.repo.Delete(tenant.ID))

	_, err := suite.repo.GetByID(tenant.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
