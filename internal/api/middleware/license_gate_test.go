package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-platform-backend/internal/api/middleware"
	"hr-platform-backend/internal/mocks"
	"hr-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LicenseGateMiddlewareTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockGate *mocks.MockGateServiceInterface
	tenantID uuid.UUID
	router   *gin.Engine
}

func (suite *LicenseGateMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGate = mocks.NewMockGateServiceInterface(suite.ctrl)
	suite.tenantID = uuid.New()

	suite.router = gin.New()
	// Stand-in for the auth middleware that normally sets the tenant context
	suite.router.Use(func(c *gin.Context) {
		if c.GetHeader("X-Test-Tenant") != "" {
			c.Set("tenant_id", c.GetHeader("X-Test-Tenant"))
		}
	})
	group := suite.router.Group("/payroll")
	group.Use(middleware.RequireModule(suite.mockGate, "payroll"))
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"module": c.GetString("module_id")})
	})
}

func (suite *LicenseGateMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LicenseGateMiddlewareTestSuite) request() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/payroll", nil)
	req.Header.Set("X-Test-Tenant", suite.tenantID.String())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LicenseGateMiddlewareTestSuite) TestAllowed_ReachesHandler() {
	suite.mockGate.EXPECT().Authorize(suite.tenantID, "payroll").Return(&service.Decision{Allowed: true, ModuleID: "payroll"}, nil)

	w := suite.request()

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "payroll")
	assert.Empty(suite.T(), w.Header().Get(middleware.WarningHeader))
}

func (suite *LicenseGateMiddlewareTestSuite) TestAllowedWithWarning_SetsHeader() {
	suite.mockGate.EXPECT().Authorize(suite.tenantID, "payroll").Return(&service.Decision{Allowed: true, ModuleID: "payroll", Warning: true}, nil)

	w := suite.request()

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "soft limit reached", w.Header().Get(middleware.WarningHeader))
}

func (suite *LicenseGateMiddlewareTestSuite) TestDenied_LicenseMissing_Forbidden() {
	suite.mockGate.EXPECT().Authorize(suite.tenantID, "payroll").Return(&service.Decision{
		Allowed:      false,
		ModuleID:     "payroll",
		Reason:       service.DenyLicenseMissing,
		FailedModule: "hr-core",
	}, nil)

	w := suite.request()

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "hr-core")
}

func (suite *LicenseGateMiddlewareTestSuite) TestDenied_QuotaExceeded_TooManyRequests() {
	suite.mockGate.EXPECT().Authorize(suite.tenantID, "payroll").Return(&service.Decision{
		Allowed:  false,
		ModuleID: "payroll",
		Reason:   service.DenyQuotaExceeded,
		Resource: "api_calls",
	}, nil)

	w := suite.request()

	assert.Equal(suite.T(), http.StatusTooManyRequests, w.Code)
}

func (suite *LicenseGateMiddlewareTestSuite) TestNoTenantContext_Forbidden() {
	req := httptest.NewRequest(http.MethodGet, "/payroll", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func TestLicenseGateMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(LicenseGateMiddlewareTestSuite))
}
