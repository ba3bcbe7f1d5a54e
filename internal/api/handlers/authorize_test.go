package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-platform-backend/internal/api/handlers"
	"hr-platform-backend/internal/mocks"
	"hr-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthorizeHandlerTestSuite defines the test suite for AuthorizeHandler
type AuthorizeHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockGate *mocks.MockGateServiceInterface
	handler  *handlers.AuthorizeHandler
	router   *gin.Engine
}

func (suite *AuthorizeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGate = mocks.NewMockGateServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAuthorizeHandler(suite.mockGate)

	suite.router = gin.New()
	suite.router.GET("/tenants/:id/authorize/:module", suite.handler.Authorize)
}

func (suite *AuthorizeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthorizeHandlerTestSuite) TestAuthorize_Allowed() {
	id := uuid.New()
	suite.mockGate.EXPECT().Authorize(id, "payroll").Return(&service.Decision{Allowed: true, ModuleID: "payroll"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tenants/"+id.String()+"/authorize/payroll", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.Decision
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Allowed)
}

func (suite *AuthorizeHandlerTestSuite) TestAuthorize_DeniedIsStill200() {
	// The probe reports the decision; only the gate middleware turns
	// denials into failing statuses.
	id := uuid.New()
	suite.mockGate.EXPECT().Authorize(id, "reports").Return(&service.Decision{
		Allowed:      false,
		ModuleID:     "reports",
		Reason:       service.DenyLicenseMissing,
		FailedModule: "payroll",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tenants/"+id.String()+"/authorize/reports", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.Decision
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.Allowed)
	assert.Equal(suite.T(), service.DenyLicenseMissing, got.Reason)
	assert.Equal(suite.T(), "payroll", got.FailedModule)
}

func (suite *AuthorizeHandlerTestSuite) TestAuthorize_GateFailure() {
	id := uuid.New()
	suite.mockGate.EXPECT().Authorize(id, "payroll").Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/tenants/"+id.String()+"/authorize/payroll", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func (suite *AuthorizeHandlerTestSuite) TestAuthorize_InvalidTenantID() {
	req := httptest.NewRequest(http.MethodGet, "/tenants/abc/authorize/payroll", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAuthorizeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizeHandlerTestSuite))
}
