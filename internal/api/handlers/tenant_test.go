package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-platform-backend/internal/api/handlers"
	apperrors "hr-platform-backend/internal/errors"
	"hr-platform-backend/internal/mocks"
	"hr-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TenantHandlerTestSuite defines the test suite for TenantHandler
type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTenantSvc *mocks.MockTenantServiceInterface
	handler       *handlers.TenantHandler
	router        *gin.Engine
}

func (suite *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantSvc = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTenantHandler(suite.mockTenantSvc)

	suite.router = gin.New()
	suite.router.GET("/tenants", suite.handler.ListTenants)
	suite.router.POST("/tenants", suite.handler.CreateTenant)
	suite.router.GET("/tenants/:id", suite.handler.GetTenant)
	suite.router.POST("/tenants/:id/suspend", suite.handler.SuspendTenant)
	suite.router.POST("/tenants/:id/reactivate", suite.handler.ReactivateTenant)
	suite.router.POST("/tenants/:id/archive", suite.handler.ArchiveTenant)
	suite.router.GET("/tenants/:id/limits", suite.handler.GetLimits)
	suite.router.POST("/tenants/:id/usage", suite.handler.UpdateUsage)
}

func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantHandlerTestSuite) postJSON(url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_Success() {
	resp := &service.TenantResponse{
		ID:     uuid.New(),
		Name:   "acme",
		Status: "active",
	}
	suite.mockTenantSvc.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *service.CreateTenantRequest) (*service.TenantResponse, error) {
		assert.Equal(suite.T(), "acme", req.Name)
		assert.Equal(suite.T(), "admin@acme.example.com", req.AdminEmail)
		return resp, nil
	})

	w := suite.postJSON("/tenants", `{
		"name": "acme",
		"display_name": "Acme Corp",
		"domain": "acme.example.com",
		"admin_email": "admin@acme.example.com"
	}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.TenantResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "acme", got.Name)
	assert.Equal(suite.T(), "active", got.Status)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_InvalidBody() {
	w := suite.postJSON("/tenants", `{not json`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_AlreadyExists() {
	suite.mockTenantSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrTenantExists)

	w := suite.postJSON("/tenants", `{"name": "acme"}`)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_ValidationError() {
	suite.mockTenantSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.NewValidationError("deployment_mode", "must be hosted or self_managed"))

	w := suite.postJSON("/tenants", `{"name": "acme", "deployment_mode": "on_prem"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_ProvisioningFailed() {
	suite.mockTenantSvc.EXPECT().Create(gomock.Any()).Return(nil,
		apperrors.NewProvisioningFailedError("acme", errors.New("identity service unavailable")))

	w := suite.postJSON("/tenants", `{"name": "acme"}`)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(suite.T(), body["error"], "provisioning of tenant acme failed")
}

func (suite *TenantHandlerTestSuite) TestGetTenant_Success() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().GetByID(id).Return(&service.TenantResponse{ID: id, Name: "acme", Status: "active"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tenants/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TenantHandlerTestSuite) TestGetTenant_InvalidUUID() {
	req := httptest.NewRequest(http.MethodGet, "/tenants/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TenantHandlerTestSuite) TestGetTenant_NotFound() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrTenantNotFound)

	req := httptest.NewRequest(http.MethodGet, "/tenants/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TenantHandlerTestSuite) TestListTenants_Success() {
	suite.mockTenantSvc.EXPECT().GetAll(2, 10).Return(&service.TenantListResponse{
		Tenants:  []service.TenantResponse{{Name: "acme"}},
		Total:    11,
		Page:     2,
		PageSize: 10,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tenants?page=2&page_size=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TenantListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(11), got.Total)
	assert.Len(suite.T(), got.Tenants, 1)
}

func (suite *TenantHandlerTestSuite) TestSuspendTenant_Success() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Suspend(id).Return(&service.TenantResponse{ID: id, Status: "suspended"}, nil)

	w := suite.postJSON("/tenants/"+id.String()+"/suspend", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TenantResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "suspended", got.Status)
}

func (suite *TenantHandlerTestSuite) TestReactivateTenant_InvalidTransition() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Reactivate(id).Return(nil, apperrors.NewInvalidTransitionError("archived", "active"))

	w := suite.postJSON("/tenants/"+id.String()+"/reactivate", "")

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *TenantHandlerTestSuite) TestArchiveTenant_ConflictAfterRetries() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Archive(id).Return(nil, apperrors.ErrConflict)

	w := suite.postJSON("/tenants/"+id.String()+"/archive", "")

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *TenantHandlerTestSuite) TestArchiveTenant_NotFound() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Archive(id).Return(nil, apperrors.ErrTenantNotFound)

	w := suite.postJSON("/tenants/"+id.String()+"/archive", "")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TenantHandlerTestSuite) TestGetLimits_Success() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().CheckLimits(id).Return(&service.LimitsResponse{
		TenantID: id,
		Resources: []service.ResourceStatus{
			{Resource: "users", Limit: 100, Usage: 95, SoftLimitWarning: true},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tenants/"+id.String()+"/limits", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.LimitsResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.Resources, 1)
	assert.True(suite.T(), got.Resources[0].SoftLimitWarning)
}

func (suite *TenantHandlerTestSuite) TestUpdateUsage_Success() {
	id := uuid.New()
	limit := int64(100)
	suite.mockTenantSvc.EXPECT().UpdateUsage(id, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, req *service.UpdateUsageRequest) (*service.UsageResponse, error) {
			assert.Equal(suite.T(), "users", req.Resource)
			assert.Equal(suite.T(), int64(5), req.Delta)
			return &service.UsageResponse{TenantID: id, Resource: "users", Usage: 55, Limit: &limit}, nil
		})

	w := suite.postJSON("/tenants/"+id.String()+"/usage", `{"resource": "users", "delta": 5}`)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.UsageResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(55), got.Usage)
}

func (suite *TenantHandlerTestSuite) TestUpdateUsage_QuotaExceeded() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().UpdateUsage(id, gomock.Any()).Return(nil, apperrors.NewQuotaExceededError("users", 100))

	w := suite.postJSON("/tenants/"+id.String()+"/usage", `{"resource": "users", "delta": 10}`)

	assert.Equal(suite.T(), http.StatusTooManyRequests, w.Code)
}

func (suite *TenantHandlerTestSuite) TestUpdateUsage_ArchivedTenant() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().UpdateUsage(id, gomock.Any()).Return(nil, apperrors.NewTenantNotActiveError("archived"))

	w := suite.postJSON("/tenants/"+id.String()+"/usage", `{"resource": "users", "delta": 1}`)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *TenantHandlerTestSuite) TestUpdateUsage_InvalidBody() {
	id := uuid.New()

	w := suite.postJSON("/tenants/"+id.String()+"/usage", `{`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}
