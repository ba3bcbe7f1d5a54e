package routes

import (
	"net/http"

	"hr-platform-backend/internal/api/handlers"
	"hr-platform-backend/internal/api/middleware"
	"hr-platform-backend/internal/auth"
	"hr-platform-backend/internal/catalog"
	"hr-platform-backend/internal/config"
	"hr-platform-backend/internal/repository"
	"hr-platform-backend/internal/service"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// principalLogger stands in for the external identity service client.
// TODO: replace with the identity-service client once its API is published.
type principalLogger struct{}

func (principalLogger) CreateAdminPrincipal(tenantID uuid.UUID, email, name string) error {
	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"email":     email,
	}).Info("admin principal requested from identity service")
	return nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, cat *catalog.Catalog) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	licenseRepo := repository.NewModuleLicenseRepository(db)

	// Initialize services. The gate comes first so mutations can invalidate
	// its cache.
	clk := clock.New()
	gateService := service.NewGateService(tenantRepo, licenseRepo, cat, clk, cfg.GateCacheTTL())
	licenseService := service.NewLicenseService(licenseRepo, tenantRepo, cat, gateService, clk)
	tenantService := service.NewTenantService(
		tenantRepo,
		licenseRepo,
		licenseService,
		principalLogger{},
		gateService,
		validator,
		cfg.DefaultModules,
		cfg.ConflictRetryLimit,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	licenseHandler := handlers.NewLicenseHandler(licenseService)
	authorizeHandler := handlers.NewAuthorizeHandler(gateService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Tenant administration routes
		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.POST("/:id/suspend", tenantHandler.SuspendTenant)
			tenants.POST("/:id/reactivate", tenantHandler.ReactivateTenant)
			tenants.POST("/:id/archive", tenantHandler.ArchiveTenant)
			tenants.GET("/:id/limits", tenantHandler.GetLimits)
			tenants.POST("/:id/usage", tenantHandler.UpdateUsage)
			tenants.GET("/:id/licenses", licenseHandler.ListLicenses)
			tenants.POST("/:id/licenses/:module", licenseHandler.GrantLicense)
			tenants.DELETE("/:id/licenses/:module", licenseHandler.RevokeLicense)
			tenants.GET("/:id/authorize/:module", authorizeHandler.Authorize)
		}

		// Module-scoped route groups. Domain controllers mount under these;
		// every request passes the license gate first.
		modules := v1.Group("/modules")
		for _, m := range cat.Modules() {
			moduleGroup := modules.Group(m.RoutePrefix)
			moduleGroup.Use(middleware.RequireModule(gateService, m.ID))
			registerModulePlaceholder(moduleGroup, m)
		}
	}

	return router
}

// registerModulePlaceholder answers with the module context until the
// domain controllers are mounted.
func registerModulePlaceholder(group *gin.RouterGroup, m catalog.ModuleConfig) {
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"module":      m.ID,
			"name":        m.Name,
			"permissions": m.Permissions,
		})
	})
}
