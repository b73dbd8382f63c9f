package routes

import (
	"sales-portal-backend/internal/api/handlers"
	"sales-portal-backend/internal/api/middleware"
	"sales-portal-backend/internal/auth"
	"sales-portal-backend/internal/config"
	"sales-portal-backend/internal/logger"
	"sales-portal-backend/internal/repository"
	"sales-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
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
	leadRepo := repository.NewLeadRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)

	// Initialize services
	leadService := service.NewLeadService(leadRepo, validator)
	preferenceService := service.NewPreferenceService(preferenceRepo)
	leadsAPIService := service.NewLeadsAPIService(cfg)

	ledger := service.NewOpportunityLedger(cfg.ConvertConfirmDelay(), cfg.ConvertFailureRate)
	ledger.OnRollback(func(opp service.Opportunity) {
		logger.WithComponent("routes").WithFields(map[string]interface{}{
			"opportunity_id": opp.ID,
			"lead_id":        opp.LeadID,
		}).Warn("Opportunity creation was not confirmed and has been rolled back")
	})
	conversionService := service.NewConversionService(ledger)

	// The session view keeps its own address-bar state for the lifetime of the
	// process, the way a browser session would
	resolver := service.NewParamResolver(service.NewValuesQueryState(nil), preferenceService)
	viewService := service.NewLeadsViewService(resolver, leadsAPIService, cfg.SearchDebounce())

	// Initialize auth services
	authService := auth.NewAuthService(cfg, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	leadHandler := handlers.NewLeadHandler(leadService)
	leadsViewHandler := handlers.NewLeadsViewHandler(viewService, leadsAPIService, preferenceService)
	opportunityHandler := handlers.NewOpportunityHandler(conversionService, ledger)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	router.POST("/api/auth/login", authHandler.Login)

	// Leads data API (json-server-compatible collection surface)
	leads := router.Group("/leads")
	{
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id", leadHandler.PatchLead)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Resolved leads list routes
		v1.GET("/leads", leadsViewHandler.QueryLeads)
		v1.PATCH("/leads/:id", leadsViewHandler.UpdateLead)
		v1.GET("/leads/:id/opportunity", opportunityHandler.HasOpportunityForLead)

		// Session view routes
		view := v1.Group("/view")
		{
			view.GET("", leadsViewHandler.GetView)
			view.POST("/refresh", leadsViewHandler.Refresh)
			view.POST("/page", leadsViewHandler.SetPage)
			view.POST("/search", leadsViewHandler.SetSearch)
			view.POST("/status", leadsViewHandler.SetStatusFilter)
			view.POST("/sort", leadsViewHandler.SetSortBy)
			view.POST("/order", leadsViewHandler.SetSortOrder)
			view.POST("/reset", leadsViewHandler.Reset)
		}

		// Opportunity routes
		opportunities := v1.Group("/opportunities")
		{
			opportunities.GET("", opportunityHandler.ListOpportunities)
			opportunities.POST("/convert", opportunityHandler.ConvertLead)
			opportunities.GET("/:id", opportunityHandler.GetOpportunity)
			opportunities.PATCH("/:id", opportunityHandler.UpdateOpportunity)
		}

		// Preference routes
		preferences := v1.Group("/preferences")
		{
			preferences.GET("", preferenceHandler.GetPreferences)
			preferences.PUT("", preferenceHandler.PutPreferences)
			preferences.DELETE("", preferenceHandler.DeletePreferences)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
