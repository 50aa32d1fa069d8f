// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/wealth-planner/backend/internal/integration/entrypoint/controller"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	entryController          *controller.EntryController
	recurringEntryController *controller.RecurringEntryController
	goalController           *controller.GoalController
	assetController          *controller.AssetController
	dashboardController      *controller.DashboardController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	entryController *controller.EntryController,
	recurringEntryController *controller.RecurringEntryController,
	goalController *controller.GoalController,
	assetController *controller.AssetController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		entryController:          entryController,
		recurringEntryController: recurringEntryController,
		goalController:           goalController,
		assetController:          assetController,
		dashboardController:      dashboardController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/api/v1/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		// Everything below requires a bearer token
		protected := v1.Group("")
		protected.Use(r.authMiddleware.Authenticate())

		entries := protected.Group("/entries")
		{
			entries.GET("", r.entryController.List)
			entries.POST("", r.entryController.Create)
			entries.PATCH("/:id", r.entryController.Update)
			entries.DELETE("/:id", r.entryController.Delete)
		}

		recurring := protected.Group("/recurring-entries")
		{
			recurring.GET("", r.recurringEntryController.List)
			recurring.POST("", r.recurringEntryController.Create)
			recurring.POST("/:id/cancel", r.recurringEntryController.Cancel)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		assets := protected.Group("/assets")
		{
			assets.GET("", r.assetController.List)
			assets.POST("", r.assetController.Create)
			assets.PATCH("/:id", r.assetController.Update)
			assets.DELETE("/:id", r.assetController.Delete)
		}

		protected.GET("/dashboard", r.dashboardController.GetDashboard)
		protected.GET("/analytics", r.dashboardController.GetAnalytics)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
