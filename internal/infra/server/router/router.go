// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-coach/backend/internal/integration/entrypoint/controller"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	coachController    *controller.CoachController
	settingsController *controller.SettingsController
	adviceController   *controller.AdviceController
	recordController   *controller.RecordController
	authMiddleware     *middleware.AuthMiddleware
	writeLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	coachController *controller.CoachController,
	settingsController *controller.SettingsController,
	adviceController *controller.AdviceController,
	recordController *controller.RecordController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		coachController:    coachController,
		settingsController: settingsController,
		adviceController:   adviceController,
		recordController:   recordController,
		authMiddleware:     authMiddleware,
		writeLimiter:       middleware.NewRateLimiterWithConfig(60, time.Minute),
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
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Coach routes (require authentication)
		if r.coachController != nil && r.authMiddleware != nil {
			coach := v1.Group("/coach")
			coach.Use(r.authMiddleware.Authenticate())
			{
				coach.GET("/low-income-check", r.coachController.LowIncomeCheck)
				coach.GET("/expense-analysis", r.coachController.ExpenseAnalysis)
				coach.GET("/heatmap", r.coachController.Heatmap)
				coach.GET("/daily-breakdown", r.coachController.DailyBreakdown)
				coach.GET("/buffer", r.coachController.EmergencyBuffer)

				if r.settingsController != nil {
					coach.GET("/settings", r.settingsController.Get)
					coach.PUT("/settings", r.settingsController.Update)
				}
			}
		}

		// Advice routes (require authentication)
		if r.adviceController != nil && r.authMiddleware != nil {
			advice := v1.Group("/advice")
			advice.Use(r.authMiddleware.Authenticate())
			{
				advice.GET("", r.adviceController.Feed)
				advice.POST("/:id/read", r.adviceController.MarkRead)
			}
		}

		// Record routes (require authentication)
		if r.recordController != nil && r.authMiddleware != nil {
			records := v1.Group("/records")
			records.Use(r.authMiddleware.Authenticate())
			{
				records.GET("/income", r.recordController.ListIncomes)
				records.POST("/income", r.writeLimiter.Middleware(), r.recordController.CreateIncome)
				records.GET("/cash", r.recordController.ListCash)
				records.POST("/cash", r.writeLimiter.Middleware(), r.recordController.CreateCash)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
