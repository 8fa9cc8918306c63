// Package router configures the HTTP routes of the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/config"
	"github.com/money-manager/backend/internal/infra/dependency"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
)

// New builds the gin engine with all routes registered.
func New(cfg *config.Config, injector *dependency.Injector) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.GET("/health", injector.HealthController.Check)

	v1 := engine.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Use(injector.AuthRateLimiter.Middleware())
	{
		authRoutes.POST("/register", injector.AuthController.Register)
		authRoutes.POST("/login", injector.AuthController.Login)
		authRoutes.POST("/refresh", injector.AuthController.Refresh)
		authRoutes.POST("/logout", injector.AuthController.Logout)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(injector.TokenService))
	{
		protected.GET("/transactions", injector.TransactionController.List)
		protected.POST("/transactions", injector.TransactionController.Create)
		protected.PUT("/transactions/:id", injector.TransactionController.Update)
		protected.DELETE("/transactions/:id", injector.TransactionController.Delete)

		protected.GET("/balances", injector.BalanceController.Get)
		protected.GET("/analytics", injector.AnalyticsController.Get)

		protected.GET("/budgets", injector.BudgetController.List)
		protected.POST("/budgets", injector.BudgetController.Create)
		protected.PUT("/budgets/:id", injector.BudgetController.Update)
		protected.DELETE("/budgets/:id", injector.BudgetController.Delete)

		protected.GET("/settings", injector.SettingsController.Get)
		protected.PUT("/settings", injector.SettingsController.Update)
	}

	return engine
}
