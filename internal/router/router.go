package router

import (
	"time"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/config"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/handler"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and mounts the API.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/auth/me", authHandler.Me)

	categoryHandler := handler.NewCategoryHandler(db)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.PUT("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	transactionHandler := handler.NewTransactionHandler(db, cfg.App.FetchLimit)
	protected.GET("/transactions", transactionHandler.List)
	protected.POST("/transactions", transactionHandler.Create)
	protected.PUT("/transactions/:id", transactionHandler.Update)
	protected.DELETE("/transactions/:id", transactionHandler.Delete)

	recurringHandler := handler.NewRecurringHandler(db)
	protected.GET("/recurring-transactions", recurringHandler.List)
	protected.POST("/recurring-transactions", recurringHandler.Create)
	protected.PUT("/recurring-transactions/:id", recurringHandler.Update)
	protected.DELETE("/recurring-transactions/:id", recurringHandler.Delete)
	protected.POST("/recurring-transactions/:id/toggle", recurringHandler.Toggle)
	protected.POST("/recurring-transactions/generate", recurringHandler.Generate)

	budgetHandler := handler.NewBudgetHandler(db)
	protected.GET("/budgets", budgetHandler.List)
	protected.POST("/budgets", budgetHandler.Upsert)

	analyticsHandler := handler.NewAnalyticsHandler(db, cfg.App.FetchLimit)
	protected.GET("/analytics/monthly", analyticsHandler.Monthly)
	protected.GET("/analytics/yearly", analyticsHandler.Yearly)
	protected.GET("/analytics/category-breakdown", analyticsHandler.CategoryBreakdown)
	protected.GET("/analytics/trend", analyticsHandler.Trend)
	protected.GET("/analytics/fiscal-year", analyticsHandler.FiscalYear)
	protected.GET("/analytics/burn-rate", analyticsHandler.BurnRate)

	importExportHandler := handler.NewImportExportHandler(db, cfg.App.FetchLimit)
	protected.POST("/import/csv", importExportHandler.ImportCSV)
	protected.GET("/export/csv", importExportHandler.ExportCSV)
	protected.GET("/export/xlsx", importExportHandler.ExportXLSX)

	settingsHandler := handler.NewSettingsHandler(db)
	protected.GET("/settings", settingsHandler.Get)
	protected.PUT("/settings", settingsHandler.Update)

	auditHandler := handler.NewAuditHandler(db)
	protected.GET("/audit-logs", auditHandler.List)

	return r
}
