package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kyrec/backend/internal/infrastructure/auth"
	"github.com/kyrec/backend/internal/infrastructure/logger"
	"github.com/kyrec/backend/internal/interfaces/http/handler"
	"github.com/kyrec/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every handler the router wires up
type Handlers struct {
	Auth    *handler.AuthHandler
	Record  *handler.RecordHandler
	Export  *handler.ExportHandler
	Company *handler.CompanyHandler
	System  *handler.SystemHandler
}

// Setup builds the gin engine with all middleware and routes registered
func Setup(handlers Handlers, jwtService *auth.JWTService, log *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	engine.GET("/healthz", handlers.System.Healthz)

	api := engine.Group("/api/v1")
	api.POST("/auth/login", handlers.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware(jwtService))
	{
		authed.PUT("/auth/password", handlers.Auth.ChangePassword)

		authed.GET("/records", handlers.Record.List)
		authed.POST("/records", handlers.Record.Create)
		authed.GET("/records/:id", handlers.Record.Get)
		authed.PUT("/records/:id", handlers.Record.Update)
		authed.GET("/records/:id/export", handlers.Export.Export)

		authed.GET("/name-candidates", handlers.Company.ListNameCandidates)
	}

	admin := api.Group("/companies")
	admin.Use(middleware.JWTAuthMiddleware(jwtService), middleware.RequireAdmin())
	{
		admin.GET("", handlers.Company.List)
		admin.PUT("/:id/enabled", handlers.Company.SetEnabled)
		admin.POST("/:id/password-reset", handlers.Company.ResetPassword)
	}

	return engine
}
