package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/feastline/orderd/internal/server/http/handlers"
	"github.com/feastline/orderd/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DeliveryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	healthHandler := handlers.NewHealthHandler()

	engine.GET("/health", healthHandler.Check)

	api := engine.Group("/api")
	api.Use(middleware.CredentialRequired())
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)
	api.GET("/orders/:orderID", orderHandler.Get)
	api.PATCH("/orders/:orderID/status", orderHandler.UpdateStatus)
	api.POST("/profile", profileHandler.Save)
	api.GET("/profile", profileHandler.Get)

	return engine
}
