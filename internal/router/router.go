// Package router assembles the gin engine: middleware chain and routes.
package router

import (
	"net/http"

	"lingo-gate/internal/handler"
	"lingo-gate/internal/i18n"
	"lingo-gate/internal/middleware"
	"lingo-gate/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(middleware.RateLimiter(configManager.GetPerformanceConfig()))
	router.Use(middleware.SecurityHeaders())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler, configManager)

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/", serverHandler.ServiceInfo)
	router.GET("/health", serverHandler.Health)
}

// registerAPIRoutes registers API routes. Everything under /api requires a
// valid credential.
func registerAPIRoutes(
	router *gin.Engine,
	serverHandler *handler.Server,
	configManager types.ConfigManager,
) {
	api := router.Group("/api")
	api.Use(i18n.Middleware())
	api.Use(middleware.Auth(configManager.GetAuthConfig()))

	api.POST("/translate", serverHandler.Translate)
	api.POST("/translate/batch", serverHandler.TranslateBatch)
	api.POST("/chat", serverHandler.Chat)
	api.GET("/languages", serverHandler.ListLanguages)
	api.GET("/models", serverHandler.ListModels)
}
