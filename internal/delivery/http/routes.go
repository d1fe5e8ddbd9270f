package http

import (
	"github.com/gin-gonic/gin"

	"github.com/macrotally/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/log", handler.LogItems)

		day := v1.Group("/day")
		{
			day.GET("/:date", handler.GetDay)
			day.DELETE("/:date/items/:id", handler.RemoveItem)
		}
	}

	return router
}
