package routes

import (
	"net/http"

	"rabt_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Profile.RegisterRoutes(api)
		appHandlers.Project.RegisterRoutes(api)
		appHandlers.Interview.RegisterRoutes(api)
		appHandlers.Notification.RegisterRoutes(api)
		appHandlers.Admin.RegisterRoutes(api)
	}
}
