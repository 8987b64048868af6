package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"home-maintenance-server/middleware"
)

// RegisterRoutes registers all API routes. The session middleware must
// already be installed on router.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Home maintenance server is running",
			"time":    time.Now().UTC(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterAuthRoutes(router.Group("/auth"), h)

	// Booking creation is served under both prefixes
	RegisterServiceRequestRoutes(router.Group("/services"), h)
	RegisterServiceRequestRoutes(router.Group("/api/services"), h)

	api := router.Group("/api")
	{
		RegisterDashboardRoutes(api.Group("/dashboard"), h)
		RegisterCatalogRoutes(api.Group("/catalog"), h)
		RegisterAreaRoutes(api.Group("/areas"), h)
		RegisterContactRoutes(api.Group("/contact"), h)
	}

	RegisterAdminRoutes(router.Group("/admin", middleware.Gate(middleware.AccessAdmin)), h)
}

// bindJSON binds the request body and answers 400 on malformed input
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return false
	}
	return true
}
