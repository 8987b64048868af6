package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"home-maintenance-server/middleware"
	"home-maintenance-server/services"
)

// RegisterCatalogRoutes registers the bookable services catalog
func RegisterCatalogRoutes(router *gin.RouterGroup, h *Handlers) {
	admin := middleware.Gate(middleware.AccessAdmin)

	router.GET("", h.listActiveServices)
	router.GET("/all", admin, h.listAllServices)
	router.GET("/:id", h.getService)
	router.POST("", admin, h.createService)
	router.PUT("/:id", admin, h.updateService)
	router.DELETE("/:id", admin, h.deleteService)
	router.POST("/bulk/status", admin, h.bulkServiceStatus)
}

func (h *Handlers) listActiveServices(c *gin.Context) {
	list, err := h.Catalog.ListActive(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "services": list})
}

func (h *Handlers) listAllServices(c *gin.Context) {
	list, err := h.Catalog.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "services": list})
}

func (h *Handlers) getService(c *gin.Context) {
	service, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

func (h *Handlers) createService(c *gin.Context) {
	var req services.ServiceInput
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.Catalog.Create(c.Request.Context(), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "service": service})
}

func (h *Handlers) updateService(c *gin.Context) {
	var req services.ServiceInput
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.Catalog.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

func (h *Handlers) deleteService(c *gin.Context) {
	if err := h.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted successfully"})
}

func (h *Handlers) bulkServiceStatus(c *gin.Context) {
	var req struct {
		ServiceIDs []string `json:"serviceIds"`
		Status     string   `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.Catalog.BulkStatus(c.Request.Context(), req.ServiceIDs, req.Status)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}
