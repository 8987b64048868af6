package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"home-maintenance-server/middleware"
	"home-maintenance-server/services"
)

// RegisterAreaRoutes registers the service area routes
func RegisterAreaRoutes(router *gin.RouterGroup, h *Handlers) {
	admin := middleware.Gate(middleware.AccessAdmin)

	router.GET("", h.listActiveAreas)
	router.GET("/all", admin, h.listAllAreas)
	router.GET("/:id", h.getArea)
	router.POST("", admin, h.createArea)
	router.PUT("/:id", admin, h.updateArea)
	router.DELETE("/:id", admin, h.deleteArea)
	router.POST("/bulk/status", admin, h.bulkAreaStatus)
}

func (h *Handlers) listActiveAreas(c *gin.Context) {
	areas, err := h.Areas.ListActive(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

func (h *Handlers) listAllAreas(c *gin.Context) {
	areas, err := h.Areas.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

func (h *Handlers) getArea(c *gin.Context) {
	area, err := h.Areas.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"area": area})
}

func (h *Handlers) createArea(c *gin.Context) {
	var req services.AreaInput
	if !bindJSON(c, &req) {
		return
	}

	area, err := h.Areas.Create(c.Request.Context(), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "area": area})
}

func (h *Handlers) updateArea(c *gin.Context) {
	var req services.AreaInput
	if !bindJSON(c, &req) {
		return
	}

	area, err := h.Areas.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "area": area})
}

func (h *Handlers) deleteArea(c *gin.Context) {
	if err := h.Areas.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Area deleted successfully"})
}

func (h *Handlers) bulkAreaStatus(c *gin.Context) {
	var req struct {
		AreaIDs []string `json:"areaIds"`
		Status  string   `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}

	modified, err := h.Areas.BulkStatus(c.Request.Context(), req.AreaIDs, req.Status)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": modified})
}
