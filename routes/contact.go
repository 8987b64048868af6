package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"home-maintenance-server/middleware"
	"home-maintenance-server/services"
)

func RegisterContactRoutes(router *gin.RouterGroup, h *Handlers) {
	router.GET("", h.getContact)
	router.POST("/update", middleware.Gate(middleware.AccessAdmin), h.updateContact)
}

func (h *Handlers) getContact(c *gin.Context) {
	contact, err := h.Contact.Get(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *Handlers) updateContact(c *gin.Context) {
	var req services.ContactInput
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.Contact.Update(c.Request.Context(), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contact": contact})
}
