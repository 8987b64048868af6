package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"home-maintenance-server/middleware"
	"home-maintenance-server/services"
)

// RegisterServiceRequestRoutes registers customer booking routes
func RegisterServiceRequestRoutes(router *gin.RouterGroup, h *Handlers) {
	router.Use(middleware.Gate(middleware.AccessCustomer))
	router.POST("/request", h.createRequest)
	router.GET("/my-requests", h.myRequests)
}

func (h *Handlers) createRequest(c *gin.Context) {
	var req services.CreateBookingInput
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.Bookings.Create(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": request})
}

// myRequests lists the caller's bookings, by account first and by phone
// when the account has none
func (h *Handlers) myRequests(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	requests, err := h.Resolver.ResolveRequests(c.Request.Context(), identity.UserID, identity.Phone)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
