package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"home-maintenance-server/middleware"
	"home-maintenance-server/services"
)

// RegisterDashboardRoutes registers the customer dashboard routes
func RegisterDashboardRoutes(router *gin.RouterGroup, h *Handlers) {
	customer := middleware.Gate(middleware.AccessCustomer)

	router.GET("/my-requests", customer, h.myRequests)
	router.GET("/request/:id", customer, h.getRequest)
	router.POST("/request/:id/cancel", customer, h.cancelRequest)
	router.PUT("/request/:id/reschedule", customer, h.rescheduleRequest)
	router.POST("/request/:id/delete", customer, h.deleteRequest)
	router.POST("/request/:id/review", customer, h.submitReview)

	// Public review pages
	router.GET("/request/:id/review", h.getReview)
	router.GET("/reviews", h.listReviews)
	router.GET("/reviews/stats", h.reviewStats)

	router.GET("/customer-history/:phone", middleware.Gate(middleware.AccessAdmin), h.customerHistory)
}

func (h *Handlers) getRequest(c *gin.Context) {
	request, err := h.Bookings.Get(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *Handlers) cancelRequest(c *gin.Context) {
	if _, err := h.Bookings.Cancel(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service cancelled successfully"})
}

func (h *Handlers) rescheduleRequest(c *gin.Context) {
	var req struct {
		ScheduledDate string `json:"scheduledDate"`
	}
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.Bookings.Reschedule(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"), req.ScheduledDate)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service rescheduled successfully",
		"request": request,
	})
}

func (h *Handlers) deleteRequest(c *gin.Context) {
	if err := h.Bookings.Delete(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}

func (h *Handlers) submitReview(c *gin.Context) {
	var req services.ReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.Reviews.Submit(c.Request.Context(), c.Param("id"), middleware.CurrentIdentity(c).UserID, req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review submitted successfully",
		"review":  review,
	})
}

// getReview answers null when the request has not been reviewed
func (h *Handlers) getReview(c *gin.Context) {
	review, err := h.Reviews.ForRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if review == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handlers) listReviews(c *gin.Context) {
	reviews, err := h.Reviews.ListVerified(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handlers) reviewStats(c *gin.Context) {
	stats, err := h.Reviews.Stats(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) customerHistory(c *gin.Context) {
	history, err := h.Bookings.CustomerHistory(c.Request.Context(), c.Param("phone"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
