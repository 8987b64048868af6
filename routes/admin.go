package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"home-maintenance-server/middleware"
	"home-maintenance-server/models"
	"home-maintenance-server/services"
	"home-maintenance-server/utils"
	ws "home-maintenance-server/websocket"
)

// RegisterAdminRoutes registers the admin console routes. The group is
// expected to be gated to admins.
func RegisterAdminRoutes(router *gin.RouterGroup, h *Handlers) {
	router.GET("/requests", h.adminListRequests)
	router.GET("/requests/:id", h.adminGetRequest)
	router.PUT("/requests/:id", h.adminUpdateRequest)
	router.GET("/export", h.exportRequests)
	router.GET("/users", h.listUsers)
	router.POST("/users/:id/delete", h.deleteUser)
	router.GET("/ws", h.adminFeed)
}

func (h *Handlers) adminListRequests(c *gin.Context) {
	filter := models.RequestFilter{Status: models.RequestStatus(c.Query("status"))}
	for param, dst := range map[string]**time.Time{
		"startDate": &filter.StartDate,
		"endDate":   &filter.EndDate,
	} {
		value := c.Query(param)
		if value == "" {
			continue
		}
		t, err := utils.ParseDate(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date filter"})
			return
		}
		*dst = &t
	}

	requests, err := h.Bookings.AdminList(c.Request.Context(), filter)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": requests})
}

func (h *Handlers) adminGetRequest(c *gin.Context) {
	request, err := h.Bookings.AdminGet(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": request})
}

func (h *Handlers) adminUpdateRequest(c *gin.Context) {
	var req services.AdminUpdateInput
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.Bookings.AdminUpdate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": request})
}

// exportRequests downloads every request as a CSV file Excel can open
func (h *Handlers) exportRequests(c *gin.Context) {
	rows, err := h.Bookings.Export(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	filename := fmt.Sprintf("service-requests-%d.csv", time.Now().UnixMilli())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(utils.BuildRequestsCSV(rows)))
}

func (h *Handlers) listUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

func (h *Handlers) deleteUser(c *gin.Context) {
	if err := h.Users.Delete(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User and all associated bookings deleted"})
}

// adminFeed upgrades to a websocket that streams booking events
func (h *Handlers) adminFeed(c *gin.Context) {
	ws.ServeAdminFeed(h.Hub, h.Upgrader, c.Writer, c.Request, middleware.CurrentIdentity(c).UserID)
}
