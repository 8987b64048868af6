package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"home-maintenance-server/middleware"
	"home-maintenance-server/models"
	"home-maintenance-server/services"
)

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup, h *Handlers) {
	router.POST("/send-otp", h.sendOTP)
	router.POST("/verify-otp", h.verifyOTP)
	router.POST("/admin-login", h.adminLogin)
	router.POST("/logout", h.logout)
	router.GET("/logout", h.logout)
	router.GET("/me", middleware.Gate(middleware.AccessCustomer), h.me)
}

// sendOTP acknowledges the request. The OTP itself is delivered by the
// client side provider.
func (h *Handlers) sendOTP(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if !bindJSON(c, &req) {
		return
	}
	log.Info().Str("phone", req.Phone).Msg("📱 OTP requested")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) verifyOTP(c *gin.Context) {
	var req services.VerifyOTPInput
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.Users.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if !h.startSession(c, user) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *Handlers) adminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.Users.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if !h.startSession(c, user) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// logout destroys the session. Browsers following the GET link are sent
// back to the home page.
func (h *Handlers) logout(c *gin.Context) {
	if token := middleware.TokenFromRequest(c, h.Cookie.Name); token != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
			log.Error().Err(err).Msg("❌ Failed to destroy session")
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie.Name, "", -1, "/", "", h.Cookie.Secure, true)

	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "user": middleware.CurrentIdentity(c)})
}

func (h *Handlers) startSession(c *gin.Context, user *models.User) bool {
	token, err := h.Sessions.Issue(c.Request.Context(), services.IdentityFor(user))
	if err != nil {
		middleware.RespondError(c, err)
		return false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie.Name, token, int(h.Sessions.TTL().Seconds()), "/", "", h.Cookie.Secure, true)
	return true
}
