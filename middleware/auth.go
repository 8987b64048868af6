package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"home-maintenance-server/types"
)

// Access is the minimum caller level a route requires
type Access int

const (
	AccessPublic Access = iota
	AccessCustomer
	AccessAdmin
)

// SessionResolver turns a session token into the caller's identity
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*types.Identity, error)
}

// TokenFromRequest returns the session token from the cookie or the
// Authorization header. WebSocket upgrades may also pass it as ?token=.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if websocket.IsWebSocketUpgrade(c.Request) {
		return c.Query("token")
	}
	return ""
}

// SessionMiddleware resolves the caller's identity and stores it in the
// request context. Requests without a valid session continue anonymously.
func SessionMiddleware(sessions SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		identity, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if !types.IsKind(err, types.ErrorKindUnauthenticated) {
				log.Error().Err(err).Msg("❌ Session lookup failed")
			}
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(types.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// Authorize decides whether identity may use a route with the given access
// level
func Authorize(identity *types.Identity, access Access) error {
	switch access {
	case AccessPublic:
		return nil
	case AccessCustomer:
		if identity == nil {
			return types.NewUnauthenticatedError("Not logged in")
		}
		return nil
	case AccessAdmin:
		if identity == nil {
			return types.NewUnauthenticatedError("Not logged in")
		}
		if !identity.IsAdmin() {
			return types.NewForbiddenError("Admin access required")
		}
		return nil
	default:
		return types.NewForbiddenError("Access denied")
	}
}

// Gate rejects the request before the handler runs unless Authorize allows it
func Gate(access Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Authorize(types.IdentityFrom(c.Request.Context()), access); err != nil {
			RespondError(c, err)
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity resolved by SessionMiddleware
func CurrentIdentity(c *gin.Context) *types.Identity {
	return types.IdentityFrom(c.Request.Context())
}
