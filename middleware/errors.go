package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"home-maintenance-server/types"
)

// StatusFor maps an error kind to its HTTP status. State conflicts are
// reported as 400 to match what clients already handle.
func StatusFor(kind types.ErrorKind) int {
	switch kind {
	case types.ErrorKindValidation, types.ErrorKindConflict:
		return http.StatusBadRequest
	case types.ErrorKindUnauthenticated:
		return http.StatusUnauthorized
	case types.ErrorKindForbidden:
		return http.StatusForbidden
	case types.ErrorKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as {"error": message} and aborts the chain.
// Internal errors are logged and hidden behind a generic message.
func RespondError(c *gin.Context, err error) {
	kind := types.KindOf(err)
	status := StatusFor(kind)

	message := "Internal server error"
	if kind != types.ErrorKindInternal {
		if appErr, ok := err.(*types.AppError); ok {
			message = appErr.Message
		} else {
			message = err.Error()
		}
	} else {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("❌ Request failed")
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
