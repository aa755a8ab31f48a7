package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

// respondError maps domain errors to HTTP status codes with a JSON
// error envelope.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *domerrors.ValidationError
	switch {
	case errors.Is(err, domerrors.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session_expired"})
	case errors.Is(err, domerrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case domerrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &verr), domerrors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domerrors.IsRateLimitExceeded(err):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
	default:
		h.logger.WithError(err).WithField("path", c.Request.URL.Path).
			Error("request handling failed")
		if h.metrics != nil {
			h.metrics.RecordHTTPError("internal", "httpapi")
		}
		// Wrapped pipeline errors carry a message safe to show the
		// user; anything else stays opaque.
		msg := "internal error"
		var werr *domerrors.WrappedError
		if errors.As(err, &werr) {
			msg = werr.UserMessage
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// bindJSON binds the request body, answering 400 on malformed input.
// Returns false when the request has already been answered.
func (h *Handler) bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
