package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusflow/campus-assistant-go/internal/ctxutil"
	"github.com/campusflow/campus-assistant-go/internal/logger"
)

// Header names used by the API.
const (
	HeaderRequestID    = "X-Request-ID"
	HeaderSessionToken = "X-Session-Token"
	HeaderAdminToken   = "X-Admin-Token"
)

// RequestID assigns each request a uuid, honoring one supplied by the
// caller, and carries it in the request context and response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(ctxutil.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// SecurityHeaders adds standard security headers to all responses.
// Reference: https://gin-gonic.com/en/docs/examples/security-headers
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	}
}

// RequestLogger logs HTTP requests with method, path, status, and
// duration.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		entry := log.WithField("method", method).
			WithField("path", path).
			WithField("status", status).
			WithField("duration_ms", duration.Milliseconds()).
			WithField("ip", c.ClientIP())
		if id, ok := ctxutil.GetRequestID(c.Request.Context()); ok {
			entry = entry.WithRequestID(id)
		}

		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("Request completed with errors")
		} else {
			switch {
			case status >= 500:
				entry.Error("Request failed")
			case status >= 400:
				entry.Warn("Request completed with client error")
			default:
				entry.Debug("Request completed")
			}
		}
	}
}

// globalRateLimit applies the server-wide token bucket to API routes.
// Per-session fairness is handled separately inside the processor.
func (h *Handler) globalRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.limiter != nil && !h.limiter.Allow() {
			if h.metrics != nil {
				h.metrics.RecordRateLimiterDrop("global")
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// sessionAuth validates the chatbot session token on widget routes.
func (h *Handler) sessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderSessionToken)
		if err := h.auth.ValidateSession(c.Request.Context(), token); err != nil {
			h.recordAuthFailure(c, "chat_session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session_expired"})
			return
		}
		c.Next()
	}
}

// adminAuth validates the admin session token on admin routes.
func (h *Handler) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderAdminToken)
		if !h.sessions.Valid(token) {
			h.recordAuthFailure(c, "admin_session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (h *Handler) recordAuthFailure(c *gin.Context, kind string) {
	if h.metrics != nil {
		h.metrics.RecordHTTPError("unauthorized", kind)
	}
	h.logger.WithField("path", c.Request.URL.Path).
		WithField("ip", c.ClientIP()).
		Debug("rejected " + kind + " token")
}
