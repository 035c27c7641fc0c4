package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"esconnector/internal/api/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Middleware represents middleware manager
type Middleware struct {
	logger *zap.Logger
}

// New creates a new middleware manager
func New(logger *zap.Logger) *Middleware {
	return &Middleware{
		logger: logger,
	}
}

// RequestID adds request ID to context
func (m *Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs request details
func (m *Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		m.logger.Info("request completed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// Recovery recovers from panics
func (m *Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				buf := make([]byte, 2048)
				n := runtime.Stack(buf, false)

				m.logger.Error("panic recovered",
					zap.String("error", fmt.Sprintf("%v", err)),
					zap.String("stack", string(buf[:n])))

				response.New(c, m.logger).Error(http.StatusInternalServerError,
					errors.New("internal server error"))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NoCache adds no-cache headers
func (m *Middleware) NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
