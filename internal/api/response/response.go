package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response represents standard API response
type Response struct {
	Code      int       `json:"code"`            // HTTP status code
	Message   string    `json:"message"`         // Response message
	Data      any       `json:"data,omitempty"`  // Response data
	Error     string    `json:"error,omitempty"` // Error message if any
	RequestID string    `json:"request_id"`      // Request ID for tracking
	Timestamp time.Time `json:"timestamp"`
}

// Handler provides methods for standard API responses
type Handler struct {
	ctx    *gin.Context
	logger *zap.Logger
}

// New creates new response handler
func New(c *gin.Context, logger *zap.Logger) *Handler {
	return &Handler{
		ctx:    c,
		logger: logger,
	}
}

// Success sends success response
func (h *Handler) Success(data any) {
	h.ctx.JSON(http.StatusOK, Response{
		Code:      http.StatusOK,
		Message:   "success",
		Data:      data,
		RequestID: h.ctx.GetString("request_id"),
		Timestamp: time.Now(),
	})
}

// Error sends an error response
func (h *Handler) Error(status int, err error) {
	h.ErrorWithData(status, err, nil)
}

// ErrorWithData sends an error response that still carries a payload
func (h *Handler) ErrorWithData(status int, err error, data any) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.Int("status", status),
			zap.Error(err),
			zap.String("request_id", h.ctx.GetString("request_id")))
	}

	h.ctx.JSON(status, Response{
		Code:      status,
		Message:   "error",
		Data:      data,
		Error:     err.Error(),
		RequestID: h.ctx.GetString("request_id"),
		Timestamp: time.Now(),
	})
}

// ServiceUnavailable sends service unavailable error response
func (h *Handler) ServiceUnavailable(err error) {
	h.Error(http.StatusServiceUnavailable, err)
}

// BadGateway sends bad gateway error response, used when the cluster answers with an error
func (h *Handler) BadGateway(err error) {
	h.Error(http.StatusBadGateway, err)
}
