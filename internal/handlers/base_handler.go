package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/utils"
)

// ErrorResponse is the standard error body for every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BaseHandler carries the shared logging and error-mapping behavior every
// resource handler embeds.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Debug(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, msg string, err error, args ...any) {
	utils.FromContext(c, h.logger).Error(msg, append([]any{"error", err}, args...)...)
}

// handleServiceError maps sentinel service errors to HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response body.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPreconditionFailed):
		c.JSON(http.StatusPreconditionFailed, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrProviderNotConfigured):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrProviderFailed):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrNotAvailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage unavailable"})
	default:
		h.LogError(c, "unhandled service error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindJSON parses the request body and answers a 400 itself on failure.
func (h *BaseHandler) bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
