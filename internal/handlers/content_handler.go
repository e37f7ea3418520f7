package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

type ContentHandler struct {
	BaseHandler
	service services.ContentService
}

func NewContentHandler(service services.ContentService, logger utils.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GenerateContent returns cached topic content when present, otherwise
// generates it via the content provider and caches the result.
func (h *ContentHandler) GenerateContent(c *gin.Context) {
	h.LogRequest(c, "Generating topic content")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req services.TopicContentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	content, err := h.service.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// GetContent returns stored topic content, or null when none exists.
func (h *ContentHandler) GetContent(c *gin.Context) {
	h.LogRequest(c, "Getting topic content")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	moduleID := c.Param("moduleId")
	topic := c.Param("topic")
	if moduleID == "" || topic == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "moduleId and topic are required"})
		return
	}

	content, err := h.service.Get(c.Request.Context(), userID, moduleID, topic)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}
