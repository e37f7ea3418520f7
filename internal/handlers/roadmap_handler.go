package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

type RoadmapHandler struct {
	BaseHandler
	service services.RoadmapService
}

func NewRoadmapHandler(service services.RoadmapService, logger utils.Logger) *RoadmapHandler {
	return &RoadmapHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GenerateRoadmap builds and stores a personalized roadmap from the caller's
// profile, replacing any existing one.
func (h *RoadmapHandler) GenerateRoadmap(c *gin.Context) {
	h.LogRequest(c, "Generating roadmap")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	roadmap, err := h.service.Generate(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roadmap": roadmap})
}

// GetRoadmap returns the stored roadmap, or null when none was generated yet.
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	h.LogRequest(c, "Getting roadmap")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	roadmap, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roadmap": roadmap})
}
