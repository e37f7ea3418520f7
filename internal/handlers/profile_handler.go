package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

type ProfileHandler struct {
	BaseHandler
	service services.ProfileService
}

func NewProfileHandler(service services.ProfileService, logger utils.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// SaveProfile overwrites the caller's profile with the submitted onboarding
// answers.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	h.LogRequest(c, "Saving profile")

	identity, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req services.ProfileCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	profile, err := h.service.Save(c.Request.Context(), identity, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"profile": profile,
	})
}

// GetProfile returns the stored profile, or a minimal stub for users who
// have not completed onboarding.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	h.LogRequest(c, "Getting profile")

	identity, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	profile, err := h.service.Get(c.Request.Context(), identity)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
