package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

type GamificationHandler struct {
	BaseHandler
	service services.GamificationService
}

func NewGamificationHandler(service services.GamificationService, logger utils.Logger) *GamificationHandler {
	return &GamificationHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetAchievements returns the caller's gamification state, defaulting to an
// empty record for new users.
func (h *GamificationHandler) GetAchievements(c *gin.Context) {
	h.LogRequest(c, "Getting achievements")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	achievements, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// UnlockAchievement awards an achievement and its XP. Re-submitting an
// already-unlocked id returns the unchanged state.
func (h *GamificationHandler) UnlockAchievement(c *gin.Context) {
	h.LogRequest(c, "Unlocking achievement")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req services.AchievementUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	achievements, err := h.service.Unlock(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"achievements": achievements,
	})
}
