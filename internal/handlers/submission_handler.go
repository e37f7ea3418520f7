package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

type SubmissionHandler struct {
	BaseHandler
	service services.SubmissionService
}

func NewSubmissionHandler(service services.SubmissionService, logger utils.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// SubmitAssessment records one assessment run. Every submission is kept.
func (h *SubmissionHandler) SubmitAssessment(c *gin.Context) {
	h.LogRequest(c, "Submitting assessment")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req services.AssessmentSubmitRequest
	if !h.bindJSON(c, &req) {
		return
	}

	assessment, err := h.service.SubmitAssessment(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"assessment": assessment,
	})
}

// SubmitChallenge records a coding challenge solution, replacing any prior
// submission for the same challenge.
func (h *SubmissionHandler) SubmitChallenge(c *gin.Context) {
	h.LogRequest(c, "Submitting challenge")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req services.ChallengeSubmitRequest
	if !h.bindJSON(c, &req) {
		return
	}

	challenge, err := h.service.SubmitChallenge(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"challenge": challenge,
	})
}
