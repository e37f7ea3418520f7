package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

// AccountHandler serves the unauthenticated account lifecycle routes.
type AccountHandler struct {
	BaseHandler
	service services.AccountService
}

func NewAccountHandler(service services.AccountService, logger utils.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Signup registers a new account with the identity provider.
func (h *AccountHandler) Signup(c *gin.Context) {
	h.LogRequest(c, "Signing up new user")

	var req services.SignupRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// ResetPassword sets a new password for an existing account.
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	h.LogRequest(c, "Resetting password")

	var req services.ResetPasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "password updated",
	})
}

// DeleteUser removes an account from the identity provider.
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	h.LogRequest(c, "Deleting user")

	var req services.DeleteUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "account deleted",
	})
}
