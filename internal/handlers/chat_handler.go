package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

type ChatHandler struct {
	BaseHandler
	service services.ChatService
}

func NewChatHandler(service services.ChatService, logger utils.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Chat forwards a message to the learning assistant. When no provider is
// configured the reply carries a requiresSetup flag instead of an error.
func (h *ChatHandler) Chat(c *gin.Context) {
	h.LogRequest(c, "Handling chat message")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req services.ChatRequest
	if !h.bindJSON(c, &req) {
		return
	}

	reply, err := h.service.Send(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

// ChatHistory returns the stored conversation, oldest first.
func (h *ChatHandler) ChatHistory(c *gin.Context) {
	h.LogRequest(c, "Getting chat history")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	history, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
