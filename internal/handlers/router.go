package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/config"
	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

// HealthInfo carries the startup facts the health endpoint reports.
type HealthInfo struct {
	Environment      string
	GroqConfigured   bool
	GeminiConfigured bool
}

type HandlerManager struct {
	accountHandler      *AccountHandler
	profileHandler      *ProfileHandler
	roadmapHandler      *RoadmapHandler
	progressHandler     *ProgressHandler
	contentHandler      *ContentHandler
	chatHandler         *ChatHandler
	submissionHandler   *SubmissionHandler
	gamificationHandler *GamificationHandler
	authMiddleware      *CasdoorAuthMiddleware

	serviceManager services.ServiceManager
	health         HealthInfo
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	casdoorConfig config.CasdoorConfig,
	health HealthInfo,
) *HandlerManager {
	return &HandlerManager{
		accountHandler:      NewAccountHandler(serviceManager.Account(), logger),
		profileHandler:      NewProfileHandler(serviceManager.Profile(), logger),
		roadmapHandler:      NewRoadmapHandler(serviceManager.Roadmap(), logger),
		progressHandler:     NewProgressHandler(serviceManager.Progress(), serviceManager.Report(), logger),
		contentHandler:      NewContentHandler(serviceManager.Content(), logger),
		chatHandler:         NewChatHandler(serviceManager.Chat(), logger),
		submissionHandler:   NewSubmissionHandler(serviceManager.Submission(), logger),
		gamificationHandler: NewGamificationHandler(serviceManager.Gamification(), logger),
		authMiddleware:      NewCasdoorAuthMiddleware(casdoorConfig),
		serviceManager:      serviceManager,
		health:              health,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Public routes: liveness plus the account lifecycle, which has no
	// token yet by definition.
	api.GET("/health", hm.HealthCheck)
	api.GET("/test", hm.Test)
	api.POST("/signup", hm.accountHandler.Signup)
	api.POST("/reset-password", hm.accountHandler.ResetPassword)
	api.POST("/delete-user", hm.accountHandler.DeleteUser)

	// Everything else requires a verified bearer token.
	authed := api.Group("")
	authed.Use(hm.authMiddleware.AuthMiddleware())
	{
		authed.POST("/profile", hm.profileHandler.SaveProfile)
		authed.GET("/profile", hm.profileHandler.GetProfile)

		authed.POST("/generate-roadmap", hm.roadmapHandler.GenerateRoadmap)
		authed.GET("/roadmap", hm.roadmapHandler.GetRoadmap)

		authed.POST("/progress", hm.progressHandler.UpdateProgress)
		authed.GET("/progress", hm.progressHandler.ListProgress)
		authed.GET("/progress/export", hm.progressHandler.ExportProgress)

		authed.POST("/generate-topic-content", hm.contentHandler.GenerateContent)
		authed.GET("/topic-content/:moduleId/:topic", hm.contentHandler.GetContent)

		authed.POST("/chat", hm.chatHandler.Chat)
		authed.GET("/chat/history", hm.chatHandler.ChatHistory)

		authed.POST("/assessment", hm.submissionHandler.SubmitAssessment)
		authed.POST("/challenge", hm.submissionHandler.SubmitChallenge)

		authed.GET("/achievements", hm.gamificationHandler.GetAchievements)
		authed.POST("/achievements", hm.gamificationHandler.UnlockAchievement)
	}
}

// HealthCheck reports liveness plus which optional collaborators are wired.
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	storage := "connected"
	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		storage = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service":          "learning-service",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"environment":      hm.health.Environment,
		"storage":          storage,
		"groqConfigured":   hm.health.GroqConfigured,
		"geminiConfigured": hm.health.GeminiConfigured,
	})
}

// Test is a trivial reachability probe for frontend integration.
func (hm *HandlerManager) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "SkillPath learning service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
