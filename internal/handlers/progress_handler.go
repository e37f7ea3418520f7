package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ProgressHandler struct {
	BaseHandler
	service services.ProgressService
	reports services.ReportService
}

func NewProgressHandler(service services.ProgressService, reports services.ReportService, logger utils.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		reports:     reports,
	}
}

// UpdateProgress merges the submitted fields into the stored record for the
// module. Time spent accumulates; other fields replace only when supplied.
func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	h.LogRequest(c, "Updating progress")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req services.ProgressUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	progress, err := h.service.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"progress": progress,
	})
}

// ListProgress returns every module progress record for the caller.
func (h *ProgressHandler) ListProgress(c *gin.Context) {
	h.LogRequest(c, "Listing progress")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	progress, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// ExportProgress streams the caller's progress report as an xlsx workbook.
func (h *ProgressHandler) ExportProgress(c *gin.Context) {
	h.LogRequest(c, "Exporting progress report")

	identity, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
		return
	}

	data, filename, err := h.reports.ExportProgress(c.Request.Context(), identity)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
