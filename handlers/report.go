package handlers

import (
	"net/http"

	"harithakarmabhoomi/services/report"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler serves the issue-report endpoints.
type ReportHandler struct {
	Svc    report.ReportService
	Logger *zap.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc report.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{Svc: svc, Logger: logger}
}

// CreateReportHandler files a new issue report for the caller.
func (h *ReportHandler) CreateReportHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}

	var input report.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	rep, err := h.Svc.Create(c.Request.Context(), u, input)
	if err != nil {
		h.Logger.Error("Failed to create report", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit report", "please try again")
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// ListMyReportsHandler returns the caller's reports.
func (h *ReportHandler) ListMyReportsHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}
	reports, err := h.Svc.ListForUser(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.Error("Failed to list reports", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reports", "please try again")
		return
	}
	c.JSON(http.StatusOK, reports)
}
