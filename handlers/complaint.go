package handlers

import (
	"errors"
	"net/http"

	"harithakarmabhoomi/services/complaint"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ComplaintHandler serves the citizen-facing complaint endpoints.
type ComplaintHandler struct {
	Svc    complaint.ComplaintService
	Logger *zap.Logger
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(svc complaint.ComplaintService, logger *zap.Logger) *ComplaintHandler {
	return &ComplaintHandler{Svc: svc, Logger: logger}
}

// CreateComplaintHandler files a new complaint for the caller.
func (h *ComplaintHandler) CreateComplaintHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}

	var input complaint.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), u.ID, input)
	if err != nil {
		if errors.Is(err, complaint.ErrUnknownCategory) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		h.Logger.Error("Failed to create complaint", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create complaint", "please try again")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListMyComplaintsHandler returns the caller's complaints.
func (h *ComplaintHandler) ListMyComplaintsHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}
	complaints, err := h.Svc.ListForUser(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.Error("Failed to list complaints", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list complaints", "please try again")
		return
	}
	c.JSON(http.StatusOK, complaints)
}
