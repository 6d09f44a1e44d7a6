package handlers

import (
	"net/http"
	"strconv"

	"harithakarmabhoomi/services/qr"
	"harithakarmabhoomi/services/user"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler merges edits into the profile, keeping the users
// collection and the session pointer consistent.
func UpdateProfileHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}

	var upd user.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := userService.UpdateProfile(c.Request.Context(), u.ID, c.GetString("tokenHash"), upd)
	if err != nil {
		utils.GetLogger().Error("Failed to update profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", "please try again")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// QRCodeHandler renders the caller's identity card as a PNG.
func QRCodeHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "300"))
	png, err := qr.IdentityCard(u, size)
	if err != nil {
		utils.GetLogger().Error("Failed to render identity card", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate QR code", "please try again")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
