// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"harithakarmabhoomi/models"
	"harithakarmabhoomi/services/user"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userService user.UserService

// SetUserService injects the user service used by the package-level
// auth and profile handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler handles citizen signup.
func RegisterUserHandler(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := userService.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateAadhar) {
			utils.JSONError(c, http.StatusConflict, "Registration failed", err.Error())
			return
		}
		utils.GetLogger().Error("Registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles login by aadhar number.
func AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Aadhar   string `json:"aadhar"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if req.Aadhar == "" || req.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "aadhar and password are required")
		return
	}

	resp, err := userService.Authenticate(c.Request.Context(), req.Aadhar, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Login failed", user.ErrInvalidCredentials.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler clears the caller's session pointer.
func LogoutHandler(c *gin.Context) {
	tokenHash := c.GetString("tokenHash")
	if err := userService.Logout(c.Request.Context(), tokenHash); err != nil {
		utils.GetLogger().Error("Logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", "please try again")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// currentUser pulls the session user set by the auth middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get("currentUser")
	if !exists {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
