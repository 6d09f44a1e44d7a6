package user

import (
	"context"

	userRepo "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"
	"harithakarmabhoomi/services/session"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Name     string               `json:"name"`
	Aadhar   string               `json:"aadhar"`
	Phone    string               `json:"phone"`
	HouseNo  string               `json:"houseNo"`
	Type     models.HouseholdType `json:"type"`
	Password string               `json:"password"`
	Location *models.LatLng       `json:"location,omitempty"`
}

// ProfileUpdate carries the editable profile fields. Nil/empty fields are
// left unchanged.
type ProfileUpdate struct {
	Name     string               `json:"name,omitempty"`
	Phone    string               `json:"phone,omitempty"`
	HouseNo  string               `json:"houseNo,omitempty"`
	Type     models.HouseholdType `json:"type,omitempty"`
	Location *models.LatLng       `json:"location,omitempty"`
}

// AuthResponse is returned on successful signup or login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type UserService interface {
	// Registration and authentication
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Authenticate(ctx context.Context, aadhar, password string) (*AuthResponse, error)
	Logout(ctx context.Context, tokenHash string) error

	// Session restoration
	CurrentUser(ctx context.Context, tokenHash string) (*models.User, error)

	// Profile management
	UpdateProfile(ctx context.Context, userID, tokenHash string, upd ProfileUpdate) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// Admin / utility
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions *session.Manager
}
