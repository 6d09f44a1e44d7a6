package user

import (
	"context"
	"fmt"
	"time"

	"harithakarmabhoomi/config"
	"harithakarmabhoomi/models"
	"harithakarmabhoomi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new citizen account and opens a session for it.
// Every account starts with role "user" and zero credits.
func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if input.Name == "" || input.Aadhar == "" || input.Phone == "" || input.Password == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	if input.Type == "" {
		input.Type = models.HouseholdHome
	}

	existing, err := s.Repo.GetByAadhar(ctx, input.Aadhar)
	if err != nil {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrDuplicateAadhar
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Aadhar:       input.Aadhar,
		Phone:        input.Phone,
		HouseNo:      input.HouseNo,
		Type:         input.Type,
		Role:         models.RoleUser,
		Credits:      0,
		PasswordHash: string(hashedPassword),
		Location:     input.Location,
	}

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.openSession(ctx, userObj)
}

// openSession issues a token and persists the session pointer for u.
func (s *DefaultUserService) openSession(ctx context.Context, u models.User) (*AuthResponse, error) {
	ttl := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	token, err := utils.GenerateToken(u.ID, string(u.Role), ttl)
	if err != nil {
		utils.GetLogger().Error("openSession: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := s.Sessions.Save(ctx, utils.HashToken(token), u.Sanitized()); err != nil {
		utils.GetLogger().Error("openSession: failed to save session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	return &AuthResponse{Token: token, User: u.Sanitized()}, nil
}
