package user

import (
	"context"

	"harithakarmabhoomi/config"
	"harithakarmabhoomi/models"
	"harithakarmabhoomi/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate logs a user in by aadhar number. A single fixed admin
// credential short-circuits into an admin session whose identity is never
// written to the users collection.
func (s *DefaultUserService) Authenticate(ctx context.Context, aadhar, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByAadhar(ctx, aadhar)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	if userRec != nil {
		if bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.openSession(ctx, *userRec)
	}

	if aadhar == config.AppConfig.AdminAadhar && password == config.AppConfig.AdminPassword {
		return s.openSession(ctx, adminIdentity())
	}

	return nil, ErrInvalidCredentials
}

// Logout clears the session pointer for the given token hash.
func (s *DefaultUserService) Logout(ctx context.Context, tokenHash string) error {
	return s.Sessions.Delete(ctx, tokenHash)
}

// CurrentUser restores the session pointer for the given token hash.
func (s *DefaultUserService) CurrentUser(ctx context.Context, tokenHash string) (*models.User, error) {
	return s.Sessions.Get(ctx, tokenHash)
}

// adminIdentity builds the synthetic admin user from configuration.
func adminIdentity() models.User {
	return models.User{
		ID:      "1",
		Name:    "Admin User",
		Aadhar:  config.AppConfig.AdminAadhar,
		Phone:   config.AppConfig.AdminPhone,
		HouseNo: "Admin Office",
		Type:    models.HouseholdOrganization,
		Role:    models.RoleAdmin,
		Credits: 0,
	}
}
