package user

import (
	"context"
	"fmt"

	"harithakarmabhoomi/models"
	"harithakarmabhoomi/utils"

	"go.uber.org/zap"
)

// UpdateProfile merges the given fields into the user's entry in the
// global users collection and into the session pointer, keeping the two
// copies consistent.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID, tokenHash string, upd ProfileUpdate) (*models.User, error) {
	userRec, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	if upd.Name != "" {
		userRec.Name = upd.Name
	}
	if upd.Phone != "" {
		userRec.Phone = upd.Phone
	}
	if upd.HouseNo != "" {
		userRec.HouseNo = upd.HouseNo
	}
	if upd.Type != "" {
		userRec.Type = upd.Type
	}
	if upd.Location != nil {
		userRec.Location = upd.Location
	}

	if err := s.Repo.Update(ctx, userRec); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to persist user", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile, please try again")
	}
	if err := s.Sessions.Save(ctx, tokenHash, userRec.Sanitized()); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to refresh session", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile, please try again")
	}

	sanitized := userRec.Sanitized()
	return &sanitized, nil
}

// GetUserByID fetches a single user from the global collection.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(ctx, userID)
	if err != nil || userRec == nil {
		return userRec, err
	}
	sanitized := userRec.Sanitized()
	return &sanitized, nil
}

// GetAllUsers returns every registered user with sensitive fields excluded.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}
