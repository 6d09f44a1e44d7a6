package user

import (
	"context"

	"harithakarmabhoomi/models"
)

// UserRepository provides access to the global users collection.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByAadhar(ctx context.Context, aadhar string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
}
