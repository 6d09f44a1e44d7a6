package user

import (
	"context"
	"fmt"

	"harithakarmabhoomi/database/repository"
	"harithakarmabhoomi/models"
)

// RedisUserRepo stores the whole users collection as one document under
// the "users" key, matching the storage contract.
type RedisUserRepo struct {
	Store *repository.RecordStore
}

// NewRedisUserRepo creates a user repository over the record store.
func NewRedisUserRepo(store *repository.RecordStore) *RedisUserRepo {
	return &RedisUserRepo{Store: store}
}

func (r *RedisUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.Store.ReadInto(ctx, repository.CollectionUsers, "", &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

func (r *RedisUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *RedisUserRepo) GetByAadhar(ctx context.Context, aadhar string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Aadhar == aadhar {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *RedisUserRepo) Create(ctx context.Context, u *models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, *u)
	if err := r.Store.Write(ctx, repository.CollectionUsers, "", users); err != nil {
		return fmt.Errorf("failed to persist user %s: %w", u.ID, err)
	}
	return nil
}

func (r *RedisUserRepo) Update(ctx context.Context, u *models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = *u
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("user %s not found", u.ID)
	}
	if err := r.Store.Write(ctx, repository.CollectionUsers, "", users); err != nil {
		return fmt.Errorf("failed to persist user %s: %w", u.ID, err)
	}
	return nil
}
