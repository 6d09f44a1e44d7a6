package complaint

import (
	"context"
	"fmt"

	"harithakarmabhoomi/database/repository"
	userRepo "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"
)

// RedisComplaintRepo stores each user's complaints as one document under
// "complaints_{userId}".
type RedisComplaintRepo struct {
	Store *repository.RecordStore
	Users userRepo.UserRepository
}

// NewRedisComplaintRepo creates a complaint repository over the record store.
func NewRedisComplaintRepo(store *repository.RecordStore, users userRepo.UserRepository) *RedisComplaintRepo {
	return &RedisComplaintRepo{Store: store, Users: users}
}

func (r *RedisComplaintRepo) ListByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := r.Store.ReadInto(ctx, repository.CollectionComplaints, userID, &complaints); err != nil {
		return nil, fmt.Errorf("failed to load complaints for user %s: %w", userID, err)
	}
	return complaints, nil
}

func (r *RedisComplaintRepo) Insert(ctx context.Context, c *models.Complaint) error {
	complaints, err := r.ListByUser(ctx, c.UserID)
	if err != nil {
		return err
	}
	complaints = append(complaints, *c)
	return r.replace(ctx, c.UserID, complaints)
}

func (r *RedisComplaintRepo) ListAll(ctx context.Context) ([]models.Complaint, error) {
	users, err := r.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var all []models.Complaint
	for _, u := range users {
		part, err := r.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, part...)
	}
	return all, nil
}

func (r *RedisComplaintRepo) FindByID(ctx context.Context, id string) (*models.Complaint, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *RedisComplaintRepo) Update(ctx context.Context, c *models.Complaint) error {
	complaints, err := r.ListByUser(ctx, c.UserID)
	if err != nil {
		return err
	}
	found := false
	for i := range complaints {
		if complaints[i].ID == c.ID {
			complaints[i] = *c
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("complaint %s not found in partition of user %s", c.ID, c.UserID)
	}
	return r.replace(ctx, c.UserID, complaints)
}

func (r *RedisComplaintRepo) replace(ctx context.Context, userID string, complaints []models.Complaint) error {
	if err := r.Store.Write(ctx, repository.CollectionComplaints, userID, complaints); err != nil {
		return fmt.Errorf("failed to persist complaints for user %s: %w", userID, err)
	}
	return nil
}
