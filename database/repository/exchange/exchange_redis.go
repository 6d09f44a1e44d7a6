package exchange

import (
	"context"
	"fmt"

	"harithakarmabhoomi/database/repository"
	userRepo "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"
)

// RedisExchangeRepo stores each user's exchanges as one document under
// "exchanges_{userId}".
type RedisExchangeRepo struct {
	Store *repository.RecordStore
	Users userRepo.UserRepository
}

// NewRedisExchangeRepo creates an exchange repository over the record store.
func NewRedisExchangeRepo(store *repository.RecordStore, users userRepo.UserRepository) *RedisExchangeRepo {
	return &RedisExchangeRepo{Store: store, Users: users}
}

func (r *RedisExchangeRepo) ListByUser(ctx context.Context, userID string) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	if err := r.Store.ReadInto(ctx, repository.CollectionExchanges, userID, &exchanges); err != nil {
		return nil, fmt.Errorf("failed to load exchanges for user %s: %w", userID, err)
	}
	return exchanges, nil
}

func (r *RedisExchangeRepo) Insert(ctx context.Context, e *models.Exchange) error {
	exchanges, err := r.ListByUser(ctx, e.UserID)
	if err != nil {
		return err
	}
	exchanges = append(exchanges, *e)
	return r.replace(ctx, e.UserID, exchanges)
}

func (r *RedisExchangeRepo) ListAll(ctx context.Context) ([]models.Exchange, error) {
	users, err := r.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var all []models.Exchange
	for _, u := range users {
		part, err := r.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, part...)
	}
	return all, nil
}

func (r *RedisExchangeRepo) FindByID(ctx context.Context, id string) (*models.Exchange, error) {
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

func (r *RedisExchangeRepo) Update(ctx context.Context, e *models.Exchange) error {
	exchanges, err := r.ListByUser(ctx, e.UserID)
	if err != nil {
		return err
	}
	found := false
	for i := range exchanges {
		if exchanges[i].ID == e.ID {
			exchanges[i] = *e
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("exchange %s not found in partition of user %s", e.ID, e.UserID)
	}
	return r.replace(ctx, e.UserID, exchanges)
}

func (r *RedisExchangeRepo) replace(ctx context.Context, userID string, exchanges []models.Exchange) error {
	if err := r.Store.Write(ctx, repository.CollectionExchanges, userID, exchanges); err != nil {
		return fmt.Errorf("failed to persist exchanges for user %s: %w", userID, err)
	}
	return nil
}
