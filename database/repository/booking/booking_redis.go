package booking

import (
	"context"
	"fmt"

	"harithakarmabhoomi/database/repository"
	userRepo "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"
)

// RedisBookingRepo stores each user's bookings as one document under
// "bookings_{userId}". Cross-partition operations enumerate the global
// users collection.
type RedisBookingRepo struct {
	Store *repository.RecordStore
	Users userRepo.UserRepository
}

// NewRedisBookingRepo creates a booking repository over the record store.
func NewRedisBookingRepo(store *repository.RecordStore, users userRepo.UserRepository) *RedisBookingRepo {
	return &RedisBookingRepo{Store: store, Users: users}
}

func (r *RedisBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.Store.ReadInto(ctx, repository.CollectionBookings, userID, &bookings); err != nil {
		return nil, fmt.Errorf("failed to load bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

func (r *RedisBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	bookings, err := r.ListByUser(ctx, b.UserID)
	if err != nil {
		return err
	}
	bookings = append(bookings, *b)
	return r.replace(ctx, b.UserID, bookings)
}

func (r *RedisBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	users, err := r.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var all []models.Booking
	for _, u := range users {
		part, err := r.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, part...)
	}
	return all, nil
}

func (r *RedisBookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
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

func (r *RedisBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	bookings, err := r.ListByUser(ctx, b.UserID)
	if err != nil {
		return err
	}
	found := false
	for i := range bookings {
		if bookings[i].ID == b.ID {
			bookings[i] = *b
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("booking %s not found in partition of user %s", b.ID, b.UserID)
	}
	return r.replace(ctx, b.UserID, bookings)
}

func (r *RedisBookingRepo) replace(ctx context.Context, userID string, bookings []models.Booking) error {
	if err := r.Store.Write(ctx, repository.CollectionBookings, userID, bookings); err != nil {
		return fmt.Errorf("failed to persist bookings for user %s: %w", userID, err)
	}
	return nil
}
