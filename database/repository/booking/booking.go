package booking

import (
	"context"

	"harithakarmabhoomi/models"
)

// BookingRepository provides access to the per-user booking partitions.
type BookingRepository interface {
	Insert(ctx context.Context, b *models.Booking) error
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListAll enumerates all known users and concatenates their partitions.
	ListAll(ctx context.Context) ([]models.Booking, error)
	// FindByID scans all partitions for the booking with the given id.
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	// Update rewrites the owning partition with the record replaced.
	Update(ctx context.Context, b *models.Booking) error
}
