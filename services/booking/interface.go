package booking

import (
	"context"

	bookingRepo "harithakarmabhoomi/database/repository/booking"
	userRepo "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"
)

// CreateInput carries the pickup request fields. Source marks bookings
// produced by the voice, call or SMS flows; form submissions leave it empty.
type CreateInput struct {
	WasteType models.WasteType `json:"wasteType"`
	Weight    string           `json:"weight"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
	Location  string           `json:"location"`
	Address   string           `json:"address"`
	Notes     string           `json:"notes"`
	Source    string           `json:"source"`
}

// Filter selects bookings by free-text search and/or status. Search
// matches the owner name, phone and waste type, case-insensitively.
type Filter struct {
	Search string               `json:"search"`
	Status models.BookingStatus `json:"status"`
}

type BookingService interface {
	Create(ctx context.Context, userID string, input CreateInput) (*models.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListAll returns every booking joined with its owner, newest first.
	ListAll(ctx context.Context) ([]models.BookingWithUser, error)
	Transition(ctx context.Context, bookingID string, newStatus models.BookingStatus) (*models.Booking, error)
	StatusCounts(ctx context.Context) (map[models.BookingStatus]int, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Users userRepo.UserRepository
}
