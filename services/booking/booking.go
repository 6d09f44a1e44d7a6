package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"harithakarmabhoomi/models"
	"harithakarmabhoomi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedTransitions encodes the monotonic booking lifecycle. Completed
// and cancelled are terminal.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:    {models.BookingInProgress, models.BookingCancelled},
	models.BookingInProgress: {models.BookingCompleted},
}

// Create stamps a new pending booking into the owner's partition.
func (svc *DefaultBookingService) Create(ctx context.Context, userID string, input CreateInput) (*models.Booking, error) {
	if !models.ValidWasteType(input.WasteType) {
		return nil, ErrUnknownWasteType
	}

	b := models.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		WasteType: input.WasteType,
		Weight:    input.Weight,
		Date:      input.Date,
		Time:      input.Time,
		Location:  input.Location,
		Address:   input.Address,
		Notes:     input.Notes,
		Type:      input.Source,
		Status:    models.BookingPending,
		CreatedAt: time.Now(),
	}

	if err := svc.Repo.Insert(ctx, &b); err != nil {
		utils.GetLogger().Error("Create booking: failed to persist", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &b, nil
}

// ListForUser returns the caller's own bookings.
func (svc *DefaultBookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return svc.Repo.ListByUser(ctx, userID)
}

// ListAll concatenates every user's partition, joins each booking with
// denormalized owner fields and sorts newest first.
func (svc *DefaultBookingService) ListAll(ctx context.Context) ([]models.BookingWithUser, error) {
	users, err := svc.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	all, err := svc.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	joined := make([]models.BookingWithUser, 0, len(all))
	for _, b := range all {
		owner := byID[b.UserID]
		joined = append(joined, models.BookingWithUser{
			Booking:     b,
			UserName:    owner.Name,
			UserPhone:   owner.Phone,
			UserAddress: owner.HouseNo,
		})
	}
	sort.Slice(joined, func(i, j int) bool {
		return joined[i].CreatedAt.After(joined[j].CreatedAt)
	})
	return joined, nil
}

// Transition advances a booking's status. Transitions outside the allowed
// lifecycle are rejected; completed and cancelled never regress.
func (svc *DefaultBookingService) Transition(ctx context.Context, bookingID string, newStatus models.BookingStatus) (*models.Booking, error) {
	b, err := svc.Repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if !transitionAllowed(b.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, newStatus)
	}

	b.Status = newStatus
	if err := svc.Repo.Update(ctx, b); err != nil {
		utils.GetLogger().Error("Transition booking: failed to persist",
			zap.String("bookingId", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return b, nil
}

// StatusCounts tallies all bookings by status for the admin overview.
func (svc *DefaultBookingService) StatusCounts(ctx context.Context) (map[models.BookingStatus]int, error) {
	all, err := svc.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[models.BookingStatus]int)
	for _, b := range all {
		counts[b.Status]++
	}
	return counts, nil
}

func transitionAllowed(from, to models.BookingStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// FilterBookings applies a search/status filter to an already-joined list.
func FilterBookings(list []models.BookingWithUser, f Filter) []models.BookingWithUser {
	search := strings.ToLower(f.Search)
	out := make([]models.BookingWithUser, 0, len(list))
	for _, b := range list {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.UserName), search) &&
			!strings.Contains(strings.ToLower(b.UserPhone), search) &&
			!strings.Contains(strings.ToLower(string(b.WasteType)), search) {
			continue
		}
		out = append(out, b)
	}
	return out
}
