package exchange

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"harithakarmabhoomi/models"
	"harithakarmabhoomi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrExchangeNotFound  = errors.New("exchange not found")
	ErrUnknownBottleType = errors.New("unknown bottle type")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	// ErrNotPending guards the terminal states: approve and reject only
	// fire from pending, so credits can never be awarded twice.
	ErrNotPending = errors.New("exchange has already been processed")
)

// Create stamps a new pending exchange with the current rate snapshotted.
func (svc *DefaultExchangeService) Create(ctx context.Context, userID string, bottleType models.BottleType, quantity int) (*models.Exchange, error) {
	if !models.ValidBottleType(bottleType) {
		return nil, ErrUnknownBottleType
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	rates, err := svc.Rates.Get(ctx)
	if err != nil {
		return nil, err
	}
	rate := rates[bottleType]

	e := models.Exchange{
		ID:           uuid.New().String(),
		UserID:       userID,
		BottleType:   bottleType,
		Quantity:     quantity,
		Rate:         rate,
		TotalCredits: quantity * rate,
		Status:       models.ExchangePending,
		CreatedAt:    time.Now(),
	}

	if err := svc.Repo.Insert(ctx, &e); err != nil {
		utils.GetLogger().Error("Create exchange: failed to persist", zap.Error(err))
		return nil, fmt.Errorf("failed to create exchange: %w", err)
	}
	return &e, nil
}

// ListForUser returns the caller's own exchanges.
func (svc *DefaultExchangeService) ListForUser(ctx context.Context, userID string) ([]models.Exchange, error) {
	return svc.Repo.ListByUser(ctx, userID)
}

// ListAll concatenates every user's partition, joins owner fields and
// sorts newest first.
func (svc *DefaultExchangeService) ListAll(ctx context.Context) ([]models.ExchangeWithUser, error) {
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

	joined := make([]models.ExchangeWithUser, 0, len(all))
	for _, e := range all {
		owner := byID[e.UserID]
		joined = append(joined, models.ExchangeWithUser{
			Exchange:    e,
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

// Transition approves or rejects a pending exchange. On approval the
// snapshotted total is credited onto the owning user's balance in the
// same operation; both terminal states stamp processedAt.
func (svc *DefaultExchangeService) Transition(ctx context.Context, exchangeID string, newStatus models.ExchangeStatus) (*models.Exchange, error) {
	if newStatus != models.ExchangeApproved && newStatus != models.ExchangeRejected {
		return nil, fmt.Errorf("exchange status %q is not a valid target", newStatus)
	}

	e, err := svc.Repo.FindByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExchangeNotFound
	}
	if e.Status != models.ExchangePending {
		return nil, ErrNotPending
	}

	now := time.Now()
	e.Status = newStatus
	e.ProcessedAt = &now

	if newStatus == models.ExchangeApproved {
		owner, err := svc.Users.GetByID(ctx, e.UserID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, fmt.Errorf("owner %s of exchange %s not found", e.UserID, e.ID)
		}
		owner.Credits += e.TotalCredits
		if err := svc.Users.Update(ctx, owner); err != nil {
			utils.GetLogger().Error("Approve exchange: failed to credit user",
				zap.String("exchangeId", e.ID), zap.String("userId", e.UserID), zap.Error(err))
			return nil, fmt.Errorf("failed to credit user: %w", err)
		}
	}

	if err := svc.Repo.Update(ctx, e); err != nil {
		utils.GetLogger().Error("Transition exchange: failed to persist",
			zap.String("exchangeId", exchangeID), zap.Error(err))
		return nil, fmt.Errorf("failed to update exchange: %w", err)
	}
	return e, nil
}

// GetRates returns the current rate table.
func (svc *DefaultExchangeService) GetRates(ctx context.Context) (models.RateTable, error) {
	return svc.Rates.Get(ctx)
}

// SetRates replaces the global rate table. Existing exchanges keep their
// snapshotted rates.
func (svc *DefaultExchangeService) SetRates(ctx context.Context, rates models.RateTable) error {
	for bt, rate := range rates {
		if !models.ValidBottleType(bt) {
			return ErrUnknownBottleType
		}
		if rate < 0 {
			return fmt.Errorf("rate for %s must be non-negative", bt)
		}
	}
	return svc.Rates.Set(ctx, rates)
}

// StatusCounts tallies all exchanges by status for the admin overview.
func (svc *DefaultExchangeService) StatusCounts(ctx context.Context) (map[models.ExchangeStatus]int, error) {
	all, err := svc.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[models.ExchangeStatus]int)
	for _, e := range all {
		counts[e.Status]++
	}
	return counts, nil
}

// TotalApprovedCredits sums the credits awarded across approved exchanges.
func (svc *DefaultExchangeService) TotalApprovedCredits(ctx context.Context) (int, error) {
	all, err := svc.Repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range all {
		if e.Status == models.ExchangeApproved {
			total += e.TotalCredits
		}
	}
	return total, nil
}

// FilterExchanges applies a search/status filter to an already-joined list.
// Search matches the owner name and bottle type, case-insensitively.
func FilterExchanges(list []models.ExchangeWithUser, f Filter) []models.ExchangeWithUser {
	search := strings.ToLower(f.Search)
	out := make([]models.ExchangeWithUser, 0, len(list))
	for _, e := range list {
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.UserName), search) &&
			!strings.Contains(strings.ToLower(string(e.BottleType)), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}
