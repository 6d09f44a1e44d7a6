package exchange

import (
	"context"

	"harithakarmabhoomi/database/repository"
	exchangeRepo "harithakarmabhoomi/database/repository/exchange"
	userRepo "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"
)

// Filter selects exchanges by free-text search and/or status.
type Filter struct {
	Search string                `json:"search"`
	Status models.ExchangeStatus `json:"status"`
}

type ExchangeService interface {
	// Create snapshots the current rate for the bottle type onto the new
	// exchange; later rate changes never touch it.
	Create(ctx context.Context, userID string, bottleType models.BottleType, quantity int) (*models.Exchange, error)
	ListForUser(ctx context.Context, userID string) ([]models.Exchange, error)
	ListAll(ctx context.Context) ([]models.ExchangeWithUser, error)
	// Transition approves or rejects a pending exchange. Approval credits
	// the snapshotted total onto the owner exactly once.
	Transition(ctx context.Context, exchangeID string, newStatus models.ExchangeStatus) (*models.Exchange, error)
	GetRates(ctx context.Context) (models.RateTable, error)
	SetRates(ctx context.Context, rates models.RateTable) error
	StatusCounts(ctx context.Context) (map[models.ExchangeStatus]int, error)
	// TotalApprovedCredits sums the credits awarded across all approved
	// exchanges, for the admin overview.
	TotalApprovedCredits(ctx context.Context) (int, error)
}

// DefaultExchangeService is the production implementation.
type DefaultExchangeService struct {
	Repo  exchangeRepo.ExchangeRepository
	Users userRepo.UserRepository
	Rates repository.RateRepository
}
