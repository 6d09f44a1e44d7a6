package exchange

import (
	"context"

	"harithakarmabhoomi/models"
)

// ExchangeRepository provides access to the per-user exchange partitions.
type ExchangeRepository interface {
	Insert(ctx context.Context, e *models.Exchange) error
	ListByUser(ctx context.Context, userID string) ([]models.Exchange, error)
	ListAll(ctx context.Context) ([]models.Exchange, error)
	FindByID(ctx context.Context, id string) (*models.Exchange, error)
	Update(ctx context.Context, e *models.Exchange) error
}
