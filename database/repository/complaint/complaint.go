package complaint

import (
	"context"

	"harithakarmabhoomi/models"
)

// ComplaintRepository provides access to the per-user complaint partitions.
type ComplaintRepository interface {
	Insert(ctx context.Context, c *models.Complaint) error
	ListByUser(ctx context.Context, userID string) ([]models.Complaint, error)
	ListAll(ctx context.Context) ([]models.Complaint, error)
	FindByID(ctx context.Context, id string) (*models.Complaint, error)
	Update(ctx context.Context, c *models.Complaint) error
}
