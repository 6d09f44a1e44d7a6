package complaint

import (
	"context"

	complaintRepo "harithakarmabhoomi/database/repository/complaint"
	userRepo "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"
)

// CreateInput carries the complaint form fields.
type CreateInput struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Category    models.ComplaintCategory `json:"category"`
	Location    string                   `json:"location"`
	ImageURL    string                   `json:"imageUrl"`
}

// Filter selects complaints by free-text search and/or status.
type Filter struct {
	Search string                 `json:"search"`
	Status models.ComplaintStatus `json:"status"`
}

type ComplaintService interface {
	Create(ctx context.Context, userID string, input CreateInput) (*models.Complaint, error)
	ListForUser(ctx context.Context, userID string) ([]models.Complaint, error)
	ListAll(ctx context.Context) ([]models.ComplaintWithUser, error)
	Transition(ctx context.Context, complaintID string, newStatus models.ComplaintStatus) (*models.Complaint, error)
	// Respond appends an admin reply; resolve additionally advances the
	// complaint to resolved.
	Respond(ctx context.Context, complaintID, message string, resolve bool) (*models.Complaint, error)
	StatusCounts(ctx context.Context) (map[models.ComplaintStatus]int, error)
}

// DefaultComplaintService is the production implementation.
type DefaultComplaintService struct {
	Repo  complaintRepo.ComplaintRepository
	Users userRepo.UserRepository
}
