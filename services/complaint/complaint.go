package complaint

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
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrUnknownCategory   = errors.New("unknown complaint category")
	ErrUnknownStatus     = errors.New("unknown complaint status")
)

// Create stamps a new pending complaint into the owner's partition.
func (svc *DefaultComplaintService) Create(ctx context.Context, userID string, input CreateInput) (*models.Complaint, error) {
	if !models.ValidComplaintCategory(input.Category) {
		return nil, ErrUnknownCategory
	}
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("title and description are required")
	}

	now := time.Now()
	c := models.Complaint{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Status:      models.ComplaintPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := svc.Repo.Insert(ctx, &c); err != nil {
		utils.GetLogger().Error("Create complaint: failed to persist", zap.Error(err))
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return &c, nil
}

// ListForUser returns the caller's own complaints.
func (svc *DefaultComplaintService) ListForUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	return svc.Repo.ListByUser(ctx, userID)
}

// ListAll concatenates every user's partition, joins owner fields and
// sorts newest first.
func (svc *DefaultComplaintService) ListAll(ctx context.Context) ([]models.ComplaintWithUser, error) {
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

	joined := make([]models.ComplaintWithUser, 0, len(all))
	for _, c := range all {
		owner := byID[c.UserID]
		joined = append(joined, models.ComplaintWithUser{
			Complaint:   c,
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

// Transition moves a complaint between pending, in_progress and resolved.
// Resolved complaints may be reopened by the admin.
func (svc *DefaultComplaintService) Transition(ctx context.Context, complaintID string, newStatus models.ComplaintStatus) (*models.Complaint, error) {
	switch newStatus {
	case models.ComplaintPending, models.ComplaintInProgress, models.ComplaintResolved:
	default:
		return nil, ErrUnknownStatus
	}

	c, err := svc.Repo.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrComplaintNotFound
	}

	c.Status = newStatus
	c.UpdatedAt = time.Now()
	if err := svc.Repo.Update(ctx, c); err != nil {
		utils.GetLogger().Error("Transition complaint: failed to persist",
			zap.String("complaintId", complaintID), zap.Error(err))
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}
	return c, nil
}

// Respond appends an admin reply to the complaint thread. When resolve is
// set the complaint is advanced to resolved in the same write.
func (svc *DefaultComplaintService) Respond(ctx context.Context, complaintID, message string, resolve bool) (*models.Complaint, error) {
	if message == "" {
		return nil, fmt.Errorf("response message is required")
	}

	c, err := svc.Repo.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrComplaintNotFound
	}

	now := time.Now()
	c.Responses = append(c.Responses, models.ComplaintResponse{
		ID:          uuid.New().String(),
		Message:     message,
		RespondedBy: "Admin",
		RespondedAt: now,
	})
	if resolve {
		c.Status = models.ComplaintResolved
	}
	c.UpdatedAt = now

	if err := svc.Repo.Update(ctx, c); err != nil {
		utils.GetLogger().Error("Respond complaint: failed to persist",
			zap.String("complaintId", complaintID), zap.Error(err))
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}
	return c, nil
}

// StatusCounts tallies all complaints by status for the admin overview.
func (svc *DefaultComplaintService) StatusCounts(ctx context.Context) (map[models.ComplaintStatus]int, error) {
	all, err := svc.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[models.ComplaintStatus]int)
	for _, c := range all {
		counts[c.Status]++
	}
	return counts, nil
}

// CountByCategory tallies complaints per category, used for reporting.
func CountByCategory(complaints []models.Complaint) map[models.ComplaintCategory]int {
	counts := make(map[models.ComplaintCategory]int)
	for _, c := range complaints {
		counts[c.Category]++
	}
	return counts
}

// FilterComplaints applies a search/status filter to an already-joined list.
// Search matches the owner name, title and category, case-insensitively.
func FilterComplaints(list []models.ComplaintWithUser, f Filter) []models.ComplaintWithUser {
	search := strings.ToLower(f.Search)
	out := make([]models.ComplaintWithUser, 0, len(list))
	for _, c := range list {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.UserName), search) &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(string(c.Category)), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}
