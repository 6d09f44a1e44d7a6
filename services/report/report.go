package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	reportRepo "harithakarmabhoomi/database/repository/report"
	"harithakarmabhoomi/models"

	"github.com/google/uuid"
)

// CreateInput carries the issue-report form fields.
type CreateInput struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type ReportService interface {
	Create(ctx context.Context, u models.User, input CreateInput) (*models.Report, error)
	ListForUser(ctx context.Context, userID string) ([]models.Report, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Repo reportRepo.ReportRepository
}

// Create appends a new report to the caller's partition with status "sent".
func (svc *DefaultReportService) Create(ctx context.Context, u models.User, input CreateInput) (*models.Report, error) {
	if input.Subject == "" || input.Description == "" {
		return nil, fmt.Errorf("subject and description are required")
	}

	rep := models.Report{
		ID:          uuid.New().String(),
		UserID:      u.ID,
		UserName:    u.Name,
		UserEmail:   syntheticEmail(u.Name),
		Subject:     input.Subject,
		Description: input.Description,
		Status:      "sent",
		CreatedAt:   time.Now(),
	}
	if err := svc.Repo.Insert(ctx, &rep); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &rep, nil
}

// ListForUser returns the caller's own reports.
func (svc *DefaultReportService) ListForUser(ctx context.Context, userID string) ([]models.Report, error) {
	return svc.Repo.ListByUser(ctx, userID)
}

// syntheticEmail derives a placeholder contact address from the user's
// name; accounts register with aadhar and phone only.
func syntheticEmail(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", ".")
	if slug == "" {
		return ""
	}
	return slug + "@example.com"
}
