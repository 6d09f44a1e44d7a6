package report

import (
	"context"
	"fmt"

	"harithakarmabhoomi/database/repository"
	"harithakarmabhoomi/models"
)

// ReportRepository provides access to the per-user report partitions.
type ReportRepository interface {
	Insert(ctx context.Context, rep *models.Report) error
	ListByUser(ctx context.Context, userID string) ([]models.Report, error)
}

// RedisReportRepo stores each user's reports as one document under
// "reports_{userId}".
type RedisReportRepo struct {
	Store *repository.RecordStore
}

// NewRedisReportRepo creates a report repository over the record store.
func NewRedisReportRepo(store *repository.RecordStore) *RedisReportRepo {
	return &RedisReportRepo{Store: store}
}

func (r *RedisReportRepo) ListByUser(ctx context.Context, userID string) ([]models.Report, error) {
	var reports []models.Report
	if err := r.Store.ReadInto(ctx, repository.CollectionReports, userID, &reports); err != nil {
		return nil, fmt.Errorf("failed to load reports for user %s: %w", userID, err)
	}
	return reports, nil
}

func (r *RedisReportRepo) Insert(ctx context.Context, rep *models.Report) error {
	reports, err := r.ListByUser(ctx, rep.UserID)
	if err != nil {
		return err
	}
	reports = append(reports, *rep)
	if err := r.Store.Write(ctx, repository.CollectionReports, rep.UserID, reports); err != nil {
		return fmt.Errorf("failed to persist reports for user %s: %w", rep.UserID, err)
	}
	return nil
}
