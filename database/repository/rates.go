package repository

import (
	"context"
	"fmt"

	"harithakarmabhoomi/models"
)

// RateRepository provides access to the global rate table.
type RateRepository interface {
	Get(ctx context.Context) (models.RateTable, error)
	Set(ctx context.Context, rates models.RateTable) error
}

// RedisRateRepo stores the rate table as one document under "rate_table".
// Until an admin sets rates, the built-in defaults apply.
type RedisRateRepo struct {
	Store *RecordStore
}

// NewRedisRateRepo creates a rate repository over the record store.
func NewRedisRateRepo(store *RecordStore) *RedisRateRepo {
	return &RedisRateRepo{Store: store}
}

func (r *RedisRateRepo) Get(ctx context.Context) (models.RateTable, error) {
	var rates models.RateTable
	if err := r.Store.ReadInto(ctx, CollectionRates, "", &rates); err != nil {
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}
	if len(rates) == 0 {
		return models.DefaultRateTable(), nil
	}
	return rates, nil
}

func (r *RedisRateRepo) Set(ctx context.Context, rates models.RateTable) error {
	if err := r.Store.Write(ctx, CollectionRates, "", rates); err != nil {
		return fmt.Errorf("failed to persist rate table: %w", err)
	}
	return nil
}
