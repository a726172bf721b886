package postgres

import (
	"context"
	"fmt"
	"time"
)

// SyncStateRepository реализует domain.SyncStateRepository
type SyncStateRepository struct {
	db DBTX
}

// NewSyncStateRepository создает новый SyncStateRepository
func NewSyncStateRepository(db DBTX) *SyncStateRepository {
	return &SyncStateRepository{db: db}
}

// RecordSuccess отмечает успешную синхронизацию и сбрасывает ошибку
func (r *SyncStateRepository) RecordSuccess(ctx context.Context, businessID string, productCount int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO snapshot_sync_state (business_id, last_synced_at, product_count, last_error)
		 VALUES ($1, NOW(), $2, NULL)
		 ON CONFLICT (business_id) DO UPDATE
		 SET last_synced_at = NOW(), product_count = EXCLUDED.product_count, last_error = NULL`,
		businessID, productCount,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to record sync of business %s: %w", businessID, err)
	}
	return nil
}

// RecordFailure сохраняет ошибку синхронизации, время последнего успеха не меняется
func (r *SyncStateRepository) RecordFailure(ctx context.Context, businessID string, syncErr error) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO snapshot_sync_state (business_id, last_error)
		 VALUES ($1, $2)
		 ON CONFLICT (business_id) DO UPDATE
		 SET last_error = EXCLUDED.last_error`,
		businessID, syncErr.Error(),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to record sync failure of business %s: %w", businessID, err)
	}
	return nil
}

// ListFresh возвращает бизнесы, успешно синхронизированные не раньше чем within назад
func (r *SyncStateRepository) ListFresh(ctx context.Context, within time.Duration) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT business_id FROM snapshot_sync_state
		 WHERE last_error IS NULL AND last_synced_at >= $1
		 ORDER BY business_id`,
		time.Now().Add(-within),
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list fresh businesses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan business id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating sync state: %w", err)
	}

	return ids, nil
}
