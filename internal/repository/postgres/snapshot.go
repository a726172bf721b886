package postgres

import (
	"context"
	"fmt"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
)

var snapshotColumns = []string{
	"id", "business_id", "business_name", "item_category", "product_name", "option_name", "price", "position",
}

// SnapshotRepository реализует domain.SnapshotRepository
type SnapshotRepository struct {
	db DBTX
}

// NewSnapshotRepository создает новый SnapshotRepository
func NewSnapshotRepository(db DBTX) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// ReplaceBusinessProducts атомарно заменяет товары бизнеса в снимке.
// Порядок входного списка сохраняется в колонке position.
func (r *SnapshotRepository) ReplaceBusinessProducts(ctx context.Context, businessID string, products []domain.Product) error {
	if businessID == "" {
		return ErrEmptyBusinessID
	}
	for _, p := range products {
		if p.BusinessID != businessID {
			return fmt.Errorf("%w: %s in snapshot of %s", ErrForeignProduct, p.BusinessID, businessID)
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin snapshot transaction for business %s: %w", businessID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Advisory lock по бизнесу: две синхронизации одного бизнеса не пересекаются
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, businessID)
	if err != nil {
		return fmt.Errorf("repository: failed to acquire lock for business %s: %w", businessID, err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM catalog_snapshot WHERE business_id = $1`, businessID)
	if err != nil {
		return fmt.Errorf("repository: failed to clear snapshot for business %s: %w", businessID, err)
	}

	if len(products) > 0 {
		rows := make([][]any, len(products))
		for i, p := range products {
			rows[i] = []any{p.ID, p.BusinessID, p.BusinessName, p.ItemCategory, p.ProductName, p.Option, p.Price, i}
		}

		n, err := tx.CopyFrom(ctx, pgx.Identifier{"catalog_snapshot"}, snapshotColumns, pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("repository: failed to copy snapshot rows for business %s: %w", businessID, err)
		}
		if n != int64(len(products)) {
			return fmt.Errorf("repository: copied %d of %d snapshot rows for business %s", n, len(products), businessID)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit snapshot for business %s: %w", businessID, err)
	}

	return nil
}

// ListProducts возвращает весь снимок, товары каждого бизнеса в исходном порядке
func (r *SnapshotRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, business_name, item_category, product_name, option_name, price
		 FROM catalog_snapshot
		 ORDER BY business_id, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list snapshot: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.BusinessID, &p.BusinessName, &p.ItemCategory, &p.ProductName, &p.Option, &p.Price)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan snapshot row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating snapshot: %w", err)
	}

	return products, nil
}

// RetainBusinesses удаляет из снимка товары бизнесов, которых нет в списке
func (r *SnapshotRepository) RetainBusinesses(ctx context.Context, businessIDs []string) (int64, error) {
	if businessIDs == nil {
		businessIDs = []string{}
	}
	tag, err := r.db.Exec(ctx,
		`DELETE FROM catalog_snapshot WHERE NOT (business_id = ANY($1))`,
		businessIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to prune snapshot: %w", err)
	}
	return tag.RowsAffected(), nil
}
