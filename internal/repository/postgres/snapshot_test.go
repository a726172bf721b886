package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_ReplaceBusinessProducts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepository(mock)
	ctx := context.Background()

	products := []domain.Product{
		{ID: "p1", BusinessID: "b1", BusinessName: "Acme", ItemCategory: "sofa", ProductName: "X", Option: "red", Price: 100},
		{ID: "p2", BusinessID: "b1", BusinessName: "Acme", ItemCategory: "sofa", ProductName: "X", Option: "blue", Price: 110},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("b1").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`DELETE FROM catalog_snapshot WHERE business_id`).
			WithArgs("b1").
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		mock.ExpectCopyFrom(pgx.Identifier{"catalog_snapshot"}, snapshotColumns).
			WillReturnResult(2)
		mock.ExpectCommit()

		err := repo.ReplaceBusinessProducts(ctx, "b1", products)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty listing clears the business", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("b1").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`DELETE FROM catalog_snapshot WHERE business_id`).
			WithArgs("b1").
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectCommit()

		err := repo.ReplaceBusinessProducts(ctx, "b1", nil)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Foreign product", func(t *testing.T) {
		foreign := append([]domain.Product{}, products...)
		foreign[1].BusinessID = "b2"

		err := repo.ReplaceBusinessProducts(ctx, "b1", foreign)
		assert.ErrorIs(t, err, ErrForeignProduct)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty business id", func(t *testing.T) {
		err := repo.ReplaceBusinessProducts(ctx, "", products)
		assert.ErrorIs(t, err, ErrEmptyBusinessID)
	})

	t.Run("Begin transaction error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		err := repo.ReplaceBusinessProducts(ctx, "b1", products)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Copy error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("b1").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`DELETE FROM catalog_snapshot WHERE business_id`).
			WithArgs("b1").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectCopyFrom(pgx.Identifier{"catalog_snapshot"}, snapshotColumns).
			WillReturnError(errors.New("copy error"))
		mock.ExpectRollback()

		err := repo.ReplaceBusinessProducts(ctx, "b1", products)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSnapshotRepository_ListProducts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "business_id", "business_name", "item_category", "product_name", "option_name", "price"}).
			AddRow("p1", "b1", "Acme", "sofa", "X", "red", int64(100)).
			AddRow("p2", "b1", "Acme", "sofa", "X", "", int64(0))

		mock.ExpectQuery(`SELECT (.+) FROM catalog_snapshot ORDER BY business_id, position`).
			WillReturnRows(rows)

		products, err := repo.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "red", products[0].Option)
		assert.Equal(t, int64(100), products[0].Price)
		assert.Equal(t, "", products[1].Option)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty snapshot", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM catalog_snapshot`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "business_id", "business_name", "item_category", "product_name", "option_name", "price"}))

		products, err := repo.ListProducts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM catalog_snapshot`).
			WillReturnError(errors.New("database error"))

		_, err := repo.ListProducts(ctx)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSnapshotRepository_RetainBusinesses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepository(mock)

	mock.ExpectExec(`DELETE FROM catalog_snapshot WHERE NOT`).
		WithArgs([]string{"b1", "b2"}).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	removed, err := repo.RetainBusinesses(context.Background(), []string{"b1", "b2"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
