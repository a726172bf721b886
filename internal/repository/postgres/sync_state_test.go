package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStateRepository_RecordSuccess(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSyncStateRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO snapshot_sync_state`).
			WithArgs("b1", 12).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.RecordSuccess(ctx, "b1", 12))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO snapshot_sync_state`).
			WithArgs("b1", 12).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.RecordSuccess(ctx, "b1", 12))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSyncStateRepository_RecordFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSyncStateRepository(mock)

	mock.ExpectExec(`INSERT INTO snapshot_sync_state`).
		WithArgs("b1", "backend unavailable").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.RecordFailure(context.Background(), "b1", errors.New("backend unavailable")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncStateRepository_ListFresh(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSyncStateRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"business_id"}).AddRow("b1").AddRow("b3")
		mock.ExpectQuery(`SELECT business_id FROM snapshot_sync_state`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnRows(rows)

		ids, err := repo.ListFresh(ctx, 5*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, []string{"b1", "b3"}, ids)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT business_id FROM snapshot_sync_state`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))

		_, err := repo.ListFresh(ctx, 5*time.Minute)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
