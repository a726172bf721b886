package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpMigrations_Sorted(t *testing.T) {
	names, err := upMigrations()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_catalog_snapshot.up.sql", "002_snapshot_sync_state.up.sql"}, names)
}

func TestRunMigrations(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("Applies pending migrations", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(`SELECT name FROM schema_migrations`).
			WillReturnRows(pgxmock.NewRows([]string{"name"}).AddRow("001_catalog_snapshot.up.sql"))
		mock.ExpectBegin()
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS snapshot_sync_state`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(`INSERT INTO schema_migrations`).
			WithArgs("002_snapshot_sync_state.up.sql").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		assert.NoError(t, RunMigrations(ctx, mock, logger))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing to apply", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(`SELECT name FROM schema_migrations`).
			WillReturnRows(pgxmock.NewRows([]string{"name"}).
				AddRow("001_catalog_snapshot.up.sql").
				AddRow("002_snapshot_sync_state.up.sql"))

		assert.NoError(t, RunMigrations(ctx, mock, logger))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed migration rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(`SELECT name FROM schema_migrations`).
			WillReturnRows(pgxmock.NewRows([]string{"name"}))
		mock.ExpectBegin()
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS catalog_snapshot`).
			WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		err = RunMigrations(ctx, mock, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "001_catalog_snapshot.up.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Bookkeeping table error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
			WillReturnError(errors.New("permission denied"))

		assert.Error(t, RunMigrations(ctx, mock, logger))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
