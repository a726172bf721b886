package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/storefront-gateway/internal/backend"
	"github.com/avc/storefront-gateway/internal/domain"
	domainmocks "github.com/avc/storefront-gateway/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type poolMocks struct {
	backend   *domainmocks.BackendClientMock
	snapshot  *domainmocks.SnapshotRepositoryMock
	syncState *domainmocks.SyncStateRepositoryMock
}

func newTestPool(t *testing.T, queueSize int) (*Pool, poolMocks) {
	m := poolMocks{
		backend:   domainmocks.NewBackendClientMock(t),
		snapshot:  domainmocks.NewSnapshotRepositoryMock(t),
		syncState: domainmocks.NewSyncStateRepositoryMock(t),
	}
	logger, _ := zap.NewDevelopment()
	return NewPool(1, queueSize, time.Minute, m.backend, m.snapshot, m.syncState, logger), m
}

func TestPool_SyncBusiness(t *testing.T) {
	ctx := context.Background()
	products := []domain.Product{
		{ID: "p1", BusinessID: "b1", ItemCategory: "sofa", ProductName: "Zeta", Option: "L", Price: 1000},
		{ID: "p2", BusinessID: "b1", ItemCategory: "sofa", ProductName: "Zeta", Option: "M", Price: 800},
	}

	t.Run("Success", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		m.backend.EXPECT().ListProducts(mock.Anything, "b1", "").Return(products, nil).Once()
		m.snapshot.EXPECT().ReplaceBusinessProducts(mock.Anything, "b1", products).Return(nil).Once()
		m.syncState.EXPECT().RecordSuccess(mock.Anything, "b1", 2).Return(nil).Once()

		pool.syncBusiness(ctx, "b1")
	})

	t.Run("Backend error is recorded", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		backendErr := errors.New("backend down")
		m.backend.EXPECT().ListProducts(mock.Anything, "b1", "").Return(nil, backendErr).Once()
		m.syncState.EXPECT().RecordFailure(mock.Anything, "b1", backendErr).Return(nil).Once()

		pool.syncBusiness(ctx, "b1")
	})

	t.Run("Snapshot error is recorded", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		dbErr := errors.New("db down")
		m.backend.EXPECT().ListProducts(mock.Anything, "b1", "").Return(products, nil).Once()
		m.snapshot.EXPECT().ReplaceBusinessProducts(mock.Anything, "b1", products).Return(dbErr).Once()
		m.syncState.EXPECT().RecordFailure(mock.Anything, "b1", dbErr).Return(nil).Once()

		pool.syncBusiness(ctx, "b1")
	})

	t.Run("Rate limit waits and does not record failure", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		m.backend.EXPECT().ListProducts(mock.Anything, "b1", "").Return(nil, backend.NewRateLimitError(20*time.Millisecond)).Once()

		start := time.Now()
		pool.syncBusiness(ctx, "b1")
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("Rate limit wait ends with context", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		m.backend.EXPECT().ListProducts(mock.Anything, "b1", "").Return(nil, backend.NewRateLimitError(time.Hour)).Once()

		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		pool.syncBusiness(cctx, "b1")
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestPool_SyncNow(t *testing.T) {
	ctx := context.Background()
	approved := true

	t.Run("Skips fresh businesses", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		m.backend.EXPECT().ListAccounts(mock.Anything, domain.AccountKindBusiness, &approved).Return([]domain.Account{
			{ID: "b1"}, {ID: "b2"}, {ID: ""}, {ID: "b3"},
		}, nil).Once()
		m.snapshot.EXPECT().RetainBusinesses(mock.Anything, []string{"b1", "b2", "b3"}).Return(int64(4), nil).Once()
		m.syncState.EXPECT().ListFresh(mock.Anything, time.Minute).Return([]string{"b2"}, nil).Once()

		for _, id := range []string{"b1", "b3"} {
			m.backend.EXPECT().ListProducts(mock.Anything, id, "").Return([]domain.Product{}, nil).Once()
			m.snapshot.EXPECT().ReplaceBusinessProducts(mock.Anything, id, []domain.Product{}).Return(nil).Once()
			m.syncState.EXPECT().RecordSuccess(mock.Anything, id, 0).Return(nil).Once()
		}

		require.NoError(t, pool.SyncNow(ctx))
	})

	t.Run("Empty business list does not prune", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		m.backend.EXPECT().ListAccounts(mock.Anything, domain.AccountKindBusiness, &approved).Return([]domain.Account{}, nil).Once()
		m.syncState.EXPECT().ListFresh(mock.Anything, time.Minute).Return(nil, nil).Once()

		require.NoError(t, pool.SyncNow(ctx))
	})

	t.Run("Backend unavailable", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		m.backend.EXPECT().ListAccounts(mock.Anything, domain.AccountKindBusiness, &approved).Return(nil, errors.New("backend down")).Once()

		assert.Error(t, pool.SyncNow(ctx))
	})
}

func TestPool_Scan(t *testing.T) {
	pool, m := newTestPool(t, 1)
	approved := true
	m.backend.EXPECT().ListAccounts(mock.Anything, domain.AccountKindBusiness, &approved).Return([]domain.Account{
		{ID: "b1"}, {ID: "b2"},
	}, nil).Once()
	m.snapshot.EXPECT().RetainBusinesses(mock.Anything, []string{"b1", "b2"}).Return(int64(0), nil).Once()
	m.syncState.EXPECT().ListFresh(mock.Anything, time.Minute).Return(nil, errors.New("db down")).Once()

	pool.scan(context.Background())

	// Очередь на один элемент: второй бизнес пропущен
	require.Len(t, pool.queue, 1)
	assert.Equal(t, "b1", <-pool.queue)
}

func TestPool_StartStop(t *testing.T) {
	pool, _ := newTestPool(t, 10)
	ctx, cancel := context.WithCancel(context.Background())

	pool.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop")
	}
}
