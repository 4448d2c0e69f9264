package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestStatsCache_RoundTrip(t *testing.T) {
	mr, client := newMiniredis(t)
	cache := NewStatsCache(client, 30*time.Second)
	ctx := context.Background()

	got, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "miss returns nil")

	stats := &models.DashboardStats{
		TotalUsers:             2,
		TotalTransactions:      1,
		TotalTransactionAmount: decimal.RequireFromString("50.5"),
		RecentTransactions: []*models.Transaction{{
			ID: 1, Amount: decimal.RequireFromString("50.5"), Commission: decimal.RequireFromString("5.05"),
			Status: models.TransactionStatusPending, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), UserID: 1,
		}},
	}
	require.NoError(t, cache.SetStats(ctx, stats))
	assert.Equal(t, 30*time.Second, mr.TTL(constants.KeyDashboardStats))

	got, err = cache.GetStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.TotalUsers)
	assert.True(t, stats.TotalTransactionAmount.Equal(got.TotalTransactionAmount))
	require.Len(t, got.RecentTransactions, 1)
	assert.Equal(t, models.TransactionStatusPending, got.RecentTransactions[0].Status)

	require.NoError(t, cache.Invalidate(ctx))
	assert.False(t, mr.Exists(constants.KeyDashboardStats))
}

func TestStatsCache_Expires(t *testing.T) {
	mr, client := newMiniredis(t)
	cache := NewStatsCache(client, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.SetStats(ctx, &models.DashboardStats{TotalUsers: 1}))
	mr.FastForward(2 * time.Second)

	got, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatsCache_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt payload", func(t *testing.T) {
		mr, client := newMiniredis(t)
		require.NoError(t, mr.Set(constants.KeyDashboardStats, "{not json"))

		_, err := NewStatsCache(client, time.Minute).GetStats(ctx)
		assert.ErrorContains(t, err, "failed to decode cached stats")
	})

	t.Run("redis failures", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewStatsCache(client, time.Minute)

		mock.ExpectGet(constants.KeyDashboardStats).SetErr(assert.AnError)
		_, err := cache.GetStats(ctx)
		assert.ErrorContains(t, err, "failed to read cached stats")

		mock.ExpectDel(constants.KeyDashboardStats).SetErr(assert.AnError)
		assert.ErrorContains(t, cache.Invalidate(ctx), "failed to invalidate stats")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoopStatsCache(t *testing.T) {
	var c NoopStatsCache
	ctx := context.Background()

	require.NoError(t, c.SetStats(ctx, &models.DashboardStats{TotalUsers: 1}))
	got, err := c.GetStats(ctx)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx))
}
