package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_RefreshInterval(t *testing.T) {
	mr, client := newMiniredis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	_, ok, err := repo.GetRefreshInterval(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetRefreshInterval(ctx, "s1", 30))
	assert.Equal(t, "30", mustGet(t, mr.Get, "ledger:session:s1:refresh_interval"))

	mr.FastForward(30 * time.Minute)
	v, ok, err := repo.GetRefreshInterval(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30, v)
	assert.Equal(t, time.Hour, mr.TTL("ledger:session:s1:refresh_interval"), "read slides the TTL")

	_, ok, err = repo.GetRefreshInterval(ctx, "s2")
	require.NoError(t, err)
	assert.False(t, ok, "sessions are isolated")
}

func TestSessionRepo_ZeroInterval(t *testing.T) {
	_, client := newMiniredis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.SetRefreshInterval(ctx, "s1", 0))
	v, ok, err := repo.GetRefreshInterval(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestSessionRepo_Errors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	mock.ExpectSet("ledger:session:s1:refresh_interval", "15", time.Hour).SetErr(assert.AnError)
	assert.ErrorContains(t, repo.SetRefreshInterval(ctx, "s1", 15), "failed to store refresh interval")

	mock.ExpectGet("ledger:session:s1:refresh_interval").SetErr(assert.AnError)
	_, _, err := repo.GetRefreshInterval(ctx, "s1")
	assert.ErrorContains(t, err, "failed to read refresh interval")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemorySessionRepo(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	_, ok, err := repo.GetRefreshInterval(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetRefreshInterval(ctx, "a", 60))
	v, ok, err := repo.GetRefreshInterval(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 60, v)
}

func mustGet(t *testing.T, get func(string) (string, error), key string) string {
	t.Helper()
	v, err := get(key)
	require.NoError(t, err)
	return v
}
