package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfoDefaults(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, "unknown", DefaultBuildInfo.BuildTime)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	t.Setenv("GIT_COMMIT", "abc123")
	os.Unsetenv("BUILD_TIME")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewPingHandler("ledger-service")(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "ledger-service", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.NotEmpty(t, info.Hostname)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		checkers map[string]Checker
		path     string
		status   int
	}{
		{name: "health", path: "/health", status: http.StatusOK},
		{name: "healthz", path: "/healthz", status: http.StatusOK},
		{name: "ping", path: "/ping", status: http.StatusOK},
		{name: "ready without checkers", path: "/ready", status: http.StatusOK},
		{
			name: "ready with healthy checker",
			checkers: map[string]Checker{
				"postgres": CheckerFunc(func(ctx context.Context) error { return nil }),
			},
			path:   "/ready",
			status: http.StatusOK,
		},
		{
			name: "ready with failing checker",
			checkers: map[string]Checker{
				"postgres": CheckerFunc(func(ctx context.Context) error { return nil }),
				"redis":    CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
			},
			path:   "/ready",
			status: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			RegisterHealthEndpoints(e, "ledger-service", tt.checkers)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestReadyHandlerReportsDependencies(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "ledger-service", map[string]Checker{
		"postgres": CheckerFunc(func(ctx context.Context) error { return nil }),
		"nsq":      CheckerFunc(func(ctx context.Context) error { return errors.New("nsqd down") }),
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unready", resp.Status)
	assert.Equal(t, "ledger-service", resp.Service)
	assert.Equal(t, "healthy", resp.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", resp.Dependencies["nsq"].Status)
	assert.Equal(t, "nsqd down", resp.Dependencies["nsq"].Error)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping() error { return f.err }

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	t.Run("postgres", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing()
		client := database.NewPostgresClientFromDB(sqlx.NewDb(db, "sqlmock"))
		assert.NoError(t, PostgresChecker(client).CheckHealth(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("postgres nil", func(t *testing.T) {
		assert.NoError(t, PostgresChecker(nil).CheckHealth(ctx))
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
		defer client.Close()

		assert.NoError(t, RedisChecker(client).CheckHealth(ctx))

		mr.Close()
		assert.Error(t, RedisChecker(client).CheckHealth(ctx))
	})

	t.Run("redis nil", func(t *testing.T) {
		assert.NoError(t, RedisChecker(nil).CheckHealth(ctx))
	})

	t.Run("pinger", func(t *testing.T) {
		assert.NoError(t, PingChecker(fakePinger{}).CheckHealth(ctx))
		assert.EqualError(t, PingChecker(fakePinger{err: errors.New("down")}).CheckHealth(ctx), "down")
		assert.NoError(t, PingChecker(nil).CheckHealth(ctx))
	})
}
