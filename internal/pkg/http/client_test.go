package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/ledger/internal/pkg/circuitbreaker"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(threshold int) *WebhookClient {
	return NewWebhookClient(Config{
		Timeout: time.Second,
		Retry:   retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Multiplier: 2},
		Breaker: circuitbreaker.Config{FailureThreshold: threshold, OpenTimeout: time.Minute},
	}, logger.NewFromZap(zap.NewNop()))
}

func TestWebhookClient_PostJSON(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(nethttp.StatusNoContent)
	}))
	defer srv.Close()

	err := testClient(5).PostJSON(context.Background(), srv.URL+"/hook", map[string]interface{}{"transaction_id": 3})
	require.NoError(t, err)
	assert.Equal(t, float64(3), received["transaction_id"])
}

func TestWebhookClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(nethttp.StatusBadGateway)
			return
		}
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, testClient(5).PostJSON(context.Background(), srv.URL, struct{}{}))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWebhookClient_ClientErrorIsPermanent(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(nethttp.StatusGone)
	}))
	defer srv.Close()

	client := testClient(1)
	err := client.PostJSON(context.Background(), srv.URL, struct{}{})
	require.Error(t, err)
	assert.True(t, retry.IsPermanent(err))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, nethttp.StatusGone, httpErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	for _, state := range client.BreakerStates() {
		assert.Equal(t, "CLOSED", state)
	}
}

func TestWebhookClient_BreakerOpensPerHost(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(nethttp.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := testClient(2)
	err := client.PostJSON(context.Background(), srv.URL, struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Contains(t, client.BreakerStates(), srv.Listener.Addr().String())
}

func TestWebhookClient_InvalidURL(t *testing.T) {
	for _, target := range []string{"", "not a url", "ftp://example.com/x", "/relative"} {
		err := testClient(5).PostJSON(context.Background(), target, struct{}{})
		assert.Error(t, err, target)
		assert.True(t, retry.IsPermanent(err), target)
	}
}
