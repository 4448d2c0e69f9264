package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httppkg "github.com/piresc/ledger/internal/pkg/http"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/pkg/retry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGateway() *WebhookGateway {
	client := httppkg.NewWebhookClient(httppkg.Config{
		Timeout: time.Second,
		Retry:   retry.Config{MaxRetries: 1, BaseDelay: time.Millisecond, Multiplier: 1},
	}, logger.NewFromZap(zap.NewNop()))
	return NewWebhookGateway(client).(*WebhookGateway)
}

func TestPostEvent(t *testing.T) {
	var received models.TransactionEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := models.TransactionEvent{
		Type:          models.TransactionEventCreated,
		TransactionID: 7,
		UserID:        1,
		Amount:        decimal.RequireFromString("12.5"),
		Commission:    decimal.RequireFromString("0.125"),
		Status:        models.TransactionStatusPending,
		WebhookURL:    server.URL,
	}

	require.NoError(t, newGateway().PostEvent(context.Background(), server.URL, event))
	assert.Equal(t, int64(7), received.TransactionID)
	assert.True(t, received.Amount.Equal(event.Amount))
}

func TestPostEvent_ClientErrorIsPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	err := newGateway().PostEvent(context.Background(), server.URL, models.TransactionEvent{})
	require.Error(t, err)
	assert.True(t, retry.IsPermanent(err))
}
