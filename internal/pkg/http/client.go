package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/piresc/ledger/internal/pkg/circuitbreaker"
	"github.com/piresc/ledger/internal/pkg/logger"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/piresc/ledger/internal/pkg/retry"
)

// HTTPError is a non-2xx answer from a webhook endpoint
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("webhook responded with status %d", e.StatusCode)
}

// Config configures a WebhookClient
type Config struct {
	Timeout time.Duration
	Retry   retry.Config
	Breaker circuitbreaker.Config
}

// WebhookClient posts JSON payloads to user webhooks. 5xx answers and
// network errors are retried; 4xx answers are not. Each host gets its own
// circuit breaker.
type WebhookClient struct {
	httpClient *nethttp.Client
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Manager
	logger     *logger.ZapLogger
}

// NewWebhookClient creates a webhook client
func NewWebhookClient(cfg Config, l *logger.ZapLogger) *WebhookClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	breaker := cfg.Breaker
	breaker.IsFailure = func(err error) bool {
		return err != nil && !retry.IsPermanent(err)
	}

	return &WebhookClient{
		httpClient: &nethttp.Client{Timeout: cfg.Timeout},
		retrier:    retry.New(cfg.Retry, l),
		breakers:   circuitbreaker.NewManager(breaker, l),
		logger:     l,
	}
}

// PostJSON delivers payload to target
func (c *WebhookClient) PostJSON(ctx context.Context, target string, payload interface{}) error {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return retry.Permanent(fmt.Errorf("invalid webhook url %q", target))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to marshal webhook payload: %w", err))
	}

	return c.retrier.Execute(ctx, func(ctx context.Context) error {
		return c.breakers.Execute(ctx, u.Host, func(ctx context.Context) error {
			return c.post(ctx, target, body)
		})
	})
}

func (c *WebhookClient) post(ctx context.Context, target string, body []byte) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	segment := nrpkg.StartExternalSegment(ctx, req)
	resp, err := c.httpClient.Do(req)
	if segment != nil {
		segment.Response = resp
		segment.End()
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(snippet)}
	if resp.StatusCode >= 500 || resp.StatusCode == nethttp.StatusTooManyRequests {
		return httpErr
	}
	return retry.Permanent(httpErr)
}

// BreakerStates exposes the per-host breaker states
func (c *WebhookClient) BreakerStates() map[string]string {
	return c.breakers.States()
}
