package gateway

import (
	"context"

	httppkg "github.com/piresc/ledger/internal/pkg/http"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/notifier"
)

// WebhookGateway delivers events over HTTP
type WebhookGateway struct {
	client *httppkg.WebhookClient
}

// NewWebhookGateway creates a webhook gateway backed by client
func NewWebhookGateway(client *httppkg.WebhookClient) notifier.WebhookGW {
	return &WebhookGateway{client: client}
}

// PostEvent posts event as JSON to webhookURL
func (g *WebhookGateway) PostEvent(ctx context.Context, webhookURL string, event models.TransactionEvent) error {
	return g.client.PostJSON(ctx, webhookURL, event)
}
