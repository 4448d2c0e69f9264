package notifier

import (
	"context"

	"github.com/piresc/ledger/internal/pkg/models"
)

// WebhookGW posts events to webhook endpoints
type WebhookGW interface {
	PostEvent(ctx context.Context, webhookURL string, event models.TransactionEvent) error
}
