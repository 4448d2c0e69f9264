package notifier

import (
	"context"

	"github.com/piresc/ledger/internal/pkg/models"
)

// NotifierUC delivers transaction events to user webhooks
type NotifierUC interface {
	// DeliverEvent returns an error only when the delivery should be retried
	DeliverEvent(ctx context.Context, event models.TransactionEvent) error
}
