package ledger

import (
	"context"

	"github.com/piresc/ledger/internal/pkg/models"
)

// LedgerGW publishes transaction lifecycle events
type LedgerGW interface {
	PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error
}
