package gateway

import (
	"context"

	"github.com/piresc/ledger/internal/pkg/models"
	nsqpkg "github.com/piresc/ledger/internal/pkg/nsq"
	"github.com/piresc/ledger/services/ledger"
)

// LedgerGW handles ledger gateway operations
type LedgerGW struct {
	nsqGateway *NSQGateway
}

// NewLedgerGW creates the ledger gateway. A nil producer disables event
// publishing.
func NewLedgerGW(producer *nsqpkg.Producer, topic string) ledger.LedgerGW {
	gw := &LedgerGW{}
	if producer != nil {
		gw.nsqGateway = NewNSQGateway(producer, topic)
	}
	return gw
}

// PublishTransactionEvent forwards to the NSQ gateway implementation
func (g *LedgerGW) PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error {
	if g.nsqGateway == nil {
		return nil
	}
	return g.nsqGateway.PublishTransactionEvent(ctx, event)
}
