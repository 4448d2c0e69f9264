package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/ledger/internal/pkg/nsq"
)

// NSQGateway publishes ledger events to NSQ
type NSQGateway struct {
	producer *nsqpkg.Producer
	topic    string
}

// NewNSQGateway creates a new NSQ gateway instance
func NewNSQGateway(producer *nsqpkg.Producer, topic string) *NSQGateway {
	return &NSQGateway{
		producer: producer,
		topic:    topic,
	}
}

// PublishTransactionEvent publishes a transaction lifecycle event
func (g *NSQGateway) PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error {
	segment := nrpkg.StartMessageProducerSegment(ctx, g.topic)
	defer segment.End()

	if err := g.producer.PublishJSON(g.topic, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish transaction event",
			logger.String("topic", g.topic),
			logger.String("event_type", string(event.Type)),
			logger.TransactionID(event.TransactionID),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	logger.InfoCtx(ctx, "Published transaction event",
		logger.String("topic", g.topic),
		logger.String("event_type", string(event.Type)),
		logger.TransactionID(event.TransactionID))
	return nil
}
