package nsq

import (
	"context"
	"encoding/json"

	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/notifier"
)

// EventHandler consumes transaction events from NSQ
type EventHandler struct {
	notifierUC notifier.NotifierUC
}

// NewEventHandler creates a new event handler
func NewEventHandler(notifierUC notifier.NotifierUC) *EventHandler {
	return &EventHandler{notifierUC: notifierUC}
}

// HandleTransactionEvent decodes and delivers one event. Undecodable
// messages are dropped.
func (h *EventHandler) HandleTransactionEvent(body []byte) error {
	var event models.TransactionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error("Failed to decode transaction event, dropping",
			logger.Err(err),
			logger.Int("size", len(body)))
		return nil
	}

	return h.notifierUC.DeliverEvent(context.Background(), event)
}
