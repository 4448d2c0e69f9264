package usecase

import (
	"context"
	"errors"

	httppkg "github.com/piresc/ledger/internal/pkg/http"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/piresc/ledger/internal/pkg/retry"
	"github.com/piresc/ledger/services/notifier"
)

// notifierUC implements the notifier.NotifierUC interface
type notifierUC struct {
	gw notifier.WebhookGW
}

// NewNotifierUC creates a new notifier use case
func NewNotifierUC(gw notifier.WebhookGW) notifier.NotifierUC {
	return &notifierUC{gw: gw}
}

// DeliverEvent posts event to the owner's webhook. Events without a webhook
// are acknowledged silently. Rejections the endpoint will keep giving are
// logged and dropped.
func (uc *notifierUC) DeliverEvent(ctx context.Context, event models.TransactionEvent) error {
	if event.WebhookURL == "" {
		logger.Debug("No webhook registered, skipping event",
			logger.String("event_type", string(event.Type)),
			logger.TransactionID(event.TransactionID))
		return nil
	}

	err := nrpkg.WithSegment(ctx, "NotifierUC.DeliverEvent", func() error {
		return uc.gw.PostEvent(ctx, event.WebhookURL, event)
	})
	if err == nil {
		logger.InfoCtx(ctx, "Webhook delivered",
			logger.String("event_type", string(event.Type)),
			logger.TransactionID(event.TransactionID),
			logger.UserID(event.UserID))
		return nil
	}

	if retry.IsPermanent(err) {
		fields := []logger.Field{
			logger.String("event_type", string(event.Type)),
			logger.TransactionID(event.TransactionID),
			logger.String("webhook_url", event.WebhookURL),
			logger.Err(err),
		}
		var httpErr *httppkg.HTTPError
		if errors.As(err, &httpErr) {
			fields = append(fields, logger.Int("status_code", httpErr.StatusCode))
		}
		logger.WarnCtx(ctx, "Webhook rejected event, dropping", fields...)
		return nil
	}

	logger.WarnCtx(ctx, "Webhook delivery failed, will retry",
		logger.String("event_type", string(event.Type)),
		logger.TransactionID(event.TransactionID),
		logger.Err(err))
	return err
}
