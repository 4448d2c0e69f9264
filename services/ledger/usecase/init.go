package usecase

import (
	"context"
	"time"

	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
)

// ledgerUC implements the ledger.LedgerUC interface
type ledgerUC struct {
	cfg        *models.Config
	repo       ledger.LedgerRepo
	reportRepo ledger.ReportRepo
	cache      ledger.StatsCache
	gw         ledger.LedgerGW
	now        func() time.Time
}

// NewLedgerUC creates a new ledger use case
func NewLedgerUC(
	cfg *models.Config,
	repo ledger.LedgerRepo,
	reportRepo ledger.ReportRepo,
	cache ledger.StatsCache,
	gw ledger.LedgerGW,
) (ledger.LedgerUC, error) {
	return &ledgerUC{
		cfg:        cfg,
		repo:       repo,
		reportRepo: reportRepo,
		cache:      cache,
		gw:         gw,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

// afterWrite drops cached stats and publishes event. Neither failure is
// reported to the caller: the write is already committed.
func (uc *ledgerUC) afterWrite(ctx context.Context, event *models.TransactionEvent) {
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate dashboard cache", logger.Err(err))
		}
	}

	if event == nil || uc.gw == nil {
		return
	}
	if err := uc.gw.PublishTransactionEvent(ctx, *event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transaction event",
			logger.String("event_type", string(event.Type)),
			logger.TransactionID(event.TransactionID),
			logger.Err(err))
	}
}
