package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
)

type sessionUC struct {
	repo ledger.SessionRepo
}

// NewSessionUC creates the dashboard preference use case
func NewSessionUC(repo ledger.SessionRepo) ledger.SessionUC {
	return &sessionUC{repo: repo}
}

// RefreshInterval returns the session's refresh period, or the default when
// none is stored or the store is unavailable
func (uc *sessionUC) RefreshInterval(ctx context.Context, sessionID string) int {
	if sessionID == "" {
		return models.DefaultRefreshInterval
	}
	interval, ok, err := uc.repo.GetRefreshInterval(ctx, sessionID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read refresh interval", logger.Err(err))
		return models.DefaultRefreshInterval
	}
	if !ok || !models.IsValidRefreshInterval(interval) {
		return models.DefaultRefreshInterval
	}
	return interval
}

// SetRefreshInterval stores the session's refresh period
func (uc *sessionUC) SetRefreshInterval(ctx context.Context, sessionID string, interval int) error {
	if !models.IsValidRefreshInterval(interval) {
		return fmt.Errorf("%w: refresh_interval must be one of %v", models.ErrInvalidInput, models.RefreshIntervals)
	}
	if sessionID == "" {
		return fmt.Errorf("%w: missing session", models.ErrInvalidInput)
	}
	return uc.repo.SetRefreshInterval(ctx, sessionID, interval)
}
