package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
)

// DashboardStats returns totals and the most recent transactions, served
// from cache when a fresh snapshot exists
func (uc *ledgerUC) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetStats(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read dashboard cache", logger.Err(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := nrpkg.WithSegmentAndReturn(ctx, "LedgerUC.DashboardStats", func() (*models.DashboardStats, error) {
		return uc.computeStats(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetStats(ctx, stats); err != nil {
			logger.WarnCtx(ctx, "Failed to write dashboard cache", logger.Err(err))
		}
	}
	return stats, nil
}

func (uc *ledgerUC) computeStats(ctx context.Context) (*models.DashboardStats, error) {
	users, err := uc.reportRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	transactions, err := uc.reportRepo.CountTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	total, err := uc.reportRepo.SumTransactionAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}
	recent, err := uc.reportRepo.RecentTransactions(ctx, uc.cfg.Ledger.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}
	if recent == nil {
		recent = []*models.Transaction{}
	}

	return &models.DashboardStats{
		TotalUsers:             users,
		TotalTransactions:      transactions,
		TotalTransactionAmount: total,
		RecentTransactions:     recent,
	}, nil
}
