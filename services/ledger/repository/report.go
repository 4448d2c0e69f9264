package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/ledger/internal/pkg/models"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/shopspring/decimal"
)

// ReportRepo implements ledger.ReportRepo on PostgreSQL
type ReportRepo struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (r *ReportRepo) CountTransactions(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM transactions`); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

// SumTransactionAmounts sums every transaction amount; zero on an empty table
func (r *ReportRepo) SumTransactionAmounts(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.GetContext(ctx, &sum, `SELECT COALESCE(SUM(amount), 0) FROM transactions`); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}
	return sum, nil
}

// RecentTransactions returns the newest limit transactions
func (r *ReportRepo) RecentTransactions(ctx context.Context, limit int) ([]*models.Transaction, error) {
	seg := nrpkg.StartDatastoreSegment(ctx, "transactions", "SELECT")
	defer seg.End()

	trxs := []*models.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC, id DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &trxs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return trxs, nil
}
