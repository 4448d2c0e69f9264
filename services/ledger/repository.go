package ledger

import (
	"context"

	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// LedgerRepo defines the data access contract of the ledger core
type LedgerRepo interface {
	// Atomic runs fn inside one database transaction. fn's error rolls
	// everything back; a nil return commits.
	Atomic(ctx context.Context, fn func(tx TxRepo) error) error

	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	WebhookInUse(ctx context.Context, webhookURL string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	DeleteUser(ctx context.Context, id int64) error

	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
}

// TxRepo is the store contract inside an open database transaction.
// The ForUpdate reads hold row locks until commit or rollback.
type TxRepo interface {
	GetUserForUpdate(ctx context.Context, id int64) (*models.User, error)
	GetTransactionForUpdate(ctx context.Context, id int64) (*models.Transaction, error)
	InsertTransaction(ctx context.Context, trx *models.Transaction) (int64, error)
	UpdateTransactionStatus(ctx context.Context, id int64, status models.TransactionStatus) error
	UpdateUserBalance(ctx context.Context, id int64, balance decimal.Decimal) error
}

// ReportRepo defines the read-only aggregations behind the dashboard
type ReportRepo interface {
	CountUsers(ctx context.Context) (int64, error)
	CountTransactions(ctx context.Context) (int64, error)
	SumTransactionAmounts(ctx context.Context) (decimal.Decimal, error)
	RecentTransactions(ctx context.Context, limit int) ([]*models.Transaction, error)
}

// StatsCache caches dashboard statistics between writes
type StatsCache interface {
	// GetStats returns nil without error on a cache miss
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	SetStats(ctx context.Context, stats *models.DashboardStats) error
	Invalidate(ctx context.Context) error
}

// SessionRepo stores per-session dashboard preferences
type SessionRepo interface {
	// GetRefreshInterval reports false when the session has no stored value
	GetRefreshInterval(ctx context.Context, sessionID string) (int, bool, error)
	SetRefreshInterval(ctx context.Context, sessionID string, interval int) error
}
