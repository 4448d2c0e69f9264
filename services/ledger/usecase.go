package ledger

import (
	"context"

	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// LedgerUC defines the ledger business operations
type LedgerUC interface {
	CreateTransaction(ctx context.Context, userID int64, amount decimal.Decimal) (int64, error)
	UpdateTransactionStatus(ctx context.Context, id int64, status models.TransactionStatus) error
	CancelTransaction(ctx context.Context, id int64) error
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)

	CreateUser(ctx context.Context, balance, commissionRate decimal.Decimal, webhookURL string) (int64, error)
	CreateAdmin(ctx context.Context, balance, commissionRate decimal.Decimal, webhookURL string) (int64, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// SessionUC manages per-session dashboard preferences
type SessionUC interface {
	RefreshInterval(ctx context.Context, sessionID string) int
	SetRefreshInterval(ctx context.Context, sessionID string, interval int) error
}
