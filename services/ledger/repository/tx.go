package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/ledger/internal/pkg/models"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/shopspring/decimal"
)

// txRepo implements ledger.TxRepo over an open sqlx transaction
type txRepo struct {
	tx *sqlx.Tx
}

func (t *txRepo) GetUserForUpdate(ctx context.Context, id int64) (*models.User, error) {
	return getUser(ctx, t.tx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
}

func (t *txRepo) GetTransactionForUpdate(ctx context.Context, id int64) (*models.Transaction, error) {
	return getTransaction(ctx, t.tx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
}

func (t *txRepo) InsertTransaction(ctx context.Context, trx *models.Transaction) (int64, error) {
	seg := nrpkg.StartDatastoreSegment(ctx, "transactions", "INSERT")
	defer seg.End()

	query := `
		INSERT INTO transactions (amount, commission, status, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := t.tx.QueryRowxContext(ctx, query, trx.Amount, trx.Commission, trx.Status, trx.CreatedAt, trx.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return id, nil
}

func (t *txRepo) UpdateTransactionStatus(ctx context.Context, id int64, status models.TransactionStatus) error {
	seg := nrpkg.StartDatastoreSegment(ctx, "transactions", "UPDATE")
	defer seg.End()

	res, err := t.tx.ExecContext(ctx, `UPDATE transactions SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (t *txRepo) UpdateUserBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	seg := nrpkg.StartDatastoreSegment(ctx, "users", "UPDATE")
	defer seg.End()

	res, err := t.tx.ExecContext(ctx, `UPDATE users SET balance = $1 WHERE id = $2`, balance, id)
	if err != nil {
		return fmt.Errorf("failed to update user balance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
