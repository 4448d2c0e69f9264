package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/piresc/ledger/services/ledger"
)

const uniqueViolation = "23505"

const (
	userColumns        = `id, balance, commission_rate, webhook_url, role`
	transactionColumns = `id, amount, commission, status, created_at, user_id`
)

// LedgerRepo implements ledger.LedgerRepo on PostgreSQL
type LedgerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(cfg *models.Config, db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{cfg: cfg, db: db}
}

// Atomic runs fn inside one database transaction
func (r *LedgerRepo) Atomic(ctx context.Context, fn func(tx ledger.TxRepo) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.WarnCtx(ctx, "Failed to roll back transaction", logger.Err(rbErr))
		}
	}()

	if err := fn(&txRepo{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (r *LedgerRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return getUser(ctx, r.db, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// ListUsers retrieves every user ordered by ID
func (r *LedgerRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	seg := nrpkg.StartDatastoreSegment(ctx, "users", "SELECT")
	defer seg.End()

	users := []*models.User{}
	if err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// WebhookInUse reports whether any user already registered webhookURL
func (r *LedgerRepo) WebhookInUse(ctx context.Context, webhookURL string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE webhook_url = $1)`
	if err := r.db.GetContext(ctx, &exists, query, webhookURL); err != nil {
		return false, fmt.Errorf("failed to check webhook url: %w", err)
	}
	return exists, nil
}

// CreateUser inserts user and returns its ID
func (r *LedgerRepo) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	seg := nrpkg.StartDatastoreSegment(ctx, "users", "INSERT")
	defer seg.End()

	query := `
		INSERT INTO users (balance, commission_rate, webhook_url, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowxContext(ctx, query, user.Balance, user.CommissionRate, user.WebhookURL, user.Role).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%w: webhook url already registered", models.ErrConflict)
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// DeleteUser removes a user; its transactions go with it through the
// ON DELETE CASCADE foreign key
func (r *LedgerRepo) DeleteUser(ctx context.Context, id int64) error {
	seg := nrpkg.StartDatastoreSegment(ctx, "users", "DELETE")
	defer seg.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// GetTransaction retrieves a transaction by ID
func (r *LedgerRepo) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return getTransaction(ctx, r.db, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

// ListTransactions retrieves every transaction, newest first
func (r *LedgerRepo) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	seg := nrpkg.StartDatastoreSegment(ctx, "transactions", "SELECT")
	defer seg.End()

	trxs := []*models.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &trxs, query); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return trxs, nil
}

func getUser(ctx context.Context, q sqlx.QueryerContext, query string, id int64) (*models.User, error) {
	var user models.User
	if err := sqlx.GetContext(ctx, q, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func getTransaction(ctx context.Context, q sqlx.QueryerContext, query string, id int64) (*models.Transaction, error) {
	var trx models.Transaction
	if err := sqlx.GetContext(ctx, q, &trx, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &trx, nil
}
