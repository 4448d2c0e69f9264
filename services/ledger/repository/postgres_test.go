package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var (
	userCols = []string{"id", "balance", "commission_rate", "webhook_url", "role"}
	trxCols  = []string{"id", "amount", "commission", "status", "created_at", "user_id"}
)

func TestLedgerRepo_GetUser(t *testing.T) {
	testCases := []struct {
		name      string
		id        int64
		mockSetup func(mock sqlmock.Sqlmock)
		assert    func(t *testing.T, user *models.User, err error)
	}{
		{
			name: "Success",
			id:   1,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userCols).AddRow(int64(1), "100.00000000", "0.10000000", "https://hooks.example.com/a", "ADMIN")
				mock.ExpectQuery("^SELECT id, balance, commission_rate, webhook_url, role FROM users WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			assert: func(t *testing.T, user *models.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(1), user.ID)
				assert.True(t, decimal.NewFromInt(100).Equal(user.Balance))
				assert.True(t, decimal.RequireFromString("0.1").Equal(user.CommissionRate))
				assert.Equal(t, "https://hooks.example.com/a", user.Webhook())
				assert.True(t, user.IsAdmin())
			},
		},
		{
			name: "Null webhook",
			id:   2,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userCols).AddRow(int64(2), "0", "0", nil, "USER")
				mock.ExpectQuery("^SELECT .* FROM users WHERE id").WithArgs(int64(2)).WillReturnRows(rows)
			},
			assert: func(t *testing.T, user *models.User, err error) {
				require.NoError(t, err)
				assert.Nil(t, user.WebhookURL)
				assert.Equal(t, models.UserRoleUser, user.Role)
			},
		},
		{
			name: "Not found",
			id:   1,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT .* FROM users WHERE id").WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows(userCols))
			},
			assert: func(t *testing.T, user *models.User, err error) {
				assert.ErrorIs(t, err, models.ErrUserNotFound)
				assert.Nil(t, user)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT .* FROM users WHERE id").WithArgs(int64(1)).
					WillReturnError(errors.New("connection reset"))
			},
			assert: func(t *testing.T, user *models.User, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get user")
				assert.NotErrorIs(t, err, models.ErrUserNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mockSetup(mock)

			user, err := NewLedgerRepository(&models.Config{}, db).GetUser(context.Background(), tc.id)
			tc.assert(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedgerRepo_CreateUser(t *testing.T) {
	hook := "https://hooks.example.com/admin"
	user := &models.User{
		Balance:        decimal.NewFromInt(500),
		CommissionRate: decimal.RequireFromString("0.05"),
		WebhookURL:     &hook,
		Role:           models.UserRoleAdmin,
	}
	query := regexp.QuoteMeta("INSERT INTO users (balance, commission_rate, webhook_url, role)")

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(user.Balance, user.CommissionRate, &hook, models.UserRoleAdmin).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

		id, err := NewLedgerRepository(&models.Config{}, db).CreateUser(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique violation", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := NewLedgerRepository(&models.Config{}, db).CreateUser(context.Background(), user)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("Other error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("disk full"))

		_, err := NewLedgerRepository(&models.Config{}, db).CreateUser(context.Background(), user)
		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrConflict)
		assert.Contains(t, err.Error(), "failed to create user")
	})
}

func TestLedgerRepo_WebhookInUse(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM users WHERE webhook_url = $1)")).
		WithArgs("https://hooks.example.com/a").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	inUse, err := NewLedgerRepository(&models.Config{}, db).WebhookInUse(context.Background(), "https://hooks.example.com/a")
	require.NoError(t, err)
	assert.True(t, inUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_DeleteUser(t *testing.T) {
	query := regexp.QuoteMeta("DELETE FROM users WHERE id = $1")

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(query).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewLedgerRepository(&models.Config{}, db).DeleteUser(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(query).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewLedgerRepository(&models.Config{}, db).DeleteUser(context.Background(), 3)
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})
}

func TestLedgerRepo_Transactions(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("GetTransaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("^SELECT id, amount, commission, status, created_at, user_id FROM transactions WHERE id").
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(trxCols).AddRow(int64(4), "50", "5", "PENDING", created, int64(1)))

		trx, err := NewLedgerRepository(&models.Config{}, db).GetTransaction(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusPending, trx.Status)
		assert.True(t, decimal.NewFromInt(55).Equal(trx.Total()))
		assert.Equal(t, created, trx.CreatedAt)
	})

	t.Run("GetTransaction not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("^SELECT .* FROM transactions WHERE id").WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(trxCols))

		_, err := NewLedgerRepository(&models.Config{}, db).GetTransaction(context.Background(), 4)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("ListTransactions newest first", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM transactions ORDER BY created_at DESC, id DESC")).
			WillReturnRows(sqlmock.NewRows(trxCols).
				AddRow(int64(2), "10", "1", "CONFIRMED", created.Add(time.Minute), int64(1)).
				AddRow(int64(1), "50", "0", "CANCELED", created, int64(1)))

		trxs, err := NewLedgerRepository(&models.Config{}, db).ListTransactions(context.Background())
		require.NoError(t, err)
		require.Len(t, trxs, 2)
		assert.Equal(t, int64(2), trxs[0].ID)
	})

	t.Run("ListTransactions empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM transactions ORDER BY").WillReturnRows(sqlmock.NewRows(trxCols))

		trxs, err := NewLedgerRepository(&models.Config{}, db).ListTransactions(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, trxs)
		assert.Empty(t, trxs)
	})
}

func TestLedgerRepo_ListUsers(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(1), "10", "0", nil, "USER").
			AddRow(int64(2), "20", "0.2", nil, "USER"))

	users, err := NewLedgerRepository(&models.Config{}, db).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestLedgerRepo_Atomic(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1 FOR UPDATE")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(int64(1), "100", "0.1", nil, "USER"))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET balance = $1 WHERE id = $2")).
			WithArgs(decimal.NewFromInt(45), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (amount, commission, status, created_at, user_id)")).
			WithArgs(decimal.NewFromInt(50), decimal.NewFromInt(5), models.TransactionStatusPending, created, int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectCommit()

		var id int64
		err := NewLedgerRepository(&models.Config{}, db).Atomic(context.Background(), func(tx ledger.TxRepo) error {
			user, err := tx.GetUserForUpdate(context.Background(), 1)
			if err != nil {
				return err
			}
			if err := tx.UpdateUserBalance(context.Background(), user.ID, decimal.NewFromInt(45)); err != nil {
				return err
			}
			id, err = tx.InsertTransaction(context.Background(), &models.Transaction{
				Amount:     decimal.NewFromInt(50),
				Commission: decimal.NewFromInt(5),
				Status:     models.TransactionStatusPending,
				CreatedAt:  created,
				UserID:     1,
			})
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id = $1 FOR UPDATE")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(trxCols).AddRow(int64(7), "50", "5", "PENDING", created, int64(1)))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET status = $1 WHERE id = $2")).
			WithArgs(models.TransactionStatusConfirmed, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		errAbort := errors.New("abort")
		err := NewLedgerRepository(&models.Config{}, db).Atomic(context.Background(), func(tx ledger.TxRepo) error {
			trx, err := tx.GetTransactionForUpdate(context.Background(), 7)
			if err != nil {
				return err
			}
			if err := tx.UpdateTransactionStatus(context.Background(), trx.ID, models.TransactionStatusConfirmed); err != nil {
				return err
			}
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err := NewLedgerRepository(&models.Config{}, db).Atomic(context.Background(), func(tx ledger.TxRepo) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.ErrorContains(t, err, "failed to begin transaction")
	})

	t.Run("Commit failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := NewLedgerRepository(&models.Config{}, db).Atomic(context.Background(), func(tx ledger.TxRepo) error {
			return nil
		})
		assert.ErrorContains(t, err, "failed to commit transaction")
	})

	t.Run("Missing rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE transactions SET status").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE users SET balance").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := NewLedgerRepository(&models.Config{}, db).Atomic(context.Background(), func(tx ledger.TxRepo) error {
			assert.ErrorIs(t, tx.UpdateTransactionStatus(context.Background(), 1, models.TransactionStatusCanceled), models.ErrNotFound)
			assert.ErrorIs(t, tx.UpdateUserBalance(context.Background(), 1, decimal.Zero), models.ErrUserNotFound)
			return models.ErrNotFound
		})
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
